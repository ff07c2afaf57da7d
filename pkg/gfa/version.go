package gfa

// Version identifies a GFA specification version.
type Version int

// Known specification versions. Version1_1 adds walks, Version1_2 adds
// jumps, Version2 is the separate GFA2 dialect.
const (
	VersionUnknown Version = iota
	Version1
	Version1_1
	Version1_2
	Version2
)

// ParseVersion parses the value of a header VN tag.
func ParseVersion(s string) (Version, bool) {
	switch s {
	case "1", "1.0":
		return Version1, true
	case "1.1":
		return Version1_1, true
	case "1.2":
		return Version1_2, true
	case "2", "2.0":
		return Version2, true
	default:
		return VersionUnknown, false
	}
}

// String returns the canonical VN tag value for the version.
func (v Version) String() string {
	switch v {
	case Version1:
		return "1.0"
	case Version1_1:
		return "1.1"
	case Version1_2:
		return "1.2"
	case Version2:
		return "2.0"
	default:
		return "unknown"
	}
}

// IsV1 reports whether the version belongs to the GFA1 family.
func (v Version) IsV1() bool {
	return v == Version1 || v == Version1_1 || v == Version1_2
}

// IsV2 reports whether the version is GFA2.
func (v Version) IsV2() bool {
	return v == Version2
}
