package gfa

import (
	"strconv"
	"strings"
)

// Orientation marks which strand of a segment a record refers to.
type Orientation byte

// Orientations. OrientNone is used for references that carry no strand,
// such as unordered group members.
const (
	OrientNone    Orientation = 0
	OrientForward Orientation = '+'
	OrientReverse Orientation = '-'
)

// String returns "+", "-", or "" for OrientNone.
func (o Orientation) String() string {
	if o == OrientNone {
		return ""
	}
	return string(byte(o))
}

// ParseOrientation parses a "+" or "-" field.
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "+":
		return OrientForward, true
	case "-":
		return OrientReverse, true
	default:
		return OrientNone, false
	}
}

// Ref is a reference to a named record, optionally with an orientation.
type Ref struct {
	Name   string
	Orient Orientation
}

// String renders the reference as name plus orientation suffix, if any.
func (r Ref) String() string {
	return r.Name + r.Orient.String()
}

// ParseRef parses a reference with a mandatory trailing orientation sign,
// as used by GFA2 edge and gap endpoints.
func ParseRef(s string) (Ref, bool) {
	if len(s) < 2 {
		return Ref{}, false
	}
	o, ok := ParseOrientation(s[len(s)-1:])
	if !ok {
		return Ref{}, false
	}
	name := s[:len(s)-1]
	if !ValidName(name) {
		return Ref{}, false
	}
	return Ref{Name: name, Orient: o}, true
}

// ParseOptRef parses a reference whose trailing orientation sign is
// optional, as used by group members.
func ParseOptRef(s string) (Ref, bool) {
	if r, ok := ParseRef(s); ok {
		return r, true
	}
	if !ValidName(s) {
		return Ref{}, false
	}
	return Ref{Name: s}, true
}

// Position is a GFA2 coordinate. End marks the trailing "$" that pins the
// position to the end of the segment sequence.
type Position struct {
	Value int64
	End   bool
}

// String renders the position, with a "$" suffix when End is set.
func (p Position) String() string {
	s := strconv.FormatInt(p.Value, 10)
	if p.End {
		s += "$"
	}
	return s
}

// ParsePosition parses a GFA2 coordinate with an optional "$" suffix.
func ParsePosition(s string) (Position, bool) {
	end := strings.HasSuffix(s, "$")
	if end {
		s = s[:len(s)-1]
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return Position{}, false
	}
	return Position{Value: v, End: end}, true
}

// ValidName reports whether a record identifier is legal: non-empty
// printable ASCII without spaces, not starting with "*" or "=", and not
// containing the "+," or "-," sequences that would make oriented reference
// lists ambiguous.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	if name[0] == '*' || name[0] == '=' {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] <= ' ' || name[i] > '~' {
			return false
		}
	}
	if strings.Contains(name, "+,") || strings.Contains(name, "-,") {
		return false
	}
	return true
}

// IsCIGAR reports whether s is a non-empty CIGAR string: one or more
// length-operation pairs over the operations M, I, D, N, S, H, P, =, X.
func IsCIGAR(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	for i < len(s) {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start || i == len(s) {
			return false
		}
		switch s[i] {
		case 'M', 'I', 'D', 'N', 'S', 'H', 'P', '=', 'X':
			i++
		default:
			return false
		}
	}
	return true
}

// IsTrace reports whether s is a GFA2 trace alignment: comma-separated
// non-negative integers.
func IsTrace(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ",") {
		if part == "" {
			return false
		}
		for i := 0; i < len(part); i++ {
			if part[i] < '0' || part[i] > '9' {
				return false
			}
		}
	}
	return true
}

// ValidOverlap reports whether s is a legal GFA1 overlap field: "*" or a
// CIGAR string.
func ValidOverlap(s string) bool {
	return s == "*" || IsCIGAR(s)
}

// ValidAlignment reports whether s is a legal GFA2 alignment field: "*", a
// CIGAR string, or a trace.
func ValidAlignment(s string) bool {
	return s == "*" || IsCIGAR(s) || IsTrace(s)
}
