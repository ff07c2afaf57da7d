package gfa

import (
	"fmt"

	"github.com/parfait-bio/parfait/pkg/tag"
)

// Kind identifies a record variant.
type Kind int

// Record kinds, one per GFA record letter. Ordered and unordered groups
// ('O' and 'U') are distinct kinds sharing the Group struct.
const (
	KindHeader Kind = iota
	KindSegment
	KindLink
	KindContainment
	KindPath
	KindWalk
	KindJump
	KindEdge
	KindFragment
	KindGap
	KindOrderedGroup
	KindUnorderedGroup
)

// Letter returns the record-type letter for the kind.
func (k Kind) Letter() byte {
	switch k {
	case KindHeader:
		return 'H'
	case KindSegment:
		return 'S'
	case KindLink:
		return 'L'
	case KindContainment:
		return 'C'
	case KindPath:
		return 'P'
	case KindWalk:
		return 'W'
	case KindJump:
		return 'J'
	case KindEdge:
		return 'E'
	case KindFragment:
		return 'F'
	case KindGap:
		return 'G'
	case KindOrderedGroup:
		return 'O'
	case KindUnorderedGroup:
		return 'U'
	default:
		return '?'
	}
}

// String returns the record-type letter as a string.
func (k Kind) String() string { return string(k.Letter()) }

// Record is implemented by every GFA record variant. Consumers that need
// variant-specific fields switch on the concrete type.
type Record interface {
	// Kind returns the record's variant.
	Kind() Kind
	// Line returns the 1-based input line the record was parsed from, or 0
	// for records built programmatically.
	Line() int
	// Tags returns the record's optional fields.
	Tags() *tag.Map
}

// Header is an 'H' record. Its version declaration, if any, lives in the
// VN tag.
type Header struct {
	LineNo int
	TagMap tag.Map
}

func (h *Header) Kind() Kind     { return KindHeader }
func (h *Header) Line() int      { return h.LineNo }
func (h *Header) Tags() *tag.Map { return &h.TagMap }

// Version returns the version declared by the header's VN tag.
func (h *Header) Version() (Version, bool) {
	v, ok := h.TagMap.Get("VN")
	if !ok {
		return VersionUnknown, false
	}
	t, ok := v.(tag.Text)
	if !ok {
		return VersionUnknown, false
	}
	return ParseVersion(string(t))
}

// Segment is an 'S' record. Sequence is "*" when unknown. Length holds the
// explicit GFA2 length column and is nil for GFA1 segments.
type Segment struct {
	LineNo   int
	Name     string
	Sequence string
	Length   *int64
	TagMap   tag.Map
}

func (s *Segment) Kind() Kind     { return KindSegment }
func (s *Segment) Line() int      { return s.LineNo }
func (s *Segment) Tags() *tag.Map { return &s.TagMap }

// EffectiveLength resolves the segment's length, preferring the explicit
// length column, then the LN tag, then the sequence itself.
func (s *Segment) EffectiveLength() (int64, bool) {
	if s.Length != nil {
		return *s.Length, true
	}
	if v, ok := s.TagMap.Get("LN"); ok {
		if i, ok := v.(tag.Int); ok {
			return int64(i), true
		}
	}
	if s.Sequence != "" && s.Sequence != "*" {
		return int64(len(s.Sequence)), true
	}
	return 0, false
}

// Link is an 'L' record connecting the end of one oriented segment to the
// start of another. Overlap is kept verbatim ("*" or CIGAR text).
type Link struct {
	LineNo  int
	From    Ref
	To      Ref
	Overlap string
	TagMap  tag.Map
}

func (l *Link) Kind() Kind     { return KindLink }
func (l *Link) Line() int      { return l.LineNo }
func (l *Link) Tags() *tag.Map { return &l.TagMap }

// Containment is a 'C' record placing one oriented segment inside another
// at a given offset.
type Containment struct {
	LineNo    int
	Container Ref
	Contained Ref
	Pos       int64
	Overlap   string
	TagMap    tag.Map
}

func (c *Containment) Kind() Kind     { return KindContainment }
func (c *Containment) Line() int      { return c.LineNo }
func (c *Containment) Tags() *tag.Map { return &c.TagMap }

// Path is a 'P' record: a named series of oriented segment steps with
// per-adjacency overlaps. Overlaps is the raw overlap column split on
// commas; a single "*" stands for all-unknown.
type Path struct {
	LineNo   int
	Name     string
	Steps    []Ref
	Overlaps []string
	TagMap   tag.Map
}

func (p *Path) Kind() Kind     { return KindPath }
func (p *Path) Line() int      { return p.LineNo }
func (p *Path) Tags() *tag.Map { return &p.TagMap }

// Walk is a 'W' record (GFA 1.1): a haplotype walk through oriented
// segments. SeqStart and SeqEnd are nil when given as "*".
type Walk struct {
	LineNo   int
	SampleID string
	HapIndex int64
	SeqID    string
	SeqStart *int64
	SeqEnd   *int64
	Steps    []Ref
	TagMap   tag.Map
}

func (w *Walk) Kind() Kind     { return KindWalk }
func (w *Walk) Line() int      { return w.LineNo }
func (w *Walk) Tags() *tag.Map { return &w.TagMap }

// Jump is a 'J' record (GFA 1.2): an adjacency with an unknown joining
// sequence. Distance is nil when given as "*".
type Jump struct {
	LineNo   int
	From     Ref
	To       Ref
	Distance *int64
	TagMap   tag.Map
}

func (j *Jump) Kind() Kind     { return KindJump }
func (j *Jump) Line() int      { return j.LineNo }
func (j *Jump) Tags() *tag.Map { return &j.TagMap }

// Edge is a GFA2 'E' record. ID is "*" for anonymous edges. Alignment is
// kept verbatim ("*", CIGAR, or trace).
type Edge struct {
	LineNo    int
	ID        string
	Sid1      Ref
	Sid2      Ref
	Beg1      Position
	End1      Position
	Beg2      Position
	End2      Position
	Alignment string
	TagMap    tag.Map
}

func (e *Edge) Kind() Kind     { return KindEdge }
func (e *Edge) Line() int      { return e.LineNo }
func (e *Edge) Tags() *tag.Map { return &e.TagMap }

// Fragment is a GFA2 'F' record tying an external sequence to a segment.
type Fragment struct {
	LineNo    int
	SegmentID string
	External  Ref
	SegBeg    Position
	SegEnd    Position
	FragBeg   Position
	FragEnd   Position
	Alignment string
	TagMap    tag.Map
}

func (f *Fragment) Kind() Kind     { return KindFragment }
func (f *Fragment) Line() int      { return f.LineNo }
func (f *Fragment) Tags() *tag.Map { return &f.TagMap }

// Gap is a GFA2 'G' record. ID is "*" for anonymous gaps. Variance is nil
// when given as "*".
type Gap struct {
	LineNo   int
	ID       string
	Sid1     Ref
	Sid2     Ref
	Distance int64
	Variance *int64
	TagMap   tag.Map
}

func (g *Gap) Kind() Kind     { return KindGap }
func (g *Gap) Line() int      { return g.LineNo }
func (g *Gap) Tags() *tag.Map { return &g.TagMap }

// Group is a GFA2 'O' (ordered) or 'U' (unordered) record. ID is "*" for
// anonymous groups. Members of unordered groups carry no orientation.
// Members may name segments, edges, paths, or other groups.
type Group struct {
	LineNo  int
	ID      string
	Ordered bool
	Members []Ref
	TagMap  tag.Map
}

func (g *Group) Kind() Kind {
	if g.Ordered {
		return KindOrderedGroup
	}
	return KindUnorderedGroup
}

func (g *Group) Line() int      { return g.LineNo }
func (g *Group) Tags() *tag.Map { return &g.TagMap }

// EffectiveID returns the group's identifier, substituting a stable
// synthetic name for anonymous groups so they can participate in
// reference resolution.
func (g *Group) EffectiveID() string {
	if g.ID != "" && g.ID != "*" {
		return g.ID
	}
	return fmt.Sprintf("anon_%s_%d", g.Kind(), g.LineNo)
}
