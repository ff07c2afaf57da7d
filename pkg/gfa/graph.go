package gfa

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidName is returned by [Graph.Add] when a record that requires
	// an identifier has an empty or illegal one.
	ErrInvalidName = errors.New("invalid record name")

	// ErrDuplicateSegment is returned by [Graph.Add] when a segment with
	// the same name already exists in the graph.
	ErrDuplicateSegment = errors.New("duplicate segment name")
)

// Graph owns a GFA document's records in input order. Iteration and
// serialization follow that order exactly, so a parsed file writes back in
// its original line order.
//
// Append never rejects records, so a Graph can hold duplicate segment
// names and dangling references for the validate package to report. Add is
// the checked entry point for programmatic construction.
//
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	version  Version
	records  []Record
	segments map[string]*Segment // first occurrence per name
	names    map[string]Record   // first occurrence of any named record
}

// NewGraph creates an empty graph with an undeclared version.
func NewGraph() *Graph {
	return &Graph{
		segments: make(map[string]*Segment),
		names:    make(map[string]Record),
	}
}

// Version returns the graph's declared or inferred version.
func (g *Graph) Version() Version { return g.version }

// SetVersion sets the graph's version.
func (g *Graph) SetVersion(v Version) { g.version = v }

// Append adds a record without any checks, keeping the first occurrence of
// each name in the lookup indexes. Parsers use this so that duplicate
// identifiers survive into validation.
func (g *Graph) Append(r Record) {
	g.records = append(g.records, r)
	if name, ok := recordName(r); ok {
		if s, isSeg := r.(*Segment); isSeg {
			if _, exists := g.segments[name]; !exists {
				g.segments[name] = s
			}
		}
		if _, exists := g.names[name]; !exists {
			g.names[name] = r
		}
	}
}

// Add appends a record after checking its identifier: segments, paths, and
// named records must have legal names, and segment names must be unique.
// Returns ErrInvalidName or ErrDuplicateSegment on violation.
func (g *Graph) Add(r Record) error {
	switch rec := r.(type) {
	case *Segment:
		if !ValidName(rec.Name) {
			return ErrInvalidName
		}
		if _, exists := g.segments[rec.Name]; exists {
			return ErrDuplicateSegment
		}
	case *Path:
		if !ValidName(rec.Name) {
			return ErrInvalidName
		}
	case *Fragment:
		if !ValidName(rec.SegmentID) {
			return ErrInvalidName
		}
	case *Edge:
		if rec.ID != "*" && !ValidName(rec.ID) {
			return ErrInvalidName
		}
	case *Gap:
		if rec.ID != "*" && !ValidName(rec.ID) {
			return ErrInvalidName
		}
	case *Group:
		if rec.ID != "*" && !ValidName(rec.ID) {
			return ErrInvalidName
		}
	}
	g.Append(r)
	return nil
}

// recordName extracts the indexable identifier of a record, if it has one.
func recordName(r Record) (string, bool) {
	switch rec := r.(type) {
	case *Segment:
		return rec.Name, rec.Name != ""
	case *Path:
		return rec.Name, rec.Name != ""
	case *Edge:
		return rec.ID, rec.ID != "" && rec.ID != "*"
	case *Gap:
		return rec.ID, rec.ID != "" && rec.ID != "*"
	case *Group:
		return rec.EffectiveID(), true
	default:
		return "", false
	}
}

// Records returns all records in input order. The returned slice is shared
// with the graph and must not be modified.
func (g *Graph) Records() []Record { return g.records }

// Len returns the number of records.
func (g *Graph) Len() int { return len(g.records) }

// Segment returns the first segment with the given name.
func (g *Graph) Segment(name string) (*Segment, bool) {
	s, ok := g.segments[name]
	return s, ok
}

// Named returns the first record of any kind indexed under the given name.
func (g *Graph) Named(name string) (Record, bool) {
	r, ok := g.names[name]
	return r, ok
}

// Header returns the first header record, or nil if there is none.
func (g *Graph) Header() *Header {
	for _, r := range g.records {
		if h, ok := r.(*Header); ok {
			return h
		}
	}
	return nil
}

// Segments returns all segments in input order.
func (g *Graph) Segments() []*Segment {
	var out []*Segment
	for _, r := range g.records {
		if s, ok := r.(*Segment); ok {
			out = append(out, s)
		}
	}
	return out
}

// Links returns all links in input order.
func (g *Graph) Links() []*Link {
	var out []*Link
	for _, r := range g.records {
		if l, ok := r.(*Link); ok {
			out = append(out, l)
		}
	}
	return out
}

// Containments returns all containments in input order.
func (g *Graph) Containments() []*Containment {
	var out []*Containment
	for _, r := range g.records {
		if c, ok := r.(*Containment); ok {
			out = append(out, c)
		}
	}
	return out
}

// Paths returns all paths in input order.
func (g *Graph) Paths() []*Path {
	var out []*Path
	for _, r := range g.records {
		if p, ok := r.(*Path); ok {
			out = append(out, p)
		}
	}
	return out
}

// Walks returns all walks in input order.
func (g *Graph) Walks() []*Walk {
	var out []*Walk
	for _, r := range g.records {
		if w, ok := r.(*Walk); ok {
			out = append(out, w)
		}
	}
	return out
}

// Jumps returns all jumps in input order.
func (g *Graph) Jumps() []*Jump {
	var out []*Jump
	for _, r := range g.records {
		if j, ok := r.(*Jump); ok {
			out = append(out, j)
		}
	}
	return out
}

// Edges returns all GFA2 edges in input order.
func (g *Graph) Edges() []*Edge {
	var out []*Edge
	for _, r := range g.records {
		if e, ok := r.(*Edge); ok {
			out = append(out, e)
		}
	}
	return out
}

// Fragments returns all fragments in input order.
func (g *Graph) Fragments() []*Fragment {
	var out []*Fragment
	for _, r := range g.records {
		if f, ok := r.(*Fragment); ok {
			out = append(out, f)
		}
	}
	return out
}

// Gaps returns all gaps in input order.
func (g *Graph) Gaps() []*Gap {
	var out []*Gap
	for _, r := range g.records {
		if gp, ok := r.(*Gap); ok {
			out = append(out, gp)
		}
	}
	return out
}

// Groups returns all ordered and unordered groups in input order.
func (g *Graph) Groups() []*Group {
	var out []*Group
	for _, r := range g.records {
		if gr, ok := r.(*Group); ok {
			out = append(out, gr)
		}
	}
	return out
}

// RemoveRecord removes a record by identity, reporting whether it was
// present. Records referencing the removed one are left alone; dangling
// references are a validation concern.
func (g *Graph) RemoveRecord(r Record) bool {
	i := slices.Index(g.records, r)
	if i < 0 {
		return false
	}
	g.records = append(g.records[:i], g.records[i+1:]...)
	g.reindex(r)
	return true
}

// RemoveSegment removes the first segment with the given name.
func (g *Graph) RemoveSegment(name string) bool {
	s, ok := g.segments[name]
	if !ok {
		return false
	}
	return g.RemoveRecord(s)
}

// reindex repairs the name indexes after removed was taken out, promoting
// a later record with the same name if one exists.
func (g *Graph) reindex(removed Record) {
	name, ok := recordName(removed)
	if !ok {
		return
	}
	if g.names[name] == removed {
		delete(g.names, name)
	}
	if s, isSeg := removed.(*Segment); isSeg && g.segments[name] == s {
		delete(g.segments, name)
	}
	for _, r := range g.records {
		n, ok := recordName(r)
		if !ok || n != name {
			continue
		}
		if _, exists := g.names[name]; !exists {
			g.names[name] = r
		}
		if s, isSeg := r.(*Segment); isSeg {
			if _, exists := g.segments[name]; !exists {
				g.segments[name] = s
			}
		}
	}
}
