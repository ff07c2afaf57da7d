// Package validate checks cross-record consistency of a parsed graph.
//
// Validation never mutates the graph and never stops early: every finding
// is collected into one ordered list, so a single pass reports duplicate
// segment identifiers, unresolved references, group-membership cycles,
// overlap text that fails the CIGAR grammar, and interval sanity problems
// together. Overlap and alignment grammar findings already reported by the
// parser are re-surfaced here, so a validation pass stands alone: the list
// it returns is complete without consulting parse-time findings.
package validate

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/parfait-bio/parfait/pkg/errors"
	"github.com/parfait-bio/parfait/pkg/gfa"
)

// Options configures validation behavior.
type Options struct {
	Logger *log.Logger // Progress/debug logging (optional)
}

// Graph validates g and returns the ordered findings.
func Graph(g *gfa.Graph, opts Options) errors.List {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	v := &validator{g: g}
	v.checkDuplicateSegments()
	v.checkReferences()
	v.checkGroupCycles()
	v.checkOverlaps()
	v.checkRanges()
	v.checkTopology()
	v.msgs.Sort()

	opts.Logger.Debugf("validated %d records with %d findings", g.Len(), len(v.msgs))
	return v.msgs
}

type validator struct {
	g    *gfa.Graph
	msgs errors.List
}

func (v *validator) report(line int, code errors.Code, offender string) {
	v.msgs = append(v.msgs, errors.Message{Line: line, Code: code, Offender: offender})
}

func (v *validator) checkDuplicateSegments() {
	seen := make(map[string]bool)
	for _, s := range v.g.Segments() {
		if seen[s.Name] {
			v.report(s.Line(), errors.ErrCodeDuplicateSegmentID, s.Name)
			continue
		}
		seen[s.Name] = true
	}
}

// segRef reports an unresolved reference if name is not a known segment.
func (v *validator) segRef(line int, name string) {
	if _, ok := v.g.Segment(name); !ok {
		v.report(line, errors.ErrCodeUnresolvedReference, name)
	}
}

func (v *validator) checkReferences() {
	for _, l := range v.g.Links() {
		v.segRef(l.Line(), l.From.Name)
		v.segRef(l.Line(), l.To.Name)
	}
	for _, c := range v.g.Containments() {
		v.segRef(c.Line(), c.Container.Name)
		v.segRef(c.Line(), c.Contained.Name)
	}
	for _, j := range v.g.Jumps() {
		v.segRef(j.Line(), j.From.Name)
		v.segRef(j.Line(), j.To.Name)
	}
	for _, p := range v.g.Paths() {
		for _, step := range p.Steps {
			v.segRef(p.Line(), step.Name)
		}
	}
	for _, w := range v.g.Walks() {
		for _, step := range w.Steps {
			v.segRef(w.Line(), step.Name)
		}
	}
	for _, e := range v.g.Edges() {
		v.segRef(e.Line(), e.Sid1.Name)
		v.segRef(e.Line(), e.Sid2.Name)
	}
	for _, f := range v.g.Fragments() {
		// The external read is outside the graph; only the segment side
		// must resolve.
		v.segRef(f.Line(), f.SegmentID)
	}
	for _, gp := range v.g.Gaps() {
		v.segRef(gp.Line(), gp.Sid1.Name)
		v.segRef(gp.Line(), gp.Sid2.Name)
	}
	for _, gr := range v.g.Groups() {
		// Group members may name any record kind, segments and other
		// groups included.
		for _, m := range gr.Members {
			if _, ok := v.g.Named(m.Name); !ok {
				v.report(gr.Line(), errors.ErrCodeUnresolvedReference, m.Name)
			}
		}
	}
}

// checkGroupCycles walks group-to-group membership with white/gray/black
// coloring. Each distinct cycle is reported once, naming its members.
func (v *validator) checkGroupCycles() {
	groups := make(map[string]*gfa.Group)
	for _, gr := range v.g.Groups() {
		if _, exists := groups[gr.EffectiveID()]; !exists {
			groups[gr.EffectiveID()] = gr
		}
	}

	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(groups))
	var stack []string

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		stack = append(stack, id)
		for _, m := range groups[id].Members {
			child, ok := groups[m.Name]
			if !ok {
				continue
			}
			cid := child.EffectiveID()
			switch color[cid] {
			case white:
				dfs(cid)
			case gray:
				start := 0
				for i, s := range stack {
					if s == cid {
						start = i
						break
					}
				}
				cycle := append(append([]string{}, stack[start:]...), cid)
				v.report(child.Line(), errors.ErrCodeCyclicGroupReference, strings.Join(cycle, " -> "))
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
	}

	for _, gr := range v.g.Groups() {
		if color[gr.EffectiveID()] == white {
			dfs(gr.EffectiveID())
		}
	}
}

// checkOverlaps re-surfaces overlap and alignment text that fails the
// grammar. These are warnings: the parser keeps such fields verbatim so
// the record itself survives.
func (v *validator) checkOverlaps() {
	for _, l := range v.g.Links() {
		if !gfa.ValidOverlap(l.Overlap) {
			v.report(l.Line(), errors.ErrCodeInvalidOverlap, l.Overlap)
		}
	}
	for _, c := range v.g.Containments() {
		if !gfa.ValidOverlap(c.Overlap) {
			v.report(c.Line(), errors.ErrCodeInvalidOverlap, c.Overlap)
		}
	}
	for _, p := range v.g.Paths() {
		starred := len(p.Overlaps) == 1 && p.Overlaps[0] == "*"
		if !starred && len(p.Overlaps) != len(p.Steps)-1 {
			v.report(p.Line(), errors.ErrCodePathOverlapMismatch, p.Name)
		}
		for _, o := range p.Overlaps {
			if !gfa.ValidOverlap(o) {
				v.report(p.Line(), errors.ErrCodeInvalidOverlap, o)
			}
		}
	}
	for _, e := range v.g.Edges() {
		if !gfa.ValidAlignment(e.Alignment) {
			v.report(e.Line(), errors.ErrCodeInvalidOverlap, e.Alignment)
		}
	}
	for _, f := range v.g.Fragments() {
		if !gfa.ValidAlignment(f.Alignment) {
			v.report(f.Line(), errors.ErrCodeInvalidOverlap, f.Alignment)
		}
	}
}

// interval checks one begin/end position pair against an optional segment
// length.
func (v *validator) interval(line int, name string, beg, end gfa.Position) {
	if beg.Value > end.Value {
		v.report(line, errors.ErrCodeInvalidRange, beg.String()+".."+end.String())
		return
	}
	s, ok := v.g.Segment(name)
	if !ok {
		return
	}
	if n, known := s.EffectiveLength(); known && end.Value > n {
		v.report(line, errors.ErrCodeInvalidRange, end.String())
	}
}

func (v *validator) checkRanges() {
	for _, e := range v.g.Edges() {
		v.interval(e.Line(), e.Sid1.Name, e.Beg1, e.End1)
		v.interval(e.Line(), e.Sid2.Name, e.Beg2, e.End2)
	}
	for _, f := range v.g.Fragments() {
		v.interval(f.Line(), f.SegmentID, f.SegBeg, f.SegEnd)
		if f.FragBeg.Value > f.FragEnd.Value {
			v.report(f.Line(), errors.ErrCodeInvalidRange, f.FragBeg.String()+".."+f.FragEnd.String())
		}
	}
	for _, w := range v.g.Walks() {
		if w.SeqStart != nil && w.SeqEnd != nil && *w.SeqStart > *w.SeqEnd {
			v.report(w.Line(), errors.ErrCodeInvalidRange, w.SeqID)
		}
	}
}

// checkTopology reports informational findings: self-links, self-
// containments, isolated segments, and dead-end tips.
func (v *validator) checkTopology() {
	degree := make(map[string]int)
	referenced := make(map[string]bool)

	touch := func(name string) { referenced[name] = true }

	for _, l := range v.g.Links() {
		if l.From.Name == l.To.Name {
			v.report(l.Line(), errors.ErrCodeSelfLink, l.From.Name)
		}
		degree[l.From.Name]++
		degree[l.To.Name]++
		touch(l.From.Name)
		touch(l.To.Name)
	}
	for _, c := range v.g.Containments() {
		if c.Container.Name == c.Contained.Name {
			v.report(c.Line(), errors.ErrCodeSelfContainment, c.Container.Name)
		}
		touch(c.Container.Name)
		touch(c.Contained.Name)
	}
	for _, e := range v.g.Edges() {
		degree[e.Sid1.Name]++
		degree[e.Sid2.Name]++
		touch(e.Sid1.Name)
		touch(e.Sid2.Name)
	}
	for _, j := range v.g.Jumps() {
		touch(j.From.Name)
		touch(j.To.Name)
	}
	for _, gp := range v.g.Gaps() {
		touch(gp.Sid1.Name)
		touch(gp.Sid2.Name)
	}
	for _, f := range v.g.Fragments() {
		touch(f.SegmentID)
	}
	for _, p := range v.g.Paths() {
		for _, s := range p.Steps {
			touch(s.Name)
		}
	}
	for _, w := range v.g.Walks() {
		for _, s := range w.Steps {
			touch(s.Name)
		}
	}
	for _, gr := range v.g.Groups() {
		for _, m := range gr.Members {
			touch(m.Name)
		}
	}

	segments := v.g.Segments()
	connective := len(v.g.Links()) > 0 || len(v.g.Edges()) > 0
	for _, s := range segments {
		if !referenced[s.Name] {
			v.report(s.Line(), errors.ErrCodeIsolatedSegment, s.Name)
			continue
		}
		if connective && len(segments) > 2 && degree[s.Name] == 1 {
			v.report(s.Line(), errors.ErrCodeDeadEnd, s.Name)
		}
	}
}
