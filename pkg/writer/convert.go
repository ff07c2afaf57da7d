package writer

import (
	"strconv"
	"strings"

	"github.com/parfait-bio/parfait/pkg/errors"
	"github.com/parfait-bio/parfait/pkg/gfa"
	"github.com/parfait-bio/parfait/pkg/tag"
)

// Cross-version conversion policy:
//
//	Link, Containment -> Edge with inferred full-length position ranges
//	Edge              -> Link, keeping a CIGAR alignment as the overlap
//	Gap               -> Jump (1.2) or Link plus DI distance tag (1.0/1.1)
//	Jump              -> Gap (2.0) or Link plus DI distance tag (1.0/1.1)
//	Path              -> no GFA2 shape, rejected
//	Walk              -> native only at 1.1/1.2, rejected elsewhere
//	Fragment, Group   -> no GFA1 shape, rejected
//
// Rejections use CONVERSION_UNSUPPORTED so callers can distinguish policy
// limits from I/O failures.

func unsupported(kind gfa.Kind, name string, version gfa.Version) error {
	return errors.New(errors.ErrCodeUnsupportedConversion,
		"%s record %q has no GFA %s form", kind, name, version)
}

func (e *emitter) link(l *gfa.Link) {
	if e.version.IsV1() {
		e.line(&l.TagMap, "L", l.From.Name, l.From.Orient.String(), l.To.Name, l.To.Orient.String(), l.Overlap)
		return
	}
	beg1, end1 := e.fullRange(l.From.Name)
	beg2, end2 := e.fullRange(l.To.Name)
	e.line(&l.TagMap, "E", "*", l.From.String(), l.To.String(),
		beg1, end1, beg2, end2, cigarOr(l.Overlap, "*"))
}

func (e *emitter) containment(c *gfa.Containment) {
	if e.version.IsV1() {
		e.line(&c.TagMap, "C", c.Container.Name, c.Container.Orient.String(),
			c.Contained.Name, c.Contained.Orient.String(),
			strconv.FormatInt(c.Pos, 10), c.Overlap)
		return
	}
	beg1, end1 := e.fullRange(c.Container.Name)
	beg2, end2 := e.fullRange(c.Contained.Name)
	e.line(&c.TagMap, "E", "*", c.Container.String(), c.Contained.String(),
		beg1, end1, beg2, end2, cigarOr(c.Overlap, "*"))
}

func (e *emitter) path(p *gfa.Path) error {
	if !e.version.IsV1() {
		return unsupported(p.Kind(), p.Name, e.version)
	}
	steps := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		steps[i] = s.String()
	}
	e.line(&p.TagMap, "P", p.Name, strings.Join(steps, ","), strings.Join(p.Overlaps, ","))
	return nil
}

func (e *emitter) walk(w *gfa.Walk) error {
	// Walks arrived with 1.1; a plain 1.0 target has no W record any more
	// than GFA2 does.
	if e.version != gfa.Version1_1 && e.version != gfa.Version1_2 {
		return unsupported(w.Kind(), w.SampleID, e.version)
	}
	walk := "*"
	if len(w.Steps) > 0 {
		var sb strings.Builder
		for _, s := range w.Steps {
			if s.Orient == gfa.OrientReverse {
				sb.WriteByte('<')
			} else {
				sb.WriteByte('>')
			}
			sb.WriteString(s.Name)
		}
		walk = sb.String()
	}
	e.line(&w.TagMap, "W", w.SampleID, strconv.FormatInt(w.HapIndex, 10), w.SeqID,
		optInt(w.SeqStart), optInt(w.SeqEnd), walk)
	return nil
}

func (e *emitter) jump(j *gfa.Jump) {
	switch {
	case e.version == gfa.Version1_2:
		e.line(&j.TagMap, "J", j.From.Name, j.From.Orient.String(),
			j.To.Name, j.To.Orient.String(), optInt(j.Distance))
	case e.version.IsV1():
		// Pre-1.2 targets have no jump record; emit the adjacency as an
		// unaligned link and keep the distance in a DI tag.
		tags := j.TagMap.Clone()
		if j.Distance != nil {
			tags.Set("DI", tag.Int(*j.Distance))
		}
		e.line(&tags, "L", j.From.Name, j.From.Orient.String(),
			j.To.Name, j.To.Orient.String(), "*")
	default:
		dist := int64(0)
		if j.Distance != nil {
			dist = *j.Distance
		}
		e.line(&j.TagMap, "G", "*", j.From.String(), j.To.String(),
			strconv.FormatInt(dist, 10), "*")
	}
}

func (e *emitter) edge(ed *gfa.Edge) {
	if e.version.IsV2() {
		e.line(&ed.TagMap, "E", ed.ID, ed.Sid1.String(), ed.Sid2.String(),
			ed.Beg1.String(), ed.End1.String(), ed.Beg2.String(), ed.End2.String(), ed.Alignment)
		return
	}
	tags := ed.TagMap
	if ed.ID != "*" {
		if _, ok := tags.Get("ID"); !ok {
			tags = ed.TagMap.Clone()
			tags.Set("ID", tag.Text(ed.ID))
		}
	}
	e.line(&tags, "L", ed.Sid1.Name, ed.Sid1.Orient.String(),
		ed.Sid2.Name, ed.Sid2.Orient.String(), cigarOr(ed.Alignment, "*"))
}

func (e *emitter) fragment(f *gfa.Fragment) error {
	if !e.version.IsV2() {
		return unsupported(f.Kind(), f.SegmentID, e.version)
	}
	e.line(&f.TagMap, "F", f.SegmentID, f.External.String(),
		f.SegBeg.String(), f.SegEnd.String(), f.FragBeg.String(), f.FragEnd.String(), f.Alignment)
	return nil
}

func (e *emitter) gap(g *gfa.Gap) {
	switch {
	case e.version.IsV2():
		variance := "*"
		if g.Variance != nil {
			variance = strconv.FormatInt(*g.Variance, 10)
		}
		e.line(&g.TagMap, "G", g.ID, g.Sid1.String(), g.Sid2.String(),
			strconv.FormatInt(g.Distance, 10), variance)
	case e.version == gfa.Version1_2:
		e.line(&g.TagMap, "J", g.Sid1.Name, g.Sid1.Orient.String(),
			g.Sid2.Name, g.Sid2.Orient.String(), strconv.FormatInt(g.Distance, 10))
	default:
		tags := g.TagMap.Clone()
		tags.Set("DI", tag.Int(g.Distance))
		e.line(&tags, "L", g.Sid1.Name, g.Sid1.Orient.String(),
			g.Sid2.Name, g.Sid2.Orient.String(), "*")
	}
}

func (e *emitter) group(g *gfa.Group) error {
	if !e.version.IsV2() {
		return unsupported(g.Kind(), g.EffectiveID(), e.version)
	}
	members := make([]string, len(g.Members))
	for i, m := range g.Members {
		members[i] = m.String()
	}
	letter := "U"
	if g.Ordered {
		letter = "O"
	}
	e.line(&g.TagMap, letter, g.ID, strings.Join(members, " "))
	return nil
}

// fullRange infers the whole-segment interval used when a GFA1 adjacency
// is promoted to an edge. An unknown length collapses to an empty 0..0.
func (e *emitter) fullRange(name string) (string, string) {
	if s, ok := e.g.Segment(name); ok {
		if n, known := s.EffectiveLength(); known {
			return "0", strconv.FormatInt(n, 10) + "$"
		}
	}
	return "0", "0"
}

// cigarOr returns s when it is CIGAR text, otherwise the fallback.
func cigarOr(s, fallback string) string {
	if gfa.IsCIGAR(s) {
		return s
	}
	return fallback
}

func optInt(v *int64) string {
	if v == nil {
		return "*"
	}
	return strconv.FormatInt(*v, 10)
}
