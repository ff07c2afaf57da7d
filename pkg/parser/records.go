package parser

import (
	"strconv"
	"strings"

	"github.com/parfait-bio/parfait/pkg/errors"
	"github.com/parfait-bio/parfait/pkg/gfa"
	"github.com/parfait-bio/parfait/pkg/tag"
)

// parseTags parses the optional fields starting at index start. A bad tag
// drops only that tag; on a duplicate name the first occurrence wins. Both
// are reported.
func (p *parser) parseTags(lineNo int, fields []string, start int) tag.Map {
	var m tag.Map
	for i := start; i < len(fields); i++ {
		f, err := tag.Parse(fields[i])
		if err != nil {
			p.report(lineNo, i+1, errors.GetCode(err), fields[i])
			continue
		}
		if rt, ok := tag.ReservedType(f.Name); ok && rt != f.Val.Type() {
			p.report(lineNo, i+1, errors.ErrCodeInvalidTagType, fields[i])
		}
		if m.Add(f.Name, f.Val) != nil {
			p.report(lineNo, i+1, errors.ErrCodeDuplicateTag, f.Name)
		}
	}
	return m
}

func (p *parser) parseHeader(lineNo int, fields []string) {
	m := p.parseTags(lineNo, fields, 1)

	if v, ok := m.Get("VN"); ok {
		if t, isText := v.(tag.Text); isText {
			ver, valid := gfa.ParseVersion(string(t))
			switch {
			case !valid:
				p.report(lineNo, 0, errors.ErrCodeUnknownVersion, string(t))
			case p.declared:
				p.report(lineNo, 0, errors.ErrCodeDuplicateHeader, string(t))
			default:
				p.declared = true
				p.g.SetVersion(ver)
			}
		}
	}

	p.g.Append(&gfa.Header{LineNo: lineNo, TagMap: m})
}

func (p *parser) parseSegment(lineNo int, fields []string) {
	v := p.g.Version()
	isV2 := v.IsV2()
	// Unified grammar: with no version declared, an all-digit third column
	// marks the GFA2 shape with its explicit length.
	if v == gfa.VersionUnknown && len(fields) >= 4 && allDigits(fields[2]) {
		isV2 = true
	}

	minFields := 3
	if isV2 {
		minFields = 4
	}
	if len(fields) < minFields {
		p.report(lineNo, 0, errors.ErrCodeInvalidLine, fields[0])
		return
	}

	name := fields[1]
	if !gfa.ValidName(name) {
		p.report(lineNo, 2, errors.ErrCodeInvalidName, name)
		return
	}

	s := &gfa.Segment{LineNo: lineNo, Name: name}
	if isV2 {
		n, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil || n < 0 {
			p.report(lineNo, 3, errors.ErrCodeInvalidInteger, fields[2])
			return
		}
		s.Length = &n
		s.Sequence = fields[3]
		s.TagMap = p.parseTags(lineNo, fields, 4)
	} else {
		s.Sequence = fields[2]
		s.TagMap = p.parseTags(lineNo, fields, 3)
	}
	p.g.Append(s)
}

func (p *parser) parseLink(lineNo int, fields []string) {
	if len(fields) < 6 {
		p.report(lineNo, 0, errors.ErrCodeInvalidLine, fields[0])
		return
	}
	from, ok := p.orientedRef(lineNo, fields[1], fields[2], 2)
	if !ok {
		return
	}
	to, ok := p.orientedRef(lineNo, fields[3], fields[4], 4)
	if !ok {
		return
	}
	p.overlap(lineNo, fields[5], 6)
	p.g.Append(&gfa.Link{
		LineNo:  lineNo,
		From:    from,
		To:      to,
		Overlap: fields[5],
		TagMap:  p.parseTags(lineNo, fields, 6),
	})
}

func (p *parser) parseContainment(lineNo int, fields []string) {
	if len(fields) < 7 {
		p.report(lineNo, 0, errors.ErrCodeInvalidLine, fields[0])
		return
	}
	container, ok := p.orientedRef(lineNo, fields[1], fields[2], 2)
	if !ok {
		return
	}
	contained, ok := p.orientedRef(lineNo, fields[3], fields[4], 4)
	if !ok {
		return
	}
	pos, err := strconv.ParseInt(fields[5], 10, 64)
	if err != nil || pos < 0 {
		p.report(lineNo, 6, errors.ErrCodeInvalidInteger, fields[5])
		return
	}
	p.overlap(lineNo, fields[6], 7)
	p.g.Append(&gfa.Containment{
		LineNo:    lineNo,
		Container: container,
		Contained: contained,
		Pos:       pos,
		Overlap:   fields[6],
		TagMap:    p.parseTags(lineNo, fields, 7),
	})
}

func (p *parser) parsePath(lineNo int, fields []string) {
	if len(fields) < 4 {
		p.report(lineNo, 0, errors.ErrCodeInvalidLine, fields[0])
		return
	}
	name := fields[1]
	if !gfa.ValidName(name) {
		p.report(lineNo, 2, errors.ErrCodeInvalidName, name)
		return
	}

	// Steps are comma-separated; a semicolon separator (1.2 jump notation)
	// is accepted and treated the same.
	var steps []gfa.Ref
	for _, raw := range strings.FieldsFunc(fields[2], func(r rune) bool { return r == ',' || r == ';' }) {
		ref, ok := gfa.ParseRef(raw)
		if !ok {
			p.report(lineNo, 3, errors.ErrCodeInvalidStep, raw)
			return
		}
		steps = append(steps, ref)
	}
	if len(steps) == 0 {
		p.report(lineNo, 3, errors.ErrCodeInvalidStep, fields[2])
		return
	}

	var overlaps []string
	if fields[3] == "*" {
		overlaps = []string{"*"}
	} else {
		overlaps = strings.Split(fields[3], ",")
		for _, o := range overlaps {
			p.overlap(lineNo, o, 4)
		}
	}

	p.g.Append(&gfa.Path{
		LineNo:   lineNo,
		Name:     name,
		Steps:    steps,
		Overlaps: overlaps,
		TagMap:   p.parseTags(lineNo, fields, 4),
	})
}

func (p *parser) parseWalk(lineNo int, fields []string) {
	if len(fields) < 7 {
		p.report(lineNo, 0, errors.ErrCodeInvalidLine, fields[0])
		return
	}
	hap, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil || hap < 0 {
		p.report(lineNo, 3, errors.ErrCodeInvalidInteger, fields[2])
		return
	}
	start, ok := p.optInt(lineNo, fields[4], 5)
	if !ok {
		return
	}
	end, ok := p.optInt(lineNo, fields[5], 6)
	if !ok {
		return
	}
	steps, ok := parseWalkSteps(fields[6])
	if !ok {
		p.report(lineNo, 7, errors.ErrCodeInvalidStep, fields[6])
		return
	}

	p.g.Append(&gfa.Walk{
		LineNo:   lineNo,
		SampleID: fields[1],
		HapIndex: hap,
		SeqID:    fields[3],
		SeqStart: start,
		SeqEnd:   end,
		Steps:    steps,
		TagMap:   p.parseTags(lineNo, fields, 7),
	})
}

func (p *parser) parseJump(lineNo int, fields []string) {
	if len(fields) < 6 {
		p.report(lineNo, 0, errors.ErrCodeInvalidLine, fields[0])
		return
	}
	from, ok := p.orientedRef(lineNo, fields[1], fields[2], 2)
	if !ok {
		return
	}
	to, ok := p.orientedRef(lineNo, fields[3], fields[4], 4)
	if !ok {
		return
	}
	var dist *int64
	if fields[5] != "*" {
		d, err := strconv.ParseInt(fields[5], 10, 64)
		if err != nil {
			p.report(lineNo, 6, errors.ErrCodeInvalidInteger, fields[5])
			return
		}
		dist = &d
	}
	p.g.Append(&gfa.Jump{
		LineNo:   lineNo,
		From:     from,
		To:       to,
		Distance: dist,
		TagMap:   p.parseTags(lineNo, fields, 6),
	})
}

func (p *parser) parseEdge(lineNo int, fields []string) {
	if len(fields) < 9 {
		p.report(lineNo, 0, errors.ErrCodeInvalidLine, fields[0])
		return
	}
	id := fields[1]
	if id != "*" && !gfa.ValidName(id) {
		p.report(lineNo, 2, errors.ErrCodeInvalidName, id)
		return
	}
	sid1, ok := gfa.ParseRef(fields[2])
	if !ok {
		p.report(lineNo, 3, errors.ErrCodeInvalidOrientation, fields[2])
		return
	}
	sid2, ok := gfa.ParseRef(fields[3])
	if !ok {
		p.report(lineNo, 4, errors.ErrCodeInvalidOrientation, fields[3])
		return
	}
	var pos [4]gfa.Position
	for i := 0; i < 4; i++ {
		pp, ok := gfa.ParsePosition(fields[4+i])
		if !ok {
			p.report(lineNo, 5+i, errors.ErrCodeInvalidPosition, fields[4+i])
			return
		}
		pos[i] = pp
	}
	p.g.Append(&gfa.Edge{
		LineNo:    lineNo,
		ID:        id,
		Sid1:      sid1,
		Sid2:      sid2,
		Beg1:      pos[0],
		End1:      pos[1],
		Beg2:      pos[2],
		End2:      pos[3],
		Alignment: fields[8],
		TagMap:    p.parseTags(lineNo, fields, 9),
	})
}

func (p *parser) parseFragment(lineNo int, fields []string) {
	if len(fields) < 8 {
		p.report(lineNo, 0, errors.ErrCodeInvalidLine, fields[0])
		return
	}
	sid := fields[1]
	if !gfa.ValidName(sid) {
		p.report(lineNo, 2, errors.ErrCodeInvalidName, sid)
		return
	}
	external, ok := gfa.ParseRef(fields[2])
	if !ok {
		p.report(lineNo, 3, errors.ErrCodeInvalidOrientation, fields[2])
		return
	}
	var pos [4]gfa.Position
	for i := 0; i < 4; i++ {
		pp, ok := gfa.ParsePosition(fields[3+i])
		if !ok {
			p.report(lineNo, 4+i, errors.ErrCodeInvalidPosition, fields[3+i])
			return
		}
		pos[i] = pp
	}
	p.g.Append(&gfa.Fragment{
		LineNo:    lineNo,
		SegmentID: sid,
		External:  external,
		SegBeg:    pos[0],
		SegEnd:    pos[1],
		FragBeg:   pos[2],
		FragEnd:   pos[3],
		Alignment: fields[7],
		TagMap:    p.parseTags(lineNo, fields, 8),
	})
}

func (p *parser) parseGap(lineNo int, fields []string) {
	if len(fields) < 6 {
		p.report(lineNo, 0, errors.ErrCodeInvalidLine, fields[0])
		return
	}
	id := fields[1]
	if id != "*" && !gfa.ValidName(id) {
		p.report(lineNo, 2, errors.ErrCodeInvalidName, id)
		return
	}
	sid1, ok := gfa.ParseRef(fields[2])
	if !ok {
		p.report(lineNo, 3, errors.ErrCodeInvalidOrientation, fields[2])
		return
	}
	sid2, ok := gfa.ParseRef(fields[3])
	if !ok {
		p.report(lineNo, 4, errors.ErrCodeInvalidOrientation, fields[3])
		return
	}
	dist, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		p.report(lineNo, 5, errors.ErrCodeInvalidInteger, fields[4])
		return
	}
	var variance *int64
	if fields[5] != "*" {
		v, err := strconv.ParseInt(fields[5], 10, 64)
		if err != nil || v < 0 {
			p.report(lineNo, 6, errors.ErrCodeInvalidInteger, fields[5])
			return
		}
		variance = &v
	}
	p.g.Append(&gfa.Gap{
		LineNo:   lineNo,
		ID:       id,
		Sid1:     sid1,
		Sid2:     sid2,
		Distance: dist,
		Variance: variance,
		TagMap:   p.parseTags(lineNo, fields, 6),
	})
}

func (p *parser) parseGroup(lineNo int, fields []string, ordered bool) {
	if len(fields) < 3 {
		p.report(lineNo, 0, errors.ErrCodeInvalidLine, fields[0])
		return
	}
	id := fields[1]
	if id != "*" && !gfa.ValidName(id) {
		p.report(lineNo, 2, errors.ErrCodeInvalidName, id)
		return
	}
	raw := strings.Fields(fields[2])
	if len(raw) == 0 {
		p.report(lineNo, 3, errors.ErrCodeInvalidLine, fields[2])
		return
	}
	var members []gfa.Ref
	for _, m := range raw {
		ref, ok := gfa.ParseOptRef(m)
		if !ok {
			p.report(lineNo, 3, errors.ErrCodeInvalidName, m)
			return
		}
		members = append(members, ref)
	}
	p.g.Append(&gfa.Group{
		LineNo:  lineNo,
		ID:      id,
		Ordered: ordered,
		Members: members,
		TagMap:  p.parseTags(lineNo, fields, 3),
	})
}

// orientedRef assembles a name field and its separate orientation field,
// as used by the GFA1 link, containment, and jump records. orientIdx is
// the 0-based index of the orientation field.
func (p *parser) orientedRef(lineNo int, name, orient string, orientIdx int) (gfa.Ref, bool) {
	if !gfa.ValidName(name) {
		p.report(lineNo, orientIdx, errors.ErrCodeInvalidName, name)
		return gfa.Ref{}, false
	}
	o, ok := gfa.ParseOrientation(orient)
	if !ok {
		p.report(lineNo, orientIdx+1, errors.ErrCodeInvalidOrientation, orient)
		return gfa.Ref{}, false
	}
	return gfa.Ref{Name: name, Orient: o}, true
}

// overlap flags overlap text that fails the CIGAR grammar. The record is
// still added with the field kept verbatim; the finding is a warning.
func (p *parser) overlap(lineNo int, s string, field int) {
	if !gfa.ValidOverlap(s) {
		p.report(lineNo, field, errors.ErrCodeInvalidOverlap, s)
	}
}

// optInt parses a non-negative integer field that may be "*".
func (p *parser) optInt(lineNo int, s string, field int) (*int64, bool) {
	if s == "*" {
		return nil, true
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		p.report(lineNo, field, errors.ErrCodeInvalidInteger, s)
		return nil, false
	}
	return &v, true
}

// parseWalkSteps parses a walk string of "><"-prefixed segment names.
// A "*" walk has no steps.
func parseWalkSteps(s string) ([]gfa.Ref, bool) {
	if s == "*" {
		return nil, true
	}
	if s == "" || (s[0] != '>' && s[0] != '<') {
		return nil, false
	}
	var steps []gfa.Ref
	i := 0
	for i < len(s) {
		orient := gfa.OrientForward
		if s[i] == '<' {
			orient = gfa.OrientReverse
		}
		i++
		start := i
		for i < len(s) && s[i] != '>' && s[i] != '<' {
			i++
		}
		name := s[start:i]
		if !gfa.ValidName(name) {
			return nil, false
		}
		steps = append(steps, gfa.Ref{Name: name, Orient: orient})
	}
	return steps, true
}

// allDigits reports whether s is non-empty ASCII digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
