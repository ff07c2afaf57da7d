// Package parser reads GFA text into the gfa model.
//
// Parsing is a single synchronous pass over the input in line order. Content
// problems never abort the run: each malformed line or field is recorded as
// a positional message and parsing continues, so callers always get both the
// graph that could be recovered and the complete, ordered list of findings.
// Only a failing reader produces a non-nil error.
//
// The first header's VN tag fixes the declared version, overriding an
// assumed Options.Version fallback. With StrictVersion
// set, records that are not valid in that version are rejected with a
// VERSION_MISMATCH finding; otherwise each record's grammar is inferred from
// its record-type letter alone, with 'S' handled by a unified segment
// grammar valid under both dialects.
package parser

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/parfait-bio/parfait/pkg/errors"
	"github.com/parfait-bio/parfait/pkg/gfa"
)

// maxLineSize bounds a single input line. Segment lines carry whole contig
// sequences, so the limit is generous.
const maxLineSize = 512 * 1024 * 1024

// Parse reads GFA text from r. The returned error is non-nil only when the
// reader itself fails; everything else lands in the message list, ordered
// by line.
func Parse(r io.Reader, opts Options) (*gfa.Graph, errors.List, error) {
	p := &parser{
		opts: opts.WithDefaults(),
		g:    gfa.NewGraph(),
	}
	if p.opts.Version != gfa.VersionUnknown {
		p.g.SetVersion(p.opts.Version)
		p.assumed = true
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" || line[0] == '#' {
			continue
		}
		p.parseLine(lineNo, line)
	}
	if err := scanner.Err(); err != nil {
		return p.g, p.msgs, errors.Wrap(errors.ErrCodeIO, err, "read input")
	}

	if !p.declared && !p.assumed {
		p.report(0, 0, errors.ErrCodeMissingVersion, "")
	}
	p.msgs.Sort()

	p.opts.Logger.Debugf("parsed %d records with %d findings (version %s)",
		p.g.Len(), len(p.msgs), p.g.Version())
	if p.suppressed > 0 {
		p.opts.Logger.Warnf("dropped %d findings past the max_errors cap", p.suppressed)
	}
	return p.g, p.msgs, nil
}

// ParseString parses GFA text from a string.
func ParseString(s string, opts Options) (*gfa.Graph, errors.List, error) {
	return Parse(strings.NewReader(s), opts)
}

// ParseFile parses the GFA file at path.
func ParseFile(path string, opts Options) (*gfa.Graph, errors.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return Parse(f, opts)
}

// declared is set by the first header with a valid VN tag; assumed is set
// when Options.Version supplied a fallback. A declaration always overrides
// the fallback, so only a second declaring header counts as a duplicate.
type parser struct {
	opts       Options
	g          *gfa.Graph
	msgs       errors.List
	declared   bool
	assumed    bool
	suppressed int
}

// report records a finding unless the MaxErrors cap is reached. Capped
// findings are counted but dropped; parsing itself never stops.
func (p *parser) report(line, field int, code errors.Code, offender string) {
	if p.opts.MaxErrors > 0 && len(p.msgs) >= p.opts.MaxErrors {
		p.suppressed++
		return
	}
	p.msgs = append(p.msgs, errors.Message{Line: line, Field: field, Code: code, Offender: offender})
}

func (p *parser) parseLine(lineNo int, line string) {
	fields := strings.Split(line, "\t")
	letter := fields[0]
	if len(letter) != 1 {
		p.report(lineNo, 1, errors.ErrCodeUnrecognizedLine, letter)
		return
	}

	kind := letter[0]
	switch kind {
	case 'H', 'S', 'L', 'C', 'P', 'W', 'J', 'E', 'F', 'G', 'O', 'U':
	default:
		p.report(lineNo, 1, errors.ErrCodeUnrecognizedLine, letter)
		return
	}

	if p.g.Version() == gfa.VersionUnknown {
		if inferred := inferVersion(kind); inferred != gfa.VersionUnknown {
			p.g.SetVersion(inferred)
			p.opts.Logger.Debugf("inferred version %s from %c record at line %d", inferred, kind, lineNo)
		}
	}
	if p.opts.StrictVersion {
		if v := p.g.Version(); v != gfa.VersionUnknown && !versionAllows(v, kind) {
			p.report(lineNo, 1, errors.ErrCodeVersionMismatch, letter)
			return
		}
	}

	switch kind {
	case 'H':
		p.parseHeader(lineNo, fields)
	case 'S':
		p.parseSegment(lineNo, fields)
	case 'L':
		p.parseLink(lineNo, fields)
	case 'C':
		p.parseContainment(lineNo, fields)
	case 'P':
		p.parsePath(lineNo, fields)
	case 'W':
		p.parseWalk(lineNo, fields)
	case 'J':
		p.parseJump(lineNo, fields)
	case 'E':
		p.parseEdge(lineNo, fields)
	case 'F':
		p.parseFragment(lineNo, fields)
	case 'G':
		p.parseGap(lineNo, fields)
	case 'O':
		p.parseGroup(lineNo, fields, true)
	case 'U':
		p.parseGroup(lineNo, fields, false)
	}
}

// versionAllows reports whether a record letter is valid under a declared
// version. Headers and segments exist in every dialect; walks arrived with
// 1.1 and jumps with 1.2.
func versionAllows(v gfa.Version, kind byte) bool {
	switch kind {
	case 'H', 'S':
		return true
	case 'L', 'C', 'P':
		return v.IsV1()
	case 'W':
		return v == gfa.Version1_1 || v == gfa.Version1_2
	case 'J':
		return v == gfa.Version1_2
	case 'E', 'F', 'G', 'O', 'U':
		return v.IsV2()
	default:
		return false
	}
}

// inferVersion maps a record letter to the version family it implies, for
// inputs with no declared version. 'H' and 'S' are ambiguous. Walks and
// jumps imply their introducing minor version.
func inferVersion(kind byte) gfa.Version {
	switch kind {
	case 'L', 'C', 'P':
		return gfa.Version1
	case 'W':
		return gfa.Version1_1
	case 'J':
		return gfa.Version1_2
	case 'E', 'F', 'G', 'O', 'U':
		return gfa.Version2
	default:
		return gfa.VersionUnknown
	}
}
