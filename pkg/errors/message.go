package errors

import (
	"fmt"
	"sort"
)

// Severity classifies how serious a message is for downstream consumers.
type Severity int

// Severity levels, ordered from least to most serious.
const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeveritySevere
	SeverityError
	SeverityFatal
)

// String returns the lowercase name of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeveritySevere:
		return "severe"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// severities maps each code to its severity. Codes not listed default to
// SeverityError.
var severities = map[Code]Severity{
	ErrCodeIsolatedSegment: SeverityInfo,
	ErrCodeDeadEnd:         SeverityInfo,

	ErrCodeSelfLink:        SeverityWarn,
	ErrCodeSelfContainment: SeverityWarn,
	ErrCodeInvalidOverlap:  SeverityWarn,
	ErrCodeDuplicateTag:    SeverityWarn,
	ErrCodeDuplicateHeader: SeverityWarn,
	ErrCodeMissingVersion:  SeverityWarn,
	ErrCodeInvalidTagType:  SeverityWarn,

	ErrCodePathOverlapMismatch: SeveritySevere,
	ErrCodeUnresolvedReference: SeveritySevere,

	ErrCodeIO: SeverityFatal,
}

// SeverityOf returns the severity associated with a code.
func SeverityOf(code Code) Severity {
	if s, ok := severities[code]; ok {
		return s
	}
	return SeverityError
}

// Message is a single finding tied to a position in the input.
//
// Line is the 1-based line number in the source text, or 0 when the finding
// is not tied to a specific line (for example a whole-graph validation
// result). Field is the 1-based tab-separated column, or 0 when the whole
// line is at fault. Offender carries the offending token verbatim.
type Message struct {
	Line     int
	Field    int
	Code     Code
	Offender string
}

// Severity returns the severity level of the message's code.
func (m Message) Severity() Severity {
	return SeverityOf(m.Code)
}

// Error implements the error interface.
func (m Message) Error() string {
	s := string(m.Code)
	if m.Line > 0 {
		if m.Field > 0 {
			s = fmt.Sprintf("line %d, field %d: %s", m.Line, m.Field, s)
		} else {
			s = fmt.Sprintf("line %d: %s", m.Line, s)
		}
	}
	if m.Offender != "" {
		s = fmt.Sprintf("%s: %q", s, m.Offender)
	}
	return s
}

// List is an ordered collection of messages.
type List []Message

// Sort orders the list by line, then field, keeping the relative order of
// messages on the same position stable.
func (l List) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		if l[i].Line != l[j].Line {
			return l[i].Line < l[j].Line
		}
		return l[i].Field < l[j].Field
	})
}

// Filter returns the messages whose severity is at least min.
func (l List) Filter(min Severity) List {
	var out List
	for _, m := range l {
		if m.Severity() >= min {
			out = append(out, m)
		}
	}
	return out
}

// Count returns how many messages have the given code.
func (l List) Count(code Code) int {
	n := 0
	for _, m := range l {
		if m.Code == code {
			n++
		}
	}
	return n
}

// HasErrors reports whether any message is SeverityError or worse.
func (l List) HasErrors() bool {
	for _, m := range l {
		if m.Severity() >= SeverityError {
			return true
		}
	}
	return false
}

// MaxSeverity returns the highest severity present, or SeverityInfo for an
// empty list.
func (l List) MaxSeverity() Severity {
	max := SeverityInfo
	for _, m := range l {
		if s := m.Severity(); s > max {
			max = s
		}
	}
	return max
}
