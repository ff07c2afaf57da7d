// Package report renders validation findings for terminal display.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/parfait-bio/parfait/pkg/errors"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleInfo   = lipgloss.NewStyle().Foreground(colorGray)
	styleWarn   = lipgloss.NewStyle().Foreground(colorYellow)
	styleSevere = lipgloss.NewStyle().Foreground(colorRed)
	styleError  = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleOK     = lipgloss.NewStyle().Foreground(colorGreen)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconOK      = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
)

func severityStyle(s errors.Severity) (lipgloss.Style, string) {
	switch s {
	case errors.SeverityInfo:
		return styleInfo, iconInfo
	case errors.SeverityWarn:
		return styleWarn, iconWarning
	case errors.SeveritySevere:
		return styleSevere, iconError
	default:
		return styleError, iconError
	}
}

// =============================================================================
// Options
// =============================================================================

// Options controls report rendering.
type Options struct {
	// Plain disables color and icon styling.
	Plain bool

	// MinSeverity drops findings below this level.
	MinSeverity errors.Severity
}

// =============================================================================
// Rendering
// =============================================================================

// Render writes one styled line per finding to w, followed by a summary
// line. Findings below opts.MinSeverity are omitted.
func Render(w io.Writer, msgs errors.List, opts Options) error {
	shown := msgs.Filter(opts.MinSeverity)
	for _, m := range shown {
		var line string
		if opts.Plain {
			line = fmt.Sprintf("%s %s", m.Severity(), m.Error())
		} else {
			style, icon := severityStyle(m.Severity())
			line = style.Render(icon) + " " + m.Error()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write report")
		}
	}
	summary := Summary(msgs)
	if !opts.Plain {
		if len(msgs) == 0 {
			summary = styleOK.Render(iconOK) + " " + styleDim.Render(summary)
		} else {
			summary = styleDim.Render(summary)
		}
	}
	if _, err := fmt.Fprintln(w, summary); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write report")
	}
	return nil
}

// Summary returns a one-line count of findings by severity, such as
// "2 errors · 1 warning".
func Summary(msgs errors.List) string {
	if len(msgs) == 0 {
		return "no findings"
	}
	counts := make(map[errors.Severity]int)
	for _, m := range msgs {
		counts[m.Severity()]++
	}
	var parts []string
	for _, s := range []errors.Severity{
		errors.SeverityFatal,
		errors.SeverityError,
		errors.SeveritySevere,
		errors.SeverityWarn,
		errors.SeverityInfo,
	} {
		if n := counts[s]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, noun(s, n)))
		}
	}
	return strings.Join(parts, " · ")
}

func noun(s errors.Severity, n int) string {
	word := s.String()
	if s == errors.SeverityWarn {
		word = "warning"
	}
	if n != 1 && s != errors.SeverityInfo && s != errors.SeveritySevere {
		word += "s"
	}
	return word
}
