// Package pkg provides the core libraries for Parfait assembly-graph tooling.
//
// # Overview
//
// Parfait reads, validates, and writes Graphical Fragment Assembly (GFA)
// files, covering GFA 1.0, 1.1, 1.2, and 2.0. The pkg directory is organized
// into six areas:
//
//  1. [gfa] - Graph model (records, versions, names, positions, alignments)
//  2. [parser] - Line-oriented GFA reader with error accumulation
//  3. [validate] - Whole-graph checks (references, cycles, overlaps, topology)
//  4. [writer] - Serialization and cross-version conversion
//  5. [tag] - Optional NAME:TYPE:VALUE fields shared by every record
//  6. [errors] / [report] - Error codes, positioned findings, terminal output
//
// # Architecture
//
// The typical data flow through Parfait:
//
//	GFA text
//	     ↓
//	[parser] package (tokenize records, accumulate findings)
//	     ↓
//	[gfa] package (ordered record graph + name indexes)
//	     ↓
//	[validate] package (cross-record checks)
//	     ↓
//	[writer] package (GFA text at any target version)
//
// # Quick Start
//
// Parse a file, validate it, and write it back out:
//
//	import (
//	    "github.com/parfait-bio/parfait/pkg/gfa"
//	    "github.com/parfait-bio/parfait/pkg/parser"
//	    "github.com/parfait-bio/parfait/pkg/validate"
//	    "github.com/parfait-bio/parfait/pkg/writer"
//	)
//
//	// 1. Parse. Content problems come back as findings, not errors.
//	g, findings, err := parser.ParseFile("assembly.gfa", parser.Options{})
//	if err != nil {
//	    return err // I/O only
//	}
//
//	// 2. Validate cross-record structure.
//	findings = append(findings, validate.Graph(g, validate.Options{})...)
//
//	// 3. Serialize, optionally at a different version.
//	err = writer.WriteFile(g, "out.gfa", gfa.Version2)
//
// # Main Packages
//
// [gfa] - Record types for all four versions (segments, links, containments,
// paths, walks, jumps, edges, fragments, gaps, groups), the version model,
// and the ordered Graph container with name indexes.
//
// [parser] - Single-pass reader. Malformed records are skipped and reported
// with line and field positions; parsing never aborts on content. Strict
// mode pins records to the declared version's dialect.
//
// [validate] - Checks that need the whole graph: duplicate segment names,
// unresolved references, group cycles, overlap syntax, coordinate ranges,
// and topology advisories.
//
// [writer] - Emits records in insertion order so a file round-trips byte for
// byte at its own version. Cross-version targets apply a documented
// conversion policy; shapes with no counterpart fail with
// CONVERSION_UNSUPPORTED.
//
// [tag] - Typed optional fields with insertion-ordered maps and the reserved
// tag registry (VN, LN, RC, ...).
//
// [errors] - Stable error codes, severity levels, and the positioned Message
// list shared by parser and validator.
//
// [report] - Styled terminal rendering of finding lists.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/parser/...     # Specific package
//
// [gfa]: https://pkg.go.dev/github.com/parfait-bio/parfait/pkg/gfa
// [parser]: https://pkg.go.dev/github.com/parfait-bio/parfait/pkg/parser
// [validate]: https://pkg.go.dev/github.com/parfait-bio/parfait/pkg/validate
// [writer]: https://pkg.go.dev/github.com/parfait-bio/parfait/pkg/writer
// [tag]: https://pkg.go.dev/github.com/parfait-bio/parfait/pkg/tag
// [errors]: https://pkg.go.dev/github.com/parfait-bio/parfait/pkg/errors
// [report]: https://pkg.go.dev/github.com/parfait-bio/parfait/pkg/report
package pkg
