// Package gfa defines the in-memory model for Graphical Fragment Assembly
// data: record variants for both GFA1 (with its 1.1 and 1.2 extensions) and
// GFA2, shared value types such as orientations and positions, and the Graph
// container that owns records in input order.
//
// The model is deliberately permissive. Records reference segments by
// identifier only, and the container does not reject dangling references or
// duplicate identifiers added through Append; cross-record consistency is
// the validate package's concern. This keeps parsing single-pass and lets
// callers inspect exactly what a file contained.
package gfa
