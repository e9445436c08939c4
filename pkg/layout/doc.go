// Package layout implements a pure-Go stack and grid layout solver.
//
// Nodes are stacked in rows or columns, or placed on grid tracks. Every
// edge, size, inset, gap and track is a [Value] in pixels, a percentage of
// the parent's content area, a stretch weight that shares the free space,
// or Auto. The hierarchy is owned by the caller and read through [Links];
// styles come from a [StyleSource]. Results are written to a [Cache].
//
// The main entry point is [Calculate]. [Store] is a ready-made arena that
// implements both Links and StyleSource.
package layout
