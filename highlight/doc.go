// Package highlight produces per-line annotations for rendering.
//
// A Highlighter computes annotations for one line at a time and remembers
// them by line index; re-highlighting a line replaces what was stored for
// it. Composite runs a syntax highlighter and a search-result highlighter
// over the same line and concatenates their output, syntax first, so that
// search annotations win where the two overlap.
package highlight
