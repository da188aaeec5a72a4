// Package annotated couples a string with byte-range annotations.
//
// Offsets are 0-based byte indices into the string. Ranges are half-open:
// [Start, End). Annotations may overlap; overlaps are resolved while
// iterating, where the most recently added annotation wins.
package annotated
