// Package buffer implements the grapheme-aware document model.
//
// Locations are 0-based (LineIdx, GraphemeIdx) pairs counted in grapheme
// clusters. Byte offsets appear only at the Line level, where they address
// the line's text for annotations and substring search.
package buffer
