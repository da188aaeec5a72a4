package buffer

// SearchForward finds the first occurrence of query at or after from,
// wrapping around the document once. The starting line is visited twice:
// first from from.GraphemeIdx, and last from its beginning.
func (b *Buffer) SearchForward(query string, from Location) (Location, bool) {
	n := len(b.lines)
	if query == "" || n == 0 {
		return Location{}, false
	}
	start := from.LineIdx
	if start < 0 {
		start = 0
	}

	for i := 0; i <= n; i++ {
		idx := (start + i) % n
		fromGrapheme := 0
		if i == 0 {
			fromGrapheme = from.GraphemeIdx
		}
		if g, ok := b.lines[idx].SearchForward(query, fromGrapheme); ok {
			return Location{LineIdx: idx, GraphemeIdx: g}, true
		}
	}
	return Location{}, false
}

// SearchBackward finds the last occurrence of query ending at or before
// from, wrapping around the document once in reverse line order. The
// starting line is visited twice: first up to from.GraphemeIdx, and last
// from its end.
func (b *Buffer) SearchBackward(query string, from Location) (Location, bool) {
	n := len(b.lines)
	if query == "" || n == 0 {
		return Location{}, false
	}
	start := clampInt(from.LineIdx, 0, n-1)

	for i := 0; i <= n; i++ {
		idx := ((start-i)%n + n) % n
		line := &b.lines[idx]
		fromGrapheme := line.GraphemeCount()
		if i == 0 {
			fromGrapheme = from.GraphemeIdx
		}
		if g, ok := line.SearchBackward(query, fromGrapheme); ok {
			return Location{LineIdx: idx, GraphemeIdx: g}, true
		}
	}
	return Location{}, false
}
