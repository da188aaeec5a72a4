package buffer

import "fmt"

// Location points into the document by (line, grapheme). It is a value:
// it never tracks later edits.
type Location struct {
	LineIdx     int
	GraphemeIdx int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.LineIdx, l.GraphemeIdx)
}

// GraphemeRange is a half-open range of grapheme indices on one line:
// [Start, End).
type GraphemeRange struct {
	Start int
	End   int
}

func CompareLocation(a, b Location) int {
	if a.LineIdx < b.LineIdx {
		return -1
	}
	if a.LineIdx > b.LineIdx {
		return 1
	}
	if a.GraphemeIdx < b.GraphemeIdx {
		return -1
	}
	if a.GraphemeIdx > b.GraphemeIdx {
		return 1
	}
	return 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
