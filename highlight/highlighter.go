package highlight

import (
	"github.com/iw2rmb/annotext/annotated"
	"github.com/iw2rmb/annotext/buffer"
)

// Highlighter computes annotations for lines by index. Byte offsets in the
// returned annotations refer to the full text of the line.
type Highlighter interface {
	// Highlight recomputes the annotations of line idx, replacing whatever
	// was stored for it.
	Highlight(idx int, line *buffer.Line)
	// Annotations returns the annotations last computed for line idx, or
	// nil when the line was never highlighted.
	Annotations(idx int) []annotated.Annotation
}

// lineStore keeps the annotations of each highlighted line.
type lineStore map[int][]annotated.Annotation

func (s lineStore) get(idx int) []annotated.Annotation {
	anns, ok := s[idx]
	if !ok || len(anns) == 0 {
		return nil
	}
	return append([]annotated.Annotation(nil), anns...)
}

// Lines highlights lines [0, end) of b in order. Syntax state such as an
// open block comment flows from one line to the next, so lines are always
// highlighted from the top.
func Lines(h Highlighter, b *buffer.Buffer, end int) {
	end = min(end, b.Height())
	for i := 0; i < end; i++ {
		line, _ := b.Line(i)
		h.Highlight(i, &line)
	}
}
