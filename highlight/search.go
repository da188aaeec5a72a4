package highlight

import (
	"github.com/iw2rmb/annotext/annotated"
	"github.com/iw2rmb/annotext/buffer"
)

// SearchResults annotates occurrences of a query. Every occurrence gets a
// Match annotation when all is set; the occurrence at the selected location
// additionally gets a SelectedMatch annotation.
type SearchResults struct {
	query    string
	selected *buffer.Location
	all      bool
	lines    lineStore
}

// NewSearchResults returns a highlighter for query. selected may be nil.
func NewSearchResults(query string, selected *buffer.Location, all bool) *SearchResults {
	var sel *buffer.Location
	if selected != nil {
		loc := *selected
		sel = &loc
	}
	return &SearchResults{
		query:    query,
		selected: sel,
		all:      all,
		lines:    make(lineStore),
	}
}

func (h *SearchResults) Highlight(idx int, line *buffer.Line) {
	if h.query == "" {
		delete(h.lines, idx)
		return
	}

	var out []annotated.Annotation
	if h.all {
		for _, m := range line.FindAll(h.query, 0, line.Len()) {
			out = append(out, annotated.Annotation{
				Kind:  annotated.Match,
				Start: m.Byte,
				End:   m.Byte + len(h.query),
			})
		}
	}
	if h.selected != nil && h.selected.LineIdx == idx {
		start := line.ByteIndex(h.selected.GraphemeIdx)
		out = append(out, annotated.Annotation{
			Kind:  annotated.SelectedMatch,
			Start: start,
			End:   min(start+len(h.query), line.Len()),
		})
	}
	h.lines[idx] = out
}

func (h *SearchResults) Annotations(idx int) []annotated.Annotation {
	return h.lines.get(idx)
}
