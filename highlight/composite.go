package highlight

import (
	"github.com/iw2rmb/annotext/annotated"
	"github.com/iw2rmb/annotext/buffer"
)

type Options struct {
	// Query enables search highlighting when non-empty.
	Query string
	// SelectedMatch is the location of the occurrence the search cursor is
	// on, if any.
	SelectedMatch *buffer.Location
	// FileType selects the syntax highlighter through the registry.
	FileType buffer.FileType
	// HighlightAll marks every occurrence of Query, not just the selected
	// one.
	HighlightAll bool
}

// Composite merges a syntax highlighter and a search-result highlighter.
// Either may be absent. It satisfies buffer.AnnotationSource.
type Composite struct {
	syntax Highlighter
	search Highlighter
}

var _ buffer.AnnotationSource = (*Composite)(nil)

// New builds the composite for opt.
func New(opt Options) *Composite {
	c := &Composite{syntax: NewSyntax(opt.FileType)}
	if opt.Query != "" {
		c.search = NewSearchResults(opt.Query, opt.SelectedMatch, opt.HighlightAll)
	}
	return c
}

// NewComposite combines arbitrary sources. Either argument may be nil.
func NewComposite(syntax, search Highlighter) *Composite {
	return &Composite{syntax: syntax, search: search}
}

// HasSyntax reports whether a syntax highlighter is installed.
func (c *Composite) HasSyntax() bool { return c.syntax != nil }

func (c *Composite) Highlight(idx int, line *buffer.Line) {
	if c.syntax != nil {
		c.syntax.Highlight(idx, line)
	}
	if c.search != nil {
		c.search.Highlight(idx, line)
	}
}

// Annotations returns the syntax annotations of line idx followed by its
// search annotations.
func (c *Composite) Annotations(idx int) []annotated.Annotation {
	var out []annotated.Annotation
	if c.syntax != nil {
		out = append(out, c.syntax.Annotations(idx)...)
	}
	if c.search != nil {
		out = append(out, c.search.Annotations(idx)...)
	}
	return out
}
