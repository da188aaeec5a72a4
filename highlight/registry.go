package highlight

import "github.com/iw2rmb/annotext/buffer"

// Factory returns a fresh syntax highlighter.
type Factory func() Highlighter

var registry = map[buffer.FileType]Factory{
	buffer.FileTypeRust: func() Highlighter { return NewSyntaxHighlighter(RustLexicon) },
	buffer.FileTypeGo:   func() Highlighter { return NewSyntaxHighlighter(GoLexicon) },
}

// Register installs f as the syntax highlighter for ft, replacing any
// previous one. A nil f removes it. Register is meant to be called during
// program initialization and is not safe for concurrent use.
func Register(ft buffer.FileType, f Factory) {
	if f == nil {
		delete(registry, ft)
		return
	}
	registry[ft] = f
}

// Registered reports whether a syntax highlighter is installed for ft.
func Registered(ft buffer.FileType) bool {
	_, ok := registry[ft]
	return ok
}

// NewSyntax returns a new syntax highlighter for ft, or nil when none is
// registered.
func NewSyntax(ft buffer.FileType) Highlighter {
	f, ok := registry[ft]
	if !ok {
		return nil
	}
	return f()
}
