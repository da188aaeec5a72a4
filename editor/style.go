package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/annotext/annotated"
)

// Colors is a foreground/background pair. Empty means terminal default.
type Colors struct {
	Foreground string
	Background string
}

// DefaultKindColors is the built-in theme, keyed by annotation kind.
var DefaultKindColors = map[annotated.Kind]Colors{
	annotated.Match:             {Foreground: "#ffffff", Background: "#646464"},
	annotated.SelectedMatch:     {Foreground: "#ffffff", Background: "#fffb00"},
	annotated.Number:            {Foreground: "#ff6347"},
	annotated.Keyword:           {Foreground: "#6495ed"},
	annotated.Type:              {Foreground: "#afe1af"},
	annotated.KnownValue:        {Foreground: "#ffbf00"},
	annotated.Char:              {Foreground: "#ff8c69"},
	annotated.LifetimeSpecifier: {Foreground: "#7fffd4"},
	annotated.Comment:           {Foreground: "#7a8b8b"},
}

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style

	Status  lipgloss.Style
	Message lipgloss.Style

	// Kinds styles annotated runs; kinds without an entry render as Text.
	Kinds map[annotated.Kind]lipgloss.Style
}

func DefaultStyle() Style {
	return DefaultStyleFor(lipgloss.DefaultRenderer())
}

// DefaultStyleFor builds the default style on r, so that callers control
// the color profile.
func DefaultStyleFor(r *lipgloss.Renderer) Style {
	gutter := r.NewStyle().Foreground(lipgloss.Color("240"))
	st := Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: r.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          r.NewStyle(),
		Cursor:        r.NewStyle().Reverse(true),
		Status:        r.NewStyle().Reverse(true),
		Message:       r.NewStyle(),
		Kinds:         make(map[annotated.Kind]lipgloss.Style, len(DefaultKindColors)),
	}
	for k, c := range DefaultKindColors {
		st.Kinds[k] = colorStyle(r.NewStyle(), c)
	}
	return st
}

// WithKindColors returns a copy of s with kind k rendered in c.
func (s Style) WithKindColors(k annotated.Kind, c Colors) Style {
	kinds := make(map[annotated.Kind]lipgloss.Style, len(s.Kinds)+1)
	for kk, st := range s.Kinds {
		kinds[kk] = st
	}
	kinds[k] = colorStyle(s.Text, c)
	s.Kinds = kinds
	return s
}

// Kind returns the style for runs annotated with k.
func (s Style) Kind(k annotated.Kind) lipgloss.Style {
	if st, ok := s.Kinds[k]; ok {
		return st
	}
	return s.Text
}

func colorStyle(base lipgloss.Style, c Colors) lipgloss.Style {
	if c.Foreground != "" {
		base = base.Foreground(lipgloss.Color(c.Foreground))
	}
	if c.Background != "" {
		base = base.Background(lipgloss.Color(c.Background))
	}
	return base
}
