package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/annotext/annotated"
	"github.com/iw2rmb/annotext/buffer"
)

func TestRender_SearchMatchesStyled(t *testing.T) {
	st := trueColorStyle()
	m := New(Config{
		Buffer:       buffer.FromString("foo bar\nbaz foo", buffer.Options{}),
		Style:        st,
		HighlightAll: true,
	}).SetSize(40, 6)

	m = press(t, m, keyOf(tea.KeyCtrlF), runes("foo"))
	view := m.View()

	// The cursor cell covers the first grapheme of the selected match.
	if want := st.Cursor.Render("f") + st.Kind(annotated.SelectedMatch).Render("oo"); !strings.Contains(view, want) {
		t.Fatalf("selected match not styled:\n%q\nwant substring %q", view, want)
	}
	if want := st.Kind(annotated.Match).Render("foo"); !strings.Contains(view, want) {
		t.Fatalf("other match not styled:\n%q\nwant substring %q", view, want)
	}

	m = press(t, m, keyOf(tea.KeyEsc))
	if strings.Contains(m.View(), st.Kind(annotated.Match).Render("foo")) {
		t.Fatalf("match highlighting must end with the search")
	}
}

func TestRender_SelectedOnlyWithoutHighlightAll(t *testing.T) {
	st := trueColorStyle()
	m := New(Config{
		Buffer: buffer.FromString("foo\nfoo", buffer.Options{}),
		Style:  st,
	}).SetSize(40, 6)

	m = press(t, m, keyOf(tea.KeyCtrlF), runes("foo"))
	if strings.Contains(m.View(), st.Kind(annotated.Match).Render("foo")) {
		t.Fatalf("only the selected match should be highlighted")
	}
}

func TestRender_SyntaxHighlighting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	if err := os.WriteFile(path, []byte("var x = 1\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	b, err := buffer.Load(path, buffer.Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	st := trueColorStyle()
	m := New(Config{Buffer: b, Style: st}).SetSize(40, 4)
	view := m.View()

	// The keyword annotation is re-indexed onto the text after the cursor.
	for _, want := range []string{
		st.Kind(annotated.Keyword).Render("ar"),
		st.Kind(annotated.Number).Render("1"),
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view %q lacks %q", view, want)
		}
	}
	if got := viewLines(m)[2]; !strings.HasSuffix(got, "Go | 1/1") {
		t.Fatalf("status: got %q", got)
	}
}

func TestRender_ReplacementGlyphs(t *testing.T) {
	m := New(Config{
		Buffer: buffer.FromString("a\tb\u200bc", buffer.Options{}),
		Style:  plainStyle(),
	}).SetSize(20, 3)
	m = press(t, m, keyOf(tea.KeyEnd))

	if got, want := viewLines(m)[0], "a b·c"; got != want {
		t.Fatalf("row: got %q, want %q", got, want)
	}
}

func TestRender_StatusShowsModified(t *testing.T) {
	m := newTestModel("a")
	m = press(t, m, runes("b"))
	if got := viewLines(m)[8]; !strings.HasPrefix(got, "[No Name] - 1 lines (modified)") {
		t.Fatalf("status: got %q", got)
	}
}

func TestStyle_WithKindColors(t *testing.T) {
	st := trueColorStyle()
	custom := st.WithKindColors(annotated.Comment, Colors{Foreground: "#010203"})
	if custom.Kind(annotated.Comment).Render("x") == st.Kind(annotated.Comment).Render("x") {
		t.Fatalf("expected overridden comment style")
	}
	if custom.Kind(annotated.Keyword).Render("x") != st.Kind(annotated.Keyword).Render("x") {
		t.Fatalf("other kinds must keep their style")
	}
	if (Style{}).Kind(annotated.Match).Render("x") != "x" {
		t.Fatalf("missing kinds fall back to Text")
	}
}
