package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func lineTexts(b *Buffer) []string {
	out := make([]string, 0, b.Height())
	for _, l := range b.Lines() {
		out = append(out, l.String())
	}
	return out
}

func TestFromString_SplitsLines(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{text: "", want: []string{}},
		{text: "a", want: []string{"a"}},
		{text: "a\nb", want: []string{"a", "b"}},
		{text: "a\nb\n", want: []string{"a", "b"}},
		{text: "a\r\nb\r\n", want: []string{"a", "b"}},
		{text: "\n\n", want: []string{"", ""}},
	}
	for _, tc := range cases {
		b := FromString(tc.text, Options{})
		if diff := cmp.Diff(tc.want, lineTexts(b)); diff != "" {
			t.Fatalf("FromString(%q) mismatch (-want +got):\n%s", tc.text, diff)
		}
		if b.Height() != len(tc.want) {
			t.Fatalf("height=%d, want %d", b.Height(), len(tc.want))
		}
	}
}

func TestBuffer_EmptyState(t *testing.T) {
	b := New(Options{})
	if !b.IsEmpty() || b.Height() != 0 {
		t.Fatalf("new buffer must be empty")
	}
	if b.IsDirty() {
		t.Fatalf("new buffer must be clean")
	}
	if b.IsFileLoaded() {
		t.Fatalf("new buffer has no file")
	}
	if _, ok := b.Line(0); ok {
		t.Fatalf("Line(0) on empty buffer must fail")
	}
	if got := b.Text(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
}

func TestBuffer_LineReturnsCopy(t *testing.T) {
	b := FromString("abc", Options{})
	l, ok := b.Line(0)
	if !ok {
		t.Fatalf("expected line 0")
	}
	l.AppendChar('d')
	if got, want := b.Text(), "abc"; got != want {
		t.Fatalf("buffer text=%q, want %q", got, want)
	}
}
