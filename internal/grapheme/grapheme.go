package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is a single grapheme cluster and the byte offset where it starts
// in the text it was split from.
type Cluster struct {
	Text string
	Byte int
}

// Word is a segment produced by Unicode word-boundary rules (UAX #29) and
// the byte offset where it starts.
type Word struct {
	Text string
	Byte int
}

// Clusters returns grapheme clusters for text in visual order.
func Clusters(text string) []Cluster {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]Cluster, 0, len(text))
	for g.Next() {
		from, _ := g.Positions()
		out = append(out, Cluster{Text: g.Str(), Byte: from})
	}
	return out
}

// Words splits text on word boundaries. Whitespace and punctuation runs are
// returned as their own segments, so concatenating all Text yields text.
func Words(text string) []Word {
	var out []Word
	state := -1
	off := 0
	rest := text
	for len(rest) > 0 {
		var w string
		w, rest, state = uniseg.FirstWordInString(rest, state)
		out = append(out, Word{Text: w, Byte: off})
		off += len(w)
	}
	return out
}

// Width returns the terminal cell width of a single cluster.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsControl reports whether cluster starts with a control rune.
func IsControl(cluster string) bool {
	for _, r := range cluster {
		return unicode.IsControl(r)
	}
	return false
}

// First returns the first grapheme cluster of text, or "" for empty text.
func First(text string) string {
	if text == "" {
		return ""
	}
	c, _, _, _ := uniseg.FirstGraphemeClusterInString(text, -1)
	return c
}
