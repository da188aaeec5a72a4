package buffer

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/annotext/annotated"
	"github.com/iw2rmb/annotext/internal/grapheme"
)

// AnnotationSource supplies the annotations for a line by index. Byte
// offsets refer to the full text of that line.
type AnnotationSource interface {
	Annotations(lineIdx int) []annotated.Annotation
}

// fragment is one grapheme cluster of a line.
type fragment struct {
	grapheme string
	// width is 1 or 2 cells; zero-width clusters render as a 1-cell
	// replacement.
	width       int
	replacement rune
	startByte   int
}

// Match is a substring occurrence that starts on a grapheme boundary.
type Match struct {
	Byte     int
	Grapheme int
}

// Line is one line of text stored as grapheme clusters. Fragments are
// rebuilt from the text on every mutation; a Line value is never modified
// in place, so copies are safe to hand out.
type Line struct {
	text      string
	fragments []fragment
}

// NewLine returns a Line holding text. text must not contain '\n'.
func NewLine(text string) Line {
	return Line{text: text, fragments: buildFragments(text)}
}

func buildFragments(text string) []fragment {
	clusters := grapheme.Clusters(text)
	if len(clusters) == 0 {
		return nil
	}
	out := make([]fragment, 0, len(clusters))
	for _, c := range clusters {
		w := grapheme.Width(c.Text)
		f := fragment{
			grapheme:    c.Text,
			width:       1,
			replacement: replacementFor(c.Text, w),
			startByte:   c.Byte,
		}
		if w > 1 {
			f.width = 2
		}
		out = append(out, f)
	}
	return out
}

// replacementFor returns the glyph shown instead of a cluster that has no
// sensible visible form, or 0 when the cluster renders as itself.
func replacementFor(cluster string, width int) rune {
	switch {
	case cluster == " ":
		return 0
	case cluster == "\t":
		return ' '
	case width > 0 && strings.TrimSpace(cluster) == "":
		return '␣'
	case width == 0:
		if grapheme.IsControl(cluster) && len([]rune(cluster)) == 1 {
			return '▯'
		}
		return '·'
	default:
		return 0
	}
}

func (l *Line) set(text string) {
	l.text = text
	l.fragments = buildFragments(text)
}

func (l *Line) String() string { return l.text }

// Len returns the byte length of the line.
func (l *Line) Len() int { return len(l.text) }

// GraphemeCount returns the number of grapheme clusters.
func (l *Line) GraphemeCount() int { return len(l.fragments) }

// Grapheme returns the cluster at idx, or "" when idx is out of range.
func (l *Line) Grapheme(idx int) string {
	if idx < 0 || idx >= len(l.fragments) {
		return ""
	}
	return l.fragments[idx].grapheme
}

// Width returns the display width of the whole line in cells.
func (l *Line) Width() int {
	return l.WidthUntil(len(l.fragments))
}

// WidthUntil returns the display width of graphemes [0, idx).
func (l *Line) WidthUntil(idx int) int {
	idx = clampInt(idx, 0, len(l.fragments))
	w := 0
	for _, f := range l.fragments[:idx] {
		w += f.width
	}
	return w
}

// GraphemeAt returns the index of the grapheme covering display column col.
// Columns past the end map to GraphemeCount.
func (l *Line) GraphemeAt(col int) int {
	pos := 0
	for i, f := range l.fragments {
		if col < pos+f.width {
			return i
		}
		pos += f.width
	}
	return len(l.fragments)
}

// ByteIndex returns the byte offset where grapheme idx starts. Indices at
// or past the end map to the byte length.
func (l *Line) ByteIndex(idx int) int {
	if idx < 0 {
		return 0
	}
	if idx >= len(l.fragments) {
		return len(l.text)
	}
	return l.fragments[idx].startByte
}

// GraphemeIndex returns the grapheme starting exactly at byteIdx.
func (l *Line) GraphemeIndex(byteIdx int) (int, bool) {
	i := sort.Search(len(l.fragments), func(i int) bool {
		return l.fragments[i].startByte >= byteIdx
	})
	if i < len(l.fragments) && l.fragments[i].startByte == byteIdx {
		return i, true
	}
	return 0, false
}

// InsertChar inserts r before grapheme at; positions past the end append.
func (l *Line) InsertChar(r rune, at int) {
	b := l.ByteIndex(at)
	l.set(l.text[:b] + string(r) + l.text[b:])
}

// AppendChar appends r to the end of the line.
func (l *Line) AppendChar(r rune) {
	l.set(l.text + string(r))
}

// Delete removes the grapheme at idx. Out-of-range indices are ignored.
func (l *Line) Delete(idx int) {
	if idx < 0 || idx >= len(l.fragments) {
		return
	}
	f := l.fragments[idx]
	l.set(l.text[:f.startByte] + l.text[f.startByte+len(f.grapheme):])
}

// DeleteLast removes the final grapheme, if any.
func (l *Line) DeleteLast() {
	l.Delete(len(l.fragments) - 1)
}

// Append joins other onto the end of l.
func (l *Line) Append(other *Line) {
	l.set(l.text + other.text)
}

// Split truncates l at grapheme at and returns the removed tail.
func (l *Line) Split(at int) Line {
	b := l.ByteIndex(at)
	tail := NewLine(l.text[b:])
	l.set(l.text[:b])
	return tail
}

// FindAll returns the non-overlapping occurrences of query inside the byte
// range [startByte, endByte) that start on a grapheme boundary.
func (l *Line) FindAll(query string, startByte, endByte int) []Match {
	if query == "" {
		return nil
	}
	endByte = clampInt(endByte, 0, len(l.text))
	startByte = clampInt(startByte, 0, endByte)

	var out []Match
	hay := l.text[startByte:endByte]
	off := 0
	for {
		idx := strings.Index(hay[off:], query)
		if idx < 0 {
			break
		}
		b := startByte + off + idx
		g, ok := l.GraphemeIndex(b)
		if !ok {
			// A later occurrence may start on a boundary inside this one.
			_, size := utf8.DecodeRuneInString(hay[off+idx:])
			off += idx + size
			continue
		}
		out = append(out, Match{Byte: b, Grapheme: g})
		off += idx + len(query)
	}
	return out
}

// SearchForward returns the grapheme index of the first occurrence of
// query starting at or after grapheme from.
func (l *Line) SearchForward(query string, from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	if from >= len(l.fragments) {
		return 0, false
	}
	matches := l.FindAll(query, l.ByteIndex(from), len(l.text))
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Grapheme, true
}

// SearchBackward returns the grapheme index of the last occurrence of query
// that ends at or before grapheme from.
func (l *Line) SearchBackward(query string, from int) (int, bool) {
	if from <= 0 {
		return 0, false
	}
	matches := l.FindAll(query, 0, l.ByteIndex(from))
	if len(matches) == 0 {
		return 0, false
	}
	return matches[len(matches)-1].Grapheme, true
}

// AnnotatedSubstring returns graphemes [r.Start, r.End) of the line with
// the annotations src reports for lineIdx, re-indexed onto the substring.
// Graphemes without a visible form are swapped for their replacement
// glyph. src may be nil.
func (l *Line) AnnotatedSubstring(r GraphemeRange, lineIdx int, src AnnotationSource) *annotated.String {
	s := annotated.New(l.text)
	if src != nil {
		s.AddAnnotations(src.Annotations(lineIdx)...)
	}

	count := len(l.fragments)
	start := clampInt(r.Start, 0, count)
	end := clampInt(r.End, start, count)

	// Right to left, so the byte offsets of the fragments still ahead
	// remain valid.
	if end < count {
		s.TruncateRightFrom(l.fragments[end].startByte)
	}
	for i := end - 1; i >= start; i-- {
		f := l.fragments[i]
		if f.replacement != 0 {
			s.Replace(f.startByte, f.startByte+len(f.grapheme), string(f.replacement))
		}
	}
	if start > 0 {
		s.TruncateLeftUntil(l.ByteIndex(start))
	}
	return s
}
