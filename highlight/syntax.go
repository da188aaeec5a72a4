package highlight

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/annotext/annotated"
	"github.com/iw2rmb/annotext/buffer"
	"github.com/iw2rmb/annotext/internal/grapheme"
)

// SyntaxHighlighter annotates numbers, keywords, types, known values, char
// literals, lifetimes and comments according to a Lexicon.
//
// Block comments may span lines: the comment depth at the end of each line
// is remembered and used as the starting depth of the next one, so lines
// must be highlighted in ascending order (see Lines).
type SyntaxHighlighter struct {
	lex   Lexicon
	words map[string]annotated.Kind

	lines lineStore
	// depth is the open block comment depth at the end of each line.
	depth map[int]int
}

func NewSyntaxHighlighter(lex Lexicon) *SyntaxHighlighter {
	words := make(map[string]annotated.Kind, len(lex.Keywords)+len(lex.Types)+len(lex.KnownValues))
	for _, w := range lex.Keywords {
		words[w] = annotated.Keyword
	}
	for _, w := range lex.Types {
		words[w] = annotated.Type
	}
	for _, w := range lex.KnownValues {
		words[w] = annotated.KnownValue
	}
	return &SyntaxHighlighter{
		lex:   lex,
		words: words,
		lines: make(lineStore),
		depth: make(map[int]int),
	}
}

func (h *SyntaxHighlighter) Highlight(idx int, line *buffer.Line) {
	anns, depth := h.scan(line.String(), h.depth[idx-1])
	h.lines[idx] = anns
	if depth > 0 {
		h.depth[idx] = depth
	} else {
		delete(h.depth, idx)
	}
}

func (h *SyntaxHighlighter) Annotations(idx int) []annotated.Annotation {
	return h.lines.get(idx)
}

// scan annotates text starting inside depth open block comments and
// returns the depth at the end of the line.
func (h *SyntaxHighlighter) scan(text string, depth int) ([]annotated.Annotation, int) {
	var out []annotated.Annotation
	code := 0
	flush := func(end int) {
		out = h.appendWords(out, text[code:end], code)
	}

	i := 0
	for i < len(text) {
		if depth > 0 {
			start := i
			i, depth = h.skipBlock(text, i, depth)
			out = append(out, annotated.Annotation{Kind: annotated.Comment, Start: start, End: i})
			code = i
			continue
		}

		rest := text[i:]
		switch {
		case h.lex.LineComment != "" && strings.HasPrefix(rest, h.lex.LineComment):
			flush(i)
			out = append(out, annotated.Annotation{Kind: annotated.Comment, Start: i, End: len(text)})
			return out, 0
		case h.lex.BlockOpen != "" && strings.HasPrefix(rest, h.lex.BlockOpen):
			flush(i)
			start := i
			i, depth = h.skipBlock(text, i+len(h.lex.BlockOpen), 1)
			out = append(out, annotated.Annotation{Kind: annotated.Comment, Start: start, End: i})
			code = i
		case strings.IndexByte(h.lex.StringQuotes, rest[0]) >= 0:
			flush(i)
			i += stringLen(rest)
			code = i
		case rest[0] == '\'':
			if n := charLen(rest); n > 0 {
				flush(i)
				out = append(out, annotated.Annotation{Kind: annotated.Char, Start: i, End: i + n})
				i += n
				code = i
			} else if n := lifetimeLen(rest); h.lex.Lifetimes && n > 0 {
				flush(i)
				out = append(out, annotated.Annotation{Kind: annotated.LifetimeSpecifier, Start: i, End: i + n})
				i += n
				code = i
			} else {
				i++
			}
		default:
			_, size := utf8.DecodeRuneInString(rest)
			i += size
		}
	}
	flush(len(text))
	return out, depth
}

// skipBlock advances past block comment text from i and returns the new
// position and the remaining depth.
func (h *SyntaxHighlighter) skipBlock(text string, i, depth int) (int, int) {
	for i < len(text) {
		rest := text[i:]
		switch {
		case strings.HasPrefix(rest, h.lex.BlockClose):
			i += len(h.lex.BlockClose)
			depth--
			if depth == 0 {
				return i, 0
			}
		case h.lex.NestedBlocks && strings.HasPrefix(rest, h.lex.BlockOpen):
			i += len(h.lex.BlockOpen)
			depth++
		default:
			_, size := utf8.DecodeRuneInString(rest)
			i += size
		}
	}
	return i, depth
}

// appendWords classifies the words of a code segment starting at byte off.
func (h *SyntaxHighlighter) appendWords(out []annotated.Annotation, seg string, off int) []annotated.Annotation {
	for _, w := range grapheme.Words(seg) {
		start := off + w.Byte
		if isNumber(w.Text) {
			out = append(out, annotated.Annotation{Kind: annotated.Number, Start: start, End: start + len(w.Text)})
			continue
		}
		// Word segmentation keeps "a.b" and "a:b" together.
		for _, part := range splitIdent(w.Text) {
			if kind, ok := h.words[part.Text]; ok {
				s := start + part.Byte
				out = append(out, annotated.Annotation{Kind: kind, Start: s, End: s + len(part.Text)})
			}
		}
	}
	return out
}

func splitIdent(word string) []grapheme.Word {
	var out []grapheme.Word
	from := 0
	for i := 0; i <= len(word); i++ {
		if i < len(word) && !strings.ContainsRune(".:'", rune(word[i])) {
			continue
		}
		if i > from {
			out = append(out, grapheme.Word{Text: word[from:i], Byte: from})
		}
		from = i + 1
	}
	return out
}

// stringLen returns the byte length of the string literal opening rest,
// up to and including its closing quote or to the end of the line.
// TODO: carry unterminated raw strings to the next line like block comments.
func stringLen(rest string) int {
	quote := rest[0]
	for i := 1; i < len(rest); i++ {
		switch rest[i] {
		case '\\':
			if quote != '`' {
				i++
			}
		case quote:
			return i + 1
		}
	}
	return len(rest)
}

// charLen returns the byte length of the char literal opening rest, or 0.
// A char literal holds one grapheme cluster or one escape sequence.
func charLen(rest string) int {
	if len(rest) < 3 {
		return 0
	}
	if rest[1] == '\\' {
		// '\n', '\'', '\x7f', '\u{1F600}'
		for i := 3; i < len(rest) && i < 14; i++ {
			if rest[i] == '\'' {
				return i + 1
			}
		}
		return 0
	}
	c := grapheme.First(rest[1:])
	if c == "'" {
		return 0
	}
	end := 1 + len(c)
	if end < len(rest) && rest[end] == '\'' {
		return end + 1
	}
	return 0
}

// lifetimeLen returns the byte length of a 'name lifetime opening rest,
// or 0.
func lifetimeLen(rest string) int {
	i := 1
	for i < len(rest) && isIdentByte(rest[i], i == 1) {
		i++
	}
	if i == 1 {
		return 0
	}
	return i
}

func isIdentByte(c byte, first bool) bool {
	switch {
	case c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return !first
	default:
		return false
	}
}
