package buffer

import "strings"

type Options struct {
	HistoryLimit int // default: 1000; negative disables undo
}

// Buffer is the document: an ordered sequence of Lines plus the dirty flag
// and the file it is associated with. Height always equals the number of
// lines; an empty document has height 0.
type Buffer struct {
	lines    []Line
	fileInfo FileInfo
	dirty    bool

	opt  Options
	hist historyState
}

// New returns an empty, unassociated buffer.
func New(opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{opt: opt}
}

// FromString returns a buffer holding text, split on newlines the way Load
// splits file contents.
func FromString(text string, opt Options) *Buffer {
	b := New(opt)
	b.lines = splitLines(text)
	return b
}

// Height returns the number of lines.
func (b *Buffer) Height() int { return len(b.lines) }

func (b *Buffer) IsEmpty() bool { return len(b.lines) == 0 }

// IsDirty reports whether the buffer changed since it was loaded or saved.
func (b *Buffer) IsDirty() bool { return b.dirty }

func (b *Buffer) FileInfo() FileInfo { return b.fileInfo }

// IsFileLoaded reports whether the buffer is associated with a path.
func (b *Buffer) IsFileLoaded() bool { return b.fileInfo.HasPath() }

// Line returns a copy of line idx.
func (b *Buffer) Line(idx int) (Line, bool) {
	if idx < 0 || idx >= len(b.lines) {
		return Line{}, false
	}
	return b.lines[idx], true
}

// Lines returns copies of all lines in order.
func (b *Buffer) Lines() []Line {
	return append([]Line(nil), b.lines...)
}

// Text joins all lines with '\n'.
func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.lines[i].text)
	}
	return sb.String()
}

func (b *Buffer) lineLen(idx int) int {
	if idx < 0 || idx >= len(b.lines) {
		return 0
	}
	return b.lines[idx].GraphemeCount()
}

// Clamp snaps at to a valid location. The line index may equal Height,
// addressing the empty position after the last line.
func (b *Buffer) Clamp(at Location) Location {
	line := clampInt(at.LineIdx, 0, len(b.lines))
	return Location{
		LineIdx:     line,
		GraphemeIdx: clampInt(at.GraphemeIdx, 0, b.lineLen(line)),
	}
}

// splitLines splits text on '\n', dropping a trailing '\r' from each line
// and not producing an empty last line for a trailing newline.
func splitLines(text string) []Line {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	lines := make([]Line, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, NewLine(strings.TrimSuffix(s, "\r")))
	}
	return lines
}
