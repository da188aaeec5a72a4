package buffer

import "github.com/iw2rmb/annotext/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MovePage
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
	// PageSize is the number of lines a MovePage step covers.
	PageSize int
}

// Move returns the location reached from at by m. The result is always
// valid for the current document; the line index may equal Height.
func (b *Buffer) Move(at Location, m Move) Location {
	at = b.Clamp(at)
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(at, m.Dir)
	case MoveWord:
		return b.moveWord(at, m.Dir)
	case MoveLine:
		return b.moveLines(at, m.Dir, 1)
	case MovePage:
		return b.moveLines(at, m.Dir, max(m.PageSize, 1))
	case MoveDoc:
		return b.moveDoc(at, m.Dir)
	default:
		return at
	}
}

func (b *Buffer) moveGrapheme(p Location, dir MoveDir) Location {
	row, col := p.LineIdx, p.GraphemeIdx
	lastRow := len(b.lines)

	switch dir {
	case DirLeft:
		if col > 0 {
			return Location{LineIdx: row, GraphemeIdx: col - 1}
		}
		if row == 0 {
			return p
		}
		prevRow := row - 1
		return Location{LineIdx: prevRow, GraphemeIdx: b.lineLen(prevRow)}
	case DirRight:
		if col < b.lineLen(row) {
			return Location{LineIdx: row, GraphemeIdx: col + 1}
		}
		if row == lastRow {
			return p
		}
		return Location{LineIdx: row + 1, GraphemeIdx: 0}
	case DirUp, DirDown:
		return b.moveLines(p, dir, 1)
	case DirHome:
		return Location{LineIdx: row, GraphemeIdx: 0}
	case DirEnd:
		return Location{LineIdx: row, GraphemeIdx: b.lineLen(row)}
	default:
		return p
	}
}

func (b *Buffer) moveWord(p Location, dir MoveDir) Location {
	if p.LineIdx >= len(b.lines) {
		return b.moveGrapheme(p, dir)
	}
	line := &b.lines[p.LineIdx]

	switch dir {
	case DirLeft:
		if p.GraphemeIdx == 0 {
			return b.moveGrapheme(p, dir)
		}
		return Location{LineIdx: p.LineIdx, GraphemeIdx: prevWordBoundary(line, p.GraphemeIdx)}
	case DirRight:
		if p.GraphemeIdx == line.GraphemeCount() {
			return b.moveGrapheme(p, dir)
		}
		return Location{LineIdx: p.LineIdx, GraphemeIdx: nextWordBoundary(line, p.GraphemeIdx)}
	default:
		return b.moveGrapheme(p, dir)
	}
}

func (b *Buffer) moveLines(p Location, dir MoveDir, n int) Location {
	row := p.LineIdx
	switch dir {
	case DirUp:
		row = max(row-n, 0)
	case DirDown:
		row = min(row+n, len(b.lines))
	case DirHome:
		return Location{LineIdx: row, GraphemeIdx: 0}
	case DirEnd:
		return Location{LineIdx: row, GraphemeIdx: b.lineLen(row)}
	default:
		return p
	}
	return Location{LineIdx: row, GraphemeIdx: min(p.GraphemeIdx, b.lineLen(row))}
}

func (b *Buffer) moveDoc(p Location, dir MoveDir) Location {
	switch dir {
	case DirHome, DirUp:
		return Location{}
	case DirEnd, DirDown:
		if len(b.lines) == 0 {
			return Location{}
		}
		last := len(b.lines) - 1
		return Location{LineIdx: last, GraphemeIdx: b.lineLen(last)}
	default:
		return p
	}
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - a line end is a hard boundary
func prevWordBoundary(line *Line, col int) int {
	i := clampInt(col, 0, line.GraphemeCount())
	for i > 0 && grapheme.IsSpace(line.Grapheme(i-1)) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line.Grapheme(i-1)) {
		i--
	}
	return i
}

func nextWordBoundary(line *Line, col int) int {
	n := line.GraphemeCount()
	i := clampInt(col, 0, n)
	for i < n && grapheme.IsSpace(line.Grapheme(i)) {
		i++
	}
	for i < n && !grapheme.IsSpace(line.Grapheme(i)) {
		i++
	}
	return i
}
