package buffer

// InsertChar inserts r at the given location. A location one past the last
// line appends a new line holding r; other out-of-range locations are
// ignored.
func (b *Buffer) InsertChar(r rune, at Location) {
	if at.LineIdx < 0 || at.LineIdx > len(b.lines) {
		return
	}

	b.recordUndo(at)
	if at.LineIdx == len(b.lines) {
		b.lines = append(b.lines, NewLine(string(r)))
	} else {
		b.lines[at.LineIdx].InsertChar(r, at.GraphemeIdx)
	}
	b.dirty = true
}

// InsertNewline splits the line at the given location, moving the tail to
// a new line right after it. A location one past the last line appends an
// empty line.
func (b *Buffer) InsertNewline(at Location) {
	if at.LineIdx < 0 || at.LineIdx > len(b.lines) {
		return
	}

	b.recordUndo(at)
	if at.LineIdx == len(b.lines) {
		b.lines = append(b.lines, Line{})
		b.dirty = true
		return
	}

	tail := b.lines[at.LineIdx].Split(at.GraphemeIdx)
	b.lines = append(b.lines, Line{})
	copy(b.lines[at.LineIdx+2:], b.lines[at.LineIdx+1:])
	b.lines[at.LineIdx+1] = tail
	b.dirty = true
}

// Delete removes the grapheme at the given location. At or past the end of
// a line that has a follower, the following line is joined onto it.
// Anything else is a no-op.
func (b *Buffer) Delete(at Location) {
	if at.LineIdx < 0 || at.LineIdx >= len(b.lines) {
		return
	}
	line := &b.lines[at.LineIdx]
	count := line.GraphemeCount()

	switch {
	case at.GraphemeIdx >= count && at.LineIdx+1 < len(b.lines):
		b.recordUndo(at)
		next := b.lines[at.LineIdx+1]
		b.lines = append(b.lines[:at.LineIdx+1], b.lines[at.LineIdx+2:]...)
		b.lines[at.LineIdx].Append(&next)
		b.dirty = true
	case at.GraphemeIdx >= 0 && at.GraphemeIdx < count:
		b.recordUndo(at)
		line.Delete(at.GraphemeIdx)
		b.dirty = true
	}
}
