package buffer

type bufferSnapshot struct {
	lines []Line
	at    Location
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

// snapshot copies the line slice; Line values are never mutated in place,
// so sharing their contents is safe.
func (b *Buffer) snapshot(at Location) bufferSnapshot {
	return bufferSnapshot{
		lines: append([]Line(nil), b.lines...),
		at:    at,
	}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.lines = append([]Line(nil), s.lines...)
}

func (b *Buffer) recordUndo(at Location) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	b.hist.undo = append(b.hist.undo, b.snapshot(at))
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo reverts the most recent edit and returns the location it was made
// at.
func (b *Buffer) Undo() (Location, bool) {
	if len(b.hist.undo) == 0 {
		return Location{}, false
	}

	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, b.snapshot(prev.at))

	b.restore(prev)
	b.dirty = true
	return b.Clamp(prev.at), true
}

// Redo reapplies the most recently undone edit and returns the location it
// was made at.
func (b *Buffer) Redo() (Location, bool) {
	if len(b.hist.redo) == 0 {
		return Location{}, false
	}

	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]

	limit := b.opt.HistoryLimit
	if limit > 0 {
		b.hist.undo = append(b.hist.undo, b.snapshot(next.at))
		if len(b.hist.undo) > limit {
			b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
		}
	}

	b.restore(next)
	b.dirty = true
	return b.Clamp(next.at), true
}
