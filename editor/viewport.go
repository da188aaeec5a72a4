package editor

func (m Model) textHeight() int {
	return max(m.height-statusRows, 0)
}

func (m Model) textWidth() int {
	return max(m.width-m.gutterWidth(), 0)
}

func (m Model) cursorCol() int {
	line, ok := m.buf.Line(m.cursor.LineIdx)
	if !ok {
		return 0
	}
	return line.WidthUntil(m.cursor.GraphemeIdx)
}

// scrollToCursor moves the viewport the least amount that keeps the cursor
// visible, honoring the scroll margin.
func (m *Model) scrollToCursor() {
	if h := m.textHeight(); h > 0 {
		margin := clampInt(m.cfg.ScrollMargin, 0, (h-1)/2)
		row := m.cursor.LineIdx
		switch {
		case row < m.top+margin:
			m.top = max(row-margin, 0)
		case row > m.top+h-1-margin:
			m.top = row - h + 1 + margin
		}
	}
	if w := m.textWidth(); w > 0 {
		col := m.cursorCol()
		switch {
		case col < m.left:
			m.left = col
		case col >= m.left+w:
			m.left = col - w + 1
		}
	}
}

// centerCursor scrolls so the cursor sits in the middle of the viewport.
func (m *Model) centerCursor() {
	m.top = max(m.cursor.LineIdx-m.textHeight()/2, 0)
	m.left = max(m.cursorCol()-m.textWidth()/2, 0)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
