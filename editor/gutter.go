package editor

import (
	"fmt"
	"strings"
)

// gutterDigits is the width of the widest line number, or 0 when line
// numbers are off.
func (m Model) gutterDigits() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return len(fmt.Sprint(max(m.buf.Height(), 1)))
}

// gutterWidth includes the separator cell.
func (m Model) gutterWidth() int {
	d := m.gutterDigits()
	if d == 0 {
		return 0
	}
	return d + 1
}

func (m Model) renderGutter(sb *strings.Builder, idx int) {
	digits := m.gutterDigits()
	if digits == 0 {
		return
	}
	st := m.cfg.Style.LineNum
	num := strings.Repeat(" ", digits)
	if idx < m.buf.Height() {
		num = fmt.Sprintf("%*d", digits, idx+1)
		if idx == m.cursor.LineIdx {
			st = m.cfg.Style.LineNumActive
		}
	}
	sb.WriteString(st.Render(num))
	sb.WriteString(m.cfg.Style.Gutter.Render(" "))
}
