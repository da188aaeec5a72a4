package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/annotext"
	"github.com/iw2rmb/annotext/buffer"
	"github.com/iw2rmb/annotext/highlight"
)

func (m Model) View() string {
	if m.height == 0 {
		return ""
	}

	textH := m.textHeight()
	hl := m.highlighter()
	highlight.Lines(hl, m.buf, m.top+textH)

	rows := make([]string, 0, m.height)
	for i := 0; i < textH; i++ {
		rows = append(rows, m.renderRow(m.top+i, hl))
	}
	rows = append(rows, m.renderStatus())
	if m.height >= statusRows {
		rows = append(rows, m.renderMessage())
	}
	return strings.Join(rows, "\n")
}

// highlighter builds the annotation sources for one frame. Search
// annotations are shown only while the search prompt is open.
func (m Model) highlighter() *highlight.Composite {
	opt := highlight.Options{
		FileType:     m.buf.FileInfo().FileType,
		HighlightAll: m.cfg.HighlightAll,
	}
	if m.mode == modeSearch {
		opt.Query = m.prompt.Value()
		if m.search.found {
			sel := m.search.match
			opt.SelectedMatch = &sel
		}
	}
	return highlight.New(opt)
}

func (m Model) renderRow(idx int, src buffer.AnnotationSource) string {
	var sb strings.Builder
	m.renderGutter(&sb, idx)

	line, ok := m.buf.Line(idx)
	if !ok {
		switch {
		case idx == m.cursor.LineIdx:
			sb.WriteString(m.cfg.Style.Cursor.Render(" "))
		case m.showWelcome() && idx == m.textHeight()/3:
			sb.WriteString(m.cfg.Style.Gutter.Render(m.welcome()))
		default:
			sb.WriteString(m.cfg.Style.Gutter.Render("~"))
		}
		return sb.String()
	}

	w := m.textWidth()
	start := line.GraphemeAt(m.left)
	end := line.GraphemeAt(m.left + w)
	c := m.cursor.GraphemeIdx

	switch {
	case idx != m.cursor.LineIdx:
		m.renderRange(&sb, &line, idx, buffer.GraphemeRange{Start: start, End: end}, src)
	case c >= start && c < end:
		m.renderRange(&sb, &line, idx, buffer.GraphemeRange{Start: start, End: c}, src)
		cell := line.AnnotatedSubstring(buffer.GraphemeRange{Start: c, End: c + 1}, idx, src)
		sb.WriteString(m.cfg.Style.Cursor.Render(cell.String()))
		m.renderRange(&sb, &line, idx, buffer.GraphemeRange{Start: c + 1, End: end}, src)
	case c == line.GraphemeCount() && c >= start:
		m.renderRange(&sb, &line, idx, buffer.GraphemeRange{Start: start, End: end}, src)
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
	default:
		m.renderRange(&sb, &line, idx, buffer.GraphemeRange{Start: start, End: end}, src)
	}
	return sb.String()
}

// renderRange writes the styled runs of graphemes r of line idx.
func (m Model) renderRange(sb *strings.Builder, line *buffer.Line, idx int, r buffer.GraphemeRange, src buffer.AnnotationSource) {
	if r.Start >= r.End {
		return
	}
	s := line.AnnotatedSubstring(r, idx, src)
	for part := range s.All() {
		st := m.cfg.Style.Text
		if part.Annotated {
			st = m.cfg.Style.Kind(part.Kind)
		}
		sb.WriteString(st.Render(part.Text))
	}
}

func (m Model) showWelcome() bool {
	return m.buf.IsEmpty() && !m.buf.IsFileLoaded()
}

func (m Model) welcome() string {
	msg := fmt.Sprintf("annotext editor -- version %s", annotext.Version())
	w := m.textWidth()
	if w <= lipgloss.Width(msg) {
		return "~"
	}
	pad := (w - lipgloss.Width(msg)) / 2
	return "~" + strings.Repeat(" ", max(pad-1, 0)) + msg
}

func (m Model) renderStatus() string {
	fi := m.buf.FileInfo()
	modified := ""
	if m.buf.IsDirty() {
		modified = " (modified)"
	}
	left := fmt.Sprintf("%s - %d lines%s", fi.Name(), m.buf.Height(), modified)
	right := fmt.Sprintf("%s | %d/%d", fi.FileType, m.cursor.LineIdx+1, m.buf.Height())
	return m.cfg.Style.Status.Render(fitStatus(left, right, m.width))
}

// fitStatus right-aligns right after left within width cells, truncating
// from the end when both do not fit.
func fitStatus(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left+" "+right, width, "")
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderMessage() string {
	if m.mode != modeEdit {
		return ansi.Truncate(m.prompt.View(), m.width, "")
	}
	return m.cfg.Style.Message.Render(ansi.Truncate(m.message, m.width, ""))
}
