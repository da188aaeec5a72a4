package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/annotext/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	if !key.Matches(msg, km.Quit) {
		m.quitLeft = quitTimes
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insertText(string(msg.Runes))
		m.scrollToCursor()
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Quit):
		return m.quit()
	case key.Matches(msg, km.Save):
		return m.save()
	case key.Matches(msg, km.Search):
		return m.startSearch()

	case key.Matches(msg, km.Left):
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})
	case key.Matches(msg, km.WordLeft):
		m.move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})
	case key.Matches(msg, km.Home):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.PageUp):
		m.move(buffer.Move{Unit: buffer.MovePage, Dir: buffer.DirUp, PageSize: m.textHeight()})
	case key.Matches(msg, km.PageDown):
		m.move(buffer.Move{Unit: buffer.MovePage, Dir: buffer.DirDown, PageSize: m.textHeight()})
	case key.Matches(msg, km.DocStart):
		m.move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		m.backspace()
	case key.Matches(msg, km.Delete):
		m.buf.Delete(m.cursor)
	case key.Matches(msg, km.Enter):
		m.insertNewline()
	case key.Matches(msg, km.Tab):
		m.insertChar('\t')

	case key.Matches(msg, km.Undo):
		if at, ok := m.buf.Undo(); ok {
			m.cursor = at
		}
	case key.Matches(msg, km.Redo):
		if at, ok := m.buf.Redo(); ok {
			m.cursor = at
		}

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.insertText(string(msg.Runes))
		} else if msg.Type == tea.KeySpace {
			m.insertChar(' ')
		}
	}

	m.scrollToCursor()
	return m, nil
}

func (m *Model) move(mv buffer.Move) {
	m.cursor = m.buf.Move(m.cursor, mv)
}

func (m *Model) lineLen(idx int) int {
	line, ok := m.buf.Line(idx)
	if !ok {
		return 0
	}
	return line.GraphemeCount()
}

// insertChar inserts r at the cursor. The cursor only advances when the
// line gained a grapheme: a combining mark extends the cluster before it.
func (m *Model) insertChar(r rune) {
	before := m.lineLen(m.cursor.LineIdx)
	m.buf.InsertChar(r, m.cursor)
	if m.lineLen(m.cursor.LineIdx) > before {
		m.cursor.GraphemeIdx++
	}
}

func (m *Model) insertNewline() {
	m.buf.InsertNewline(m.cursor)
	m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
}

func (m *Model) insertText(s string) {
	// Normalize newlines from external sources.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	for _, r := range s {
		switch r {
		case '\n':
			m.insertNewline()
		case '\r':
		default:
			m.insertChar(r)
		}
	}
}

func (m *Model) backspace() {
	if m.cursor == (buffer.Location{}) {
		return
	}
	m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	m.buf.Delete(m.cursor)
}

func (m Model) quit() (Model, tea.Cmd) {
	if !m.buf.IsDirty() || m.quitLeft <= 1 {
		return m, tea.Quit
	}
	m.quitLeft--
	return m, m.setMessage(fmt.Sprintf("WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit.", m.quitLeft))
}

func (m Model) save() (Model, tea.Cmd) {
	err := m.buf.Save()
	if errors.Is(err, buffer.ErrNoPath) {
		m.mode = modeSaveAs
		return m, m.openPrompt("Save as: ")
	}
	return m, m.reportSave(err)
}

func (m *Model) reportSave(err error) tea.Cmd {
	fi := m.buf.FileInfo()
	if err != nil {
		m.log.Error("save failed", zap.String("path", fi.Path), zap.Error(err))
		return m.setMessage("Error writing file!")
	}
	m.log.Info("saved", zap.String("path", fi.Path), zap.Int("lines", m.buf.Height()))
	return m.setMessage("File saved successfully.")
}

func (m Model) updateSaveAs(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Cancel):
		m.closePrompt()
		return m, m.setMessage("Save aborted.")
	case key.Matches(msg, km.Accept):
		path := strings.TrimSpace(m.prompt.Value())
		m.closePrompt()
		if path == "" {
			return m, m.setMessage("Save aborted.")
		}
		return m, m.reportSave(m.buf.SaveAs(path))
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}
