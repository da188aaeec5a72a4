package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/annotext/buffer"
)

const searchPrompt = "Search (Esc to cancel, Arrows to navigate): "

// searchState is what escape restores, plus the selected match.
type searchState struct {
	prevCursor        buffer.Location
	prevTop, prevLeft int

	match buffer.Location
	found bool
}

func (m Model) startSearch() (Model, tea.Cmd) {
	m.mode = modeSearch
	m.search = searchState{
		prevCursor: m.cursor,
		prevTop:    m.top,
		prevLeft:   m.left,
	}
	return m, m.openPrompt(searchPrompt)
}

// Query returns the search query while the search prompt is open.
func (m Model) Query() string {
	if m.mode != modeSearch {
		return ""
	}
	return m.prompt.Value()
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Cancel):
		m.cursor = m.search.prevCursor
		m.top, m.left = m.search.prevTop, m.search.prevLeft
		m.closePrompt()
		m.log.Debug("search cancelled", zap.Stringer("at", m.cursor))
		return m, nil
	case key.Matches(msg, km.Accept):
		m.log.Info("search accepted", zap.String("query", m.prompt.Value()), zap.Stringer("at", m.cursor))
		m.closePrompt()
		return m, nil
	case key.Matches(msg, km.NextMatch):
		// Step past the current match so it is not found again.
		from := m.cursor
		if m.prompt.Value() != "" {
			from.GraphemeIdx++
		}
		m.findMatch(from, false)
		return m, nil
	case key.Matches(msg, km.PrevMatch):
		m.findMatch(m.cursor, true)
		return m, nil
	}

	before := m.prompt.Value()
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	if m.prompt.Value() != before {
		m.findMatch(m.cursor, false)
	}
	return m, cmd
}

// findMatch moves the cursor to the next match of the query from from.
// Without a match the cursor stays and no match is selected.
func (m *Model) findMatch(from buffer.Location, backward bool) {
	query := m.prompt.Value()
	if query == "" {
		m.search.found = false
		return
	}

	var (
		at buffer.Location
		ok bool
	)
	if backward {
		at, ok = m.buf.SearchBackward(query, from)
	} else {
		at, ok = m.buf.SearchForward(query, from)
	}
	m.log.Debug("search",
		zap.String("query", query),
		zap.Stringer("from", from),
		zap.Bool("backward", backward),
		zap.Bool("found", ok),
	)
	if !ok {
		m.search.found = false
		return
	}

	m.cursor = at
	m.search.match = at
	m.search.found = true
	m.centerCursor()
}
