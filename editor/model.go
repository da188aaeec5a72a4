package editor

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iw2rmb/annotext/buffer"
	"github.com/iw2rmb/annotext/highlight"
)

const (
	messageTimeout = 5 * time.Second
	// quitTimes is how often Quit must be pressed to leave with unsaved
	// changes.
	quitTimes = 3
	// statusRows is the status bar plus the message bar.
	statusRows = 2
)

type mode uint8

const (
	modeEdit mode = iota
	modeSearch
	modeSaveAs
)

// Model is a Bubble Tea component that renders and edits a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer
	log *zap.Logger

	cursor buffer.Location
	// top is the first visible line, left the first visible cell.
	top, left     int
	width, height int

	mode   mode
	prompt textinput.Model
	search searchState

	message   string
	messageID int
	quitLeft  int
}

type messageExpiredMsg struct{ id int }

func New(cfg Config) Model {
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	buf := cfg.Buffer
	if buf == nil {
		buf = buffer.New(buffer.Options{})
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	fi := buf.FileInfo()
	log.Debug("editor ready",
		zap.String("file", fi.Name()),
		zap.Stringer("type", fi.FileType),
		zap.Bool("syntax", highlight.Registered(fi.FileType)),
		zap.Int("lines", buf.Height()),
	)

	return Model{
		cfg:      cfg,
		buf:      buf,
		log:      log,
		prompt:   textinput.New(),
		quitLeft: quitTimes,
	}
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Cursor() buffer.Location { return m.cursor }

// SetCursor moves the cursor to at, clamped to the document, and scrolls
// it into view.
func (m Model) SetCursor(at buffer.Location) Model {
	m.cursor = m.buf.Clamp(at)
	m.scrollToCursor()
	return m
}

// Searching reports whether the search prompt is open.
func (m Model) Searching() bool { return m.mode == modeSearch }

// Message returns the message bar text.
func (m Model) Message() string { return m.message }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.sizePrompt()
	m.scrollToCursor()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case messageExpiredMsg:
		if msg.id == m.messageID {
			m.message = ""
		}
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeSaveAs:
			return m.updateSaveAs(msg)
		default:
			return m.updateKey(msg)
		}
	default:
		if m.mode != modeEdit {
			var cmd tea.Cmd
			m.prompt, cmd = m.prompt.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

// setMessage shows s in the message bar until it expires.
func (m *Model) setMessage(s string) tea.Cmd {
	m.message = s
	m.messageID++
	id := m.messageID
	return tea.Tick(messageTimeout, func(time.Time) tea.Msg {
		return messageExpiredMsg{id: id}
	})
}

func (m *Model) openPrompt(label string) tea.Cmd {
	m.prompt.Prompt = label
	m.prompt.SetValue("")
	m.sizePrompt()
	return m.prompt.Focus()
}

// sizePrompt fits the input field next to its label on the message bar.
func (m *Model) sizePrompt() {
	m.prompt.Width = max(m.width-lipgloss.Width(m.prompt.Prompt)-1, 1)
}

func (m *Model) closePrompt() {
	m.mode = modeEdit
	m.prompt.Blur()
	m.prompt.SetValue("")
}
