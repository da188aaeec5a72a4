package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iw2rmb/annotext/buffer"
)

func newTestModel(text string) Model {
	return New(Config{
		Buffer: buffer.FromString(text, buffer.Options{}),
		Style:  plainStyle(),
	}).SetSize(40, 10)
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := newTestModel("ab")

	m = press(t, m, keyOf(tea.KeyRight), runes("X"))
	if got := m.Buffer().Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got, want := m.Cursor(), (buffer.Location{LineIdx: 0, GraphemeIdx: 2}); got != want {
		t.Fatalf("cursor after insert: got %v, want %v", got, want)
	}

	m = press(t, m, keyOf(tea.KeyBackspace))
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
	if got, want := m.Cursor(), (buffer.Location{LineIdx: 0, GraphemeIdx: 1}); got != want {
		t.Fatalf("cursor after backspace: got %v, want %v", got, want)
	}

	m = press(t, m, keyOf(tea.KeyDelete))
	if got := m.Buffer().Text(); got != "a" {
		t.Fatalf("text after delete: got %q, want %q", got, "a")
	}
}

func TestUpdate_EnterSplitsAndBackspaceJoins(t *testing.T) {
	m := newTestModel("ab")
	m = press(t, m, keyOf(tea.KeyRight), keyOf(tea.KeyEnter))
	if got := m.Buffer().Text(); got != "a\nb" {
		t.Fatalf("text after enter: got %q, want %q", got, "a\nb")
	}
	if got, want := m.Cursor(), (buffer.Location{LineIdx: 1, GraphemeIdx: 0}); got != want {
		t.Fatalf("cursor after enter: got %v, want %v", got, want)
	}

	m = press(t, m, keyOf(tea.KeyBackspace))
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("text after join: got %q, want %q", got, "ab")
	}
	if got, want := m.Cursor(), (buffer.Location{LineIdx: 0, GraphemeIdx: 1}); got != want {
		t.Fatalf("cursor after join: got %v, want %v", got, want)
	}
}

func TestUpdate_BackspaceAtDocumentStartIsNoop(t *testing.T) {
	m := newTestModel("ab")
	m = press(t, m, keyOf(tea.KeyBackspace))
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("text: got %q, want %q", got, "ab")
	}
	if m.Buffer().IsDirty() {
		t.Fatalf("expected clean buffer")
	}
}

func TestUpdate_CombiningMarkKeepsCursor(t *testing.T) {
	m := newTestModel("e")
	m = press(t, m, keyOf(tea.KeyEnd), runes("\u0301"))
	if got := m.Buffer().Text(); got != "e\u0301" {
		t.Fatalf("text: got %q, want %q", got, "e\u0301")
	}
	if got, want := m.Cursor(), (buffer.Location{LineIdx: 0, GraphemeIdx: 1}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestUpdate_TypingIntoEmptyDocument(t *testing.T) {
	m := New(Config{Style: plainStyle()}).SetSize(40, 10)
	m = press(t, m, runes("hi"), keyOf(tea.KeySpace), keyOf(tea.KeyTab))
	if got := m.Buffer().Text(); got != "hi \t" {
		t.Fatalf("text: got %q, want %q", got, "hi \t")
	}
	if got, want := m.Cursor(), (buffer.Location{LineIdx: 0, GraphemeIdx: 4}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestUpdate_PasteInsertsLiteralText(t *testing.T) {
	m := newTestModel("")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\nb"), Paste: true})
	if got := m.Buffer().Text(); got != "a\nb" {
		t.Fatalf("text: got %q, want %q", got, "a\nb")
	}
	if got, want := m.Cursor(), (buffer.Location{LineIdx: 1, GraphemeIdx: 1}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := newTestModel("")
	m = press(t, m, runes("a"), runes("b"))
	m = press(t, m, keyOf(tea.KeyCtrlZ))
	if got := m.Buffer().Text(); got != "a" {
		t.Fatalf("text after undo: got %q, want %q", got, "a")
	}
	if got, want := m.Cursor(), (buffer.Location{LineIdx: 0, GraphemeIdx: 1}); got != want {
		t.Fatalf("cursor after undo: got %v, want %v", got, want)
	}
	m = press(t, m, keyOf(tea.KeyCtrlY))
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("text after redo: got %q, want %q", got, "ab")
	}
}

func TestUpdate_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	b, err := buffer.Load(path, buffer.Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	m := New(Config{Buffer: b, Style: plainStyle()}).SetSize(40, 10)

	m = press(t, m, runes("y"))
	var cmd tea.Cmd
	m, cmd = m.Update(keyOf(tea.KeyCtrlS))
	if cmd == nil {
		t.Fatalf("expected a message expiry command")
	}
	if got, want := m.Message(), "File saved successfully."; got != want {
		t.Fatalf("message: got %q, want %q", got, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got, want := string(data), "yx\n"; got != want {
		t.Fatalf("saved: got %q, want %q", got, want)
	}

	m, _ = m.Update(messageExpiredMsg{id: m.messageID})
	if got := m.Message(); got != "" {
		t.Fatalf("message after expiry: got %q, want empty", got)
	}
}

func TestUpdate_SaveAsPrompt(t *testing.T) {
	m := newTestModel("hello")
	m = press(t, m, keyOf(tea.KeyCtrlS))
	if m.mode != modeSaveAs {
		t.Fatalf("expected save-as prompt")
	}
	if got := viewLines(m)[9]; !strings.HasPrefix(got, "Save as: ") {
		t.Fatalf("message row: got %q, want save-as prompt", got)
	}

	path := filepath.Join(t.TempDir(), "out.rs")
	m = press(t, m, runes(path), keyOf(tea.KeyEnter))
	if m.mode != modeEdit {
		t.Fatalf("expected prompt closed")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got, want := string(data), "hello\n"; got != want {
		t.Fatalf("saved: got %q, want %q", got, want)
	}
	if got := m.Buffer().FileInfo().FileType; got != buffer.FileTypeRust {
		t.Fatalf("file type: got %v, want %v", got, buffer.FileTypeRust)
	}
}

func TestUpdate_SaveAsAborted(t *testing.T) {
	m := newTestModel("hello")
	m = press(t, m, keyOf(tea.KeyCtrlS), runes("x"), keyOf(tea.KeyEsc))
	if m.mode != modeEdit {
		t.Fatalf("expected prompt closed")
	}
	if got, want := m.Message(), "Save aborted."; got != want {
		t.Fatalf("message: got %q, want %q", got, want)
	}
	if m.Buffer().IsFileLoaded() {
		t.Fatalf("aborted save must not associate a file")
	}
}

func TestUpdate_QuitRequiresConfirmationWhenDirty(t *testing.T) {
	m := newTestModel("a")
	_, cmd := m.Update(keyOf(tea.KeyCtrlQ))
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("clean buffer should quit immediately")
	}

	m = press(t, m, runes("b"))
	m, _ = m.Update(keyOf(tea.KeyCtrlQ))
	if !strings.Contains(m.Message(), "Press Ctrl-Q 2 more times") {
		t.Fatalf("message: got %q", m.Message())
	}
	m, _ = m.Update(keyOf(tea.KeyCtrlQ))
	if !strings.Contains(m.Message(), "Press Ctrl-Q 1 more times") {
		t.Fatalf("message: got %q", m.Message())
	}

	// Any other key resets the countdown.
	m = press(t, m, keyOf(tea.KeyLeft))
	m, _ = m.Update(keyOf(tea.KeyCtrlQ))
	if !strings.Contains(m.Message(), "Press Ctrl-Q 2 more times") {
		t.Fatalf("message after reset: got %q", m.Message())
	}
	m, _ = m.Update(keyOf(tea.KeyCtrlQ))
	_, cmd = m.Update(keyOf(tea.KeyCtrlQ))
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("third press should quit")
	}
}

func TestUpdate_ScrollFollowsCursor(t *testing.T) {
	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, string(rune('a'+i)))
	}
	m := New(Config{
		Buffer: buffer.FromString(strings.Join(lines, "\n"), buffer.Options{}),
		Style:  plainStyle(),
	}).SetSize(20, 5)

	for i := 0; i < 5; i++ {
		m = press(t, m, keyOf(tea.KeyDown))
	}
	if got := viewLines(m)[:3]; got[0] != "d" || got[2] != "f" {
		t.Fatalf("visible rows: got %q, want d..f", got)
	}

	m = New(Config{
		Buffer:       buffer.FromString(strings.Join(lines, "\n"), buffer.Options{}),
		Style:        plainStyle(),
		ScrollMargin: 1,
	}).SetSize(20, 5)
	for i := 0; i < 5; i++ {
		m = press(t, m, keyOf(tea.KeyDown))
	}
	if got := viewLines(m)[:3]; got[0] != "e" || got[2] != "g" {
		t.Fatalf("visible rows with margin: got %q, want e..g", got)
	}
}

func TestUpdate_HorizontalScroll(t *testing.T) {
	m := New(Config{
		Buffer: buffer.FromString("abcdefghij", buffer.Options{}),
		Style:  plainStyle(),
	}).SetSize(5, 3)

	m = press(t, m, keyOf(tea.KeyEnd))
	if got := viewLines(m)[0]; got != "ghij" {
		t.Fatalf("row: got %q, want %q", got, "ghij")
	}
	m = press(t, m, keyOf(tea.KeyHome))
	if got := viewLines(m)[0]; got != "abcde" {
		t.Fatalf("row: got %q, want %q", got, "abcde")
	}
}

func TestUpdate_SaveIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := New(Config{
		Buffer: buffer.FromString("hello", buffer.Options{}),
		Style:  plainStyle(),
		Logger: zap.New(core),
	}).SetSize(40, 10)

	bad := filepath.Join(t.TempDir(), "missing", "out.txt")
	m = press(t, m, keyOf(tea.KeyCtrlS), runes(bad), keyOf(tea.KeyEnter))
	if got, want := m.Message(), "Error writing file!"; got != want {
		t.Fatalf("message: got %q, want %q", got, want)
	}
	failed := logs.FilterMessage("save failed").All()
	if len(failed) != 1 {
		t.Fatalf("save failed entries: got %d, want 1", len(failed))
	}
	if failed[0].Level != zapcore.ErrorLevel {
		t.Fatalf("level: got %v, want error", failed[0].Level)
	}
	if _, ok := failed[0].ContextMap()["error"]; !ok {
		t.Fatalf("save failed entry has no error field: %v", failed[0].ContextMap())
	}

	good := filepath.Join(t.TempDir(), "out.txt")
	m = press(t, m, keyOf(tea.KeyCtrlS), runes(good), keyOf(tea.KeyEnter))
	saved := logs.FilterMessage("saved").All()
	if len(saved) != 1 {
		t.Fatalf("saved entries: got %d, want 1", len(saved))
	}
	if got := saved[0].ContextMap()["path"]; got != good {
		t.Fatalf("saved path: got %v, want %q", got, good)
	}
}
