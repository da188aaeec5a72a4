package editor

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/annotext/buffer"
)

// Config configures the editor Model.
type Config struct {
	// Buffer is the document to edit. Nil starts an empty, unnamed one.
	Buffer *buffer.Buffer

	// Rendering options.
	ShowLineNums bool
	// ScrollMargin keeps this many lines visible above and below the
	// cursor while scrolling.
	ScrollMargin int
	Style        Style

	// HighlightAll marks every search match, not only the selected one.
	HighlightAll bool

	// KeyMap defaults to DefaultKeyMap when it has no Quit binding.
	KeyMap KeyMap

	// Logger receives load/save and search events. Nil discards them.
	Logger *zap.Logger
}
