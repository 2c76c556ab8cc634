package sticker

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a text logger tagged with the sticker component. debug
// lowers the level so gesture transitions are logged.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).
		With("component", "sticker")
}

// discardLogger drops everything; used until a Board is given a logger.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the board's logger. A nil logger silences the board.
func (b *Board) SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}
	b.log = l
}

// SetDebugMode enables or disables debug mode. When enabled, each gesture
// transition is logged at debug level and the listener counts of both
// surfaces are checked after every pointer event.
func (b *Board) SetDebugMode(enabled bool) {
	b.debug = enabled
}

func (b *Board) logTransition(id ID, from, to GestureState) {
	if !b.debug {
		return
	}
	b.log.Debug("gesture", "overlay", id.String(), "from", from.String(), "to", to.String())
}

// debugCheckListeners warns when the window surface carries listeners while
// no gesture is active, or none while one is.
func (b *Board) debugCheckListeners() {
	if !b.debug {
		return
	}
	active := b.activeSlot() >= 0
	moves := b.window.Listeners(EventPointerMove)
	ups := b.window.Listeners(EventPointerUp)
	if !active && (moves > 0 || ups > 0) {
		b.log.Warn("window listeners leaked with no active gesture", "move", moves, "up", ups)
	}
	if active && (moves == 0 || ups == 0) {
		b.log.Warn("active gesture has no window listeners", "move", moves, "up", ups)
	}
	if docs, visible := b.document.Listeners(EventPointerDown), b.collection.VisibleCount(); docs != visible {
		b.log.Warn("document listener count differs from visible overlays", "listeners", docs, "visible", visible)
	}
}
