package sticker

import (
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

// Update processes one frame: scripted steps, input, dropped files and
// controls fades.
func (b *Board) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if b.testRunner != nil {
		b.testRunner.step(b)
	}
	b.processInput()
	b.updateFades(dt)
}

// OnFilesDropped registers the callback that receives files dropped on the
// window. The callback is responsible for validating them.
func (b *Board) OnFilesDropped(fn func(fs.FS)) {
	b.onDrop = fn
}

// SetPressFilter registers fn to claim presses for widgets drawn above the
// board, such as a toolbar. A press at (x, y) for which fn returns true, and
// its release, never reach the overlays. Hover still does.
func (b *Board) SetPressFilter(fn func(x, y float64) bool) {
	b.pressFilter = fn
}

// processInput feeds one pointer sample per frame into the board. Injected
// events take precedence over the real mouse so scripted runs are
// deterministic.
func (b *Board) processInput() {
	if b.processInjectedInput() {
		return
	}
	x, y, pressed := readPointer()
	b.processPointer(x, y, pressed)

	if b.onDrop != nil {
		if files := ebiten.DroppedFiles(); files != nil {
			b.onDrop(files)
		}
	}
}

// readPointer samples the primary pointer: the first active touch if any,
// otherwise the mouse and its left button.
func readPointer() (x, y float64, pressed bool) {
	var touches [1]ebiten.TouchID
	if ids := ebiten.AppendTouchIDs(touches[:0]); len(ids) > 0 {
		tx, ty := ebiten.TouchPosition(ids[0])
		return float64(tx), float64(ty), true
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// processPointer turns a sampled position and button state into pointer
// events. A move is always delivered before the press or release edge of the
// same frame so hover state is current when the edge is handled.
func (b *Board) processPointer(x, y float64, pressed bool) {
	moved := x != b.lastX || y != b.lastY

	switch {
	case pressed && !b.pointerDown:
		if moved {
			b.PointerMove(x, y)
		}
		if b.pressFilter != nil && b.pressFilter(x, y) {
			// Held until release without reaching the overlays.
			b.pointerDown = true
			b.pressSwallowed = true
			return
		}
		b.PointerDown(x, y)
	case !pressed && b.pointerDown:
		if moved {
			b.PointerMove(x, y)
		}
		if b.pressSwallowed {
			b.pressSwallowed = false
			b.pointerDown = false
			return
		}
		b.PointerUp(x, y)
	case moved:
		b.PointerMove(x, y)
	}
}
