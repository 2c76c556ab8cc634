package sticker

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudRefresh is how often, in frames, the debug HUD text is rebuilt.
const hudRefresh = 30

// hud is the debug overlay showing frame rates, slot usage, the active
// gesture and surface listener counts. Only drawn in debug mode.
type hud struct {
	img    *ebiten.Image
	text   string
	frames int
}

// hudText summarizes the board state for the debug HUD.
func (b *Board) hudText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "FPS: %.1f  TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	fmt.Fprintf(&sb, "slots: %d/%d  visible: %d\n",
		b.collection.Len(), b.collection.Cap(), b.collection.VisibleCount())
	state := GestureIdle
	if i := b.activeSlot(); i >= 0 {
		state = b.slots[i].gesture.State()
	}
	fmt.Fprintf(&sb, "gesture: %s\n", state)
	fmt.Fprintf(&sb, "window: move=%d up=%d  document: down=%d",
		b.window.Listeners(EventPointerMove), b.window.Listeners(EventPointerUp),
		b.document.Listeners(EventPointerDown))
	return sb.String()
}

// drawHUD draws the debug HUD in the bottom-left corner.
func (b *Board) drawHUD(screen *ebiten.Image) {
	if !b.debug {
		return
	}
	if b.hud.img == nil {
		b.hud.img = ebiten.NewImage(300, 68)
	}
	if b.hud.frames%hudRefresh == 0 || b.hud.text == "" {
		b.hud.text = b.hudText()
		b.hud.img.Clear()
		// Semi-transparent background for readability
		b.hud.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(b.hud.img, b.hud.text)
	}
	b.hud.frames++

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(4, float64(screen.Bounds().Dy()-b.hud.img.Bounds().Dy()-4))
	screen.DrawImage(b.hud.img, op)
}
