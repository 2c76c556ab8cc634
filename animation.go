package sticker

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// controlsFade animates the opacity of one overlay's border and knobs. It is
// cosmetic only: hit-testing follows the controls flag, not the alpha.
type controlsFade struct {
	tween *gween.Tween
	alpha float64
}

// retarget starts a fade from the current alpha towards fully shown or
// hidden. A non-positive duration jumps straight to the target.
func (f *controlsFade) retarget(show bool, seconds float64) {
	to := float32(0)
	if show {
		to = 1
	}
	if seconds <= 0 {
		f.tween = nil
		f.alpha = float64(to)
		return
	}
	f.tween = gween.New(float32(f.alpha), to, float32(seconds), ease.OutQuad)
}

// update advances the fade by dt seconds.
func (f *controlsFade) update(dt float32) {
	if f.tween == nil {
		return
	}
	val, finished := f.tween.Update(dt)
	f.alpha = float64(val)
	if finished {
		f.tween = nil
	}
}

// done reports whether no fade is running.
func (f *controlsFade) done() bool {
	return f.tween == nil
}

// ControlsAlpha returns the current drawn opacity of the overlay's controls.
func (b *Board) ControlsAlpha(id ID) float64 {
	if i := b.collection.index(id); i >= 0 && i < len(b.slots) {
		return b.slots[i].fade.alpha
	}
	return 0
}

// updateFades advances the controls fade of every slot.
func (b *Board) updateFades(dt float32) {
	for i := range b.slots {
		b.slots[i].fade.update(dt)
	}
}
