package sticker

import "testing"

func TestControlsFadeIn(t *testing.T) {
	var f controlsFade
	f.retarget(true, 0.1)
	if f.done() {
		t.Fatal("fade should be running")
	}

	f.update(0.05)
	if f.alpha <= 0 || f.alpha >= 1 {
		t.Errorf("alpha mid-fade = %v, want in (0, 1)", f.alpha)
	}
	f.update(0.1)
	if f.alpha != 1 {
		t.Errorf("alpha = %v, want 1", f.alpha)
	}
	if !f.done() {
		t.Error("fade should be done")
	}
}

func TestControlsFadeReverseFromCurrent(t *testing.T) {
	var f controlsFade
	f.retarget(true, 0.1)
	f.update(0.05)
	mid := f.alpha

	f.retarget(false, 0.1)
	f.update(0.001)
	if f.alpha > mid || f.alpha < mid-0.1 {
		t.Errorf("reversed fade jumped from %v to %v", mid, f.alpha)
	}
	f.update(1)
	if f.alpha != 0 {
		t.Errorf("alpha = %v, want 0", f.alpha)
	}
}

func TestControlsFadeInstant(t *testing.T) {
	var f controlsFade
	f.retarget(true, 0)
	if f.alpha != 1 || !f.done() {
		t.Errorf("instant fade: alpha = %v, done = %v", f.alpha, f.done())
	}
	f.update(1) // no-op
	f.retarget(false, -1)
	if f.alpha != 0 {
		t.Errorf("alpha = %v, want 0", f.alpha)
	}
}

func TestBoardControlsAlpha(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBoard(cfg)
	b.SetViewport(1000, 800)
	id, err := b.AddOrReuse("a.png", 400, 200)
	if err != nil {
		t.Fatal(err)
	}

	b.PointerMove(500, 400)
	if !b.ControlsVisible(id) {
		t.Fatal("hover should show controls")
	}
	if a := b.ControlsAlpha(id); a != 0 {
		t.Errorf("alpha before any frame = %v, want 0", a)
	}
	b.updateFades(float32(cfg.ControlsFadeSeconds) / 2)
	if a := b.ControlsAlpha(id); a <= 0 || a >= 1 {
		t.Errorf("alpha mid-fade = %v, want in (0, 1)", a)
	}
	b.updateFades(1)
	if a := b.ControlsAlpha(id); a != 1 {
		t.Errorf("alpha = %v, want 1", a)
	}
	if a := b.ControlsAlpha(99); a != 0 {
		t.Errorf("alpha for unknown id = %v, want 0", a)
	}
}
