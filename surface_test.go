package sticker

import "testing"

func TestSurfaceOnRemove(t *testing.T) {
	s := newSurface("test")
	calls := 0
	sub := s.On(EventPointerMove, func(PointerContext) { calls++ })
	if s.Listeners(EventPointerMove) != 1 {
		t.Fatalf("Listeners = %d, want 1", s.Listeners(EventPointerMove))
	}

	s.dispatch(EventPointerMove, PointerContext{})
	sub.Remove()
	sub.Remove()
	s.dispatch(EventPointerMove, PointerContext{})

	if calls != 1 {
		t.Errorf("handler ran %d times, want 1", calls)
	}
	if s.Listeners(EventPointerMove) != 0 {
		t.Errorf("Listeners = %d after Remove, want 0", s.Listeners(EventPointerMove))
	}
}

func TestSurfaceZeroSubscriptionRemove(t *testing.T) {
	var sub Subscription
	sub.Remove() // must not panic
}

func TestSurfaceEventsAreSeparate(t *testing.T) {
	s := newSurface("test")
	var got []EventType
	for _, ev := range []EventType{EventPointerDown, EventPointerUp, EventPointerMove} {
		s.On(ev, func(PointerContext) { got = append(got, ev) })
	}
	s.dispatch(EventPointerUp, PointerContext{})
	if len(got) != 1 || got[0] != EventPointerUp {
		t.Errorf("dispatched to %v, want [pointerup]", got)
	}
}

func TestSurfaceEnterLeaveNotCarried(t *testing.T) {
	s := newSurface("test")
	sub := s.On(EventPointerEnter, func(PointerContext) {})
	if sub.s != nil {
		t.Error("enter subscription should be a no-op")
	}
	if s.Listeners(EventPointerEnter) != 0 {
		t.Error("surface should not carry enter listeners")
	}
}

func TestSurfaceRemoveDuringDispatch(t *testing.T) {
	s := newSurface("test")
	var order []string
	var second Subscription

	var first Subscription
	first = s.On(EventPointerUp, func(PointerContext) {
		order = append(order, "first")
		first.Remove()
		second.Remove()
	})
	second = s.On(EventPointerUp, func(PointerContext) { order = append(order, "second") })
	s.On(EventPointerUp, func(PointerContext) { order = append(order, "third") })

	s.dispatch(EventPointerUp, PointerContext{})
	if len(order) != 2 || order[0] != "first" || order[1] != "third" {
		t.Errorf("order = %v, want [first third]", order)
	}
	if s.Listeners(EventPointerUp) != 1 {
		t.Errorf("Listeners = %d, want 1", s.Listeners(EventPointerUp))
	}
}

func TestSurfaceContextDelivered(t *testing.T) {
	s := newSurface("test")
	var got PointerContext
	s.On(EventPointerDown, func(ctx PointerContext) { got = ctx })
	want := PointerContext{X: 3, Y: 4, Target: 2, Handle: HandleRotate}
	s.dispatch(EventPointerDown, want)
	if got != want {
		t.Errorf("ctx = %+v, want %+v", got, want)
	}
}
