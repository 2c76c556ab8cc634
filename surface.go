package sticker

// PointerContext carries pointer event data delivered to surface handlers.
type PointerContext struct {
	X, Y      float64 // page coordinates
	Button    MouseButton
	PointerID int
	// Target is the overlay under the pointer (for down events, the one that
	// will receive the press), or zero when the pointer is over empty page.
	Target ID
	Handle Handle
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

// Surface is a page-wide listener registry. The board owns two: the window
// surface, which carries move/up only while a gesture is active, and the
// document surface, which carries pointer-down for outside-click detection.
type Surface struct {
	name        string
	pointerDown []pointerHandler
	pointerUp   []pointerHandler
	pointerMove []pointerHandler
	nextID      uint32
}

func newSurface(name string) *Surface {
	return &Surface{name: name}
}

// Subscription allows removing a registered surface callback.
type Subscription struct {
	id    uint32
	s     *Surface
	event EventType
}

// Remove unregisters this callback so it no longer fires. Safe to call more
// than once and on the zero Subscription.
func (h Subscription) Remove() {
	if h.s == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.s.pointerDown = removePointerHandler(h.s.pointerDown, h.id)
	case EventPointerUp:
		h.s.pointerUp = removePointerHandler(h.s.pointerUp, h.id)
	case EventPointerMove:
		h.s.pointerMove = removePointerHandler(h.s.pointerMove, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// On registers fn for the given event. Enter and leave are per-overlay and
// not carried by surfaces; registering them returns a no-op Subscription.
func (s *Surface) On(event EventType, fn func(PointerContext)) Subscription {
	s.nextID++
	id := s.nextID
	h := pointerHandler{id: id, fn: fn}
	switch event {
	case EventPointerDown:
		s.pointerDown = append(s.pointerDown, h)
	case EventPointerUp:
		s.pointerUp = append(s.pointerUp, h)
	case EventPointerMove:
		s.pointerMove = append(s.pointerMove, h)
	default:
		return Subscription{}
	}
	return Subscription{id: id, s: s, event: event}
}

// Listeners returns the number of handlers registered for event.
func (s *Surface) Listeners(event EventType) int {
	switch event {
	case EventPointerDown:
		return len(s.pointerDown)
	case EventPointerUp:
		return len(s.pointerUp)
	case EventPointerMove:
		return len(s.pointerMove)
	}
	return 0
}

// dispatch delivers ctx to every handler of event. Handlers may remove
// themselves or others while running, so a snapshot is iterated.
func (s *Surface) dispatch(event EventType, ctx PointerContext) {
	var hs []pointerHandler
	switch event {
	case EventPointerDown:
		hs = s.pointerDown
	case EventPointerUp:
		hs = s.pointerUp
	case EventPointerMove:
		hs = s.pointerMove
	}
	if len(hs) == 0 {
		return
	}
	snapshot := make([]pointerHandler, len(hs))
	copy(snapshot, hs)
	for _, h := range snapshot {
		if s.registered(event, h.id) {
			h.fn(ctx)
		}
	}
}

func (s *Surface) registered(event EventType, id uint32) bool {
	var hs []pointerHandler
	switch event {
	case EventPointerDown:
		hs = s.pointerDown
	case EventPointerUp:
		hs = s.pointerUp
	case EventPointerMove:
		hs = s.pointerMove
	}
	for i := range hs {
		if hs[i].id == id {
			return true
		}
	}
	return false
}
