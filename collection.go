package sticker

import "fmt"

// CapacityError is returned by AddOrReuse when every slot is visible and the
// collection is at its cap. Its message is the user-facing notice.
type CapacityError struct {
	Cap int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Maximum %d overlays reached. Please close one to add a new one.", e.Cap)
}

// UnknownOverlayError is returned when a patch or close targets an ID that is
// not in the collection.
type UnknownOverlayError struct {
	ID ID
}

func (e *UnknownOverlayError) Error() string {
	return fmt.Sprintf("sticker: unknown overlay %s", e.ID)
}

// Placement is the viewport used to centre newly placed overlays.
type Placement struct {
	ViewportWidth, ViewportHeight float64
	DefaultWidth                  float64
}

// place computes the initial geometry for an image of the given natural size.
func (p Placement) place(src string, naturalW, naturalH float64) Overlay {
	w := p.DefaultWidth
	if w <= 0 {
		w = DefaultWidth
	}
	h := w / (naturalW / naturalH)
	return Overlay{
		Src:            src,
		X:              p.ViewportWidth/2 - w/2,
		Y:              p.ViewportHeight/2 - h/2,
		Width:          w,
		Height:         h,
		OriginalWidth:  naturalW,
		OriginalHeight: naturalH,
		IsVisible:      true,
	}
}

// Collection owns every overlay slot. Slots are never removed: closing marks
// a slot invisible and the next AddOrReuse overwrites the first such slot in
// place, keeping its ID.
type Collection struct {
	slots  []Overlay
	cap    int
	nextID uint32
}

// NewCollection creates an empty collection with the given cap. A cap below
// one falls back to DefaultCap.
func NewCollection(cap int) *Collection {
	if cap < 1 {
		cap = DefaultCap
	}
	return &Collection{slots: make([]Overlay, 0, cap), cap: cap}
}

// Cap returns the maximum number of slots.
func (c *Collection) Cap() int {
	return c.cap
}

// Len returns the number of allocated slots, visible or not.
func (c *Collection) Len() int {
	return len(c.slots)
}

// Overlays returns every slot in render order. The returned slice MUST NOT be
// mutated by the caller.
func (c *Collection) Overlays() []Overlay {
	return c.slots
}

// VisibleCount returns the number of visible slots.
func (c *Collection) VisibleCount() int {
	n := 0
	for i := range c.slots {
		if c.slots[i].IsVisible {
			n++
		}
	}
	return n
}

// Get returns the overlay with the given ID.
func (c *Collection) Get(id ID) (Overlay, bool) {
	i := c.index(id)
	if i < 0 {
		return Overlay{}, false
	}
	return c.slots[i], true
}

// AddOrReuse places a new overlay for the payload. It reuses the first
// invisible slot, appends if below the cap, and otherwise returns a
// *CapacityError without changing anything. naturalW and naturalH must be
// positive; the upload path guarantees it.
func (c *Collection) AddOrReuse(src string, naturalW, naturalH float64, at Placement) (ID, int, error) {
	if naturalW <= 0 || naturalH <= 0 {
		return 0, -1, fmt.Errorf("sticker: invalid natural size %vx%v", naturalW, naturalH)
	}
	o := at.place(src, naturalW, naturalH)

	if i := c.firstFree(); i >= 0 {
		o.ID = c.slots[i].ID
		c.slots[i] = o
		return o.ID, i, nil
	}
	if len(c.slots) < c.cap {
		c.nextID++
		o.ID = ID(c.nextID)
		c.slots = append(c.slots, o)
		return o.ID, len(c.slots) - 1, nil
	}
	return 0, -1, &CapacityError{Cap: c.cap}
}

// UpdatePatch applies p to the overlay with the given ID, in place.
func (c *Collection) UpdatePatch(id ID, p Patch) (Overlay, error) {
	i := c.index(id)
	if i < 0 {
		return Overlay{}, &UnknownOverlayError{ID: id}
	}
	c.slots[i] = ApplyPatch(c.slots[i], p)
	return c.slots[i], nil
}

// Close marks the overlay invisible. Its geometry is left as is until reuse.
func (c *Collection) Close(id ID) error {
	_, err := c.UpdatePatch(id, VisibilityPatch(false))
	return err
}

// firstFree returns the index of the first invisible slot, or -1.
func (c *Collection) firstFree() int {
	for i := range c.slots {
		if !c.slots[i].IsVisible {
			return i
		}
	}
	return -1
}

func (c *Collection) index(id ID) int {
	for i := range c.slots {
		if c.slots[i].ID == id {
			return i
		}
	}
	return -1
}
