// Package sticker is an interactive overlay board for [Ebitengine].
//
// A [Board] holds up to [DefaultCap] free-floating PNG overlays placed on top
// of the page. Each overlay can be dragged by its body, resized from its
// bottom-right knob (width-driven, aspect ratio locked, never narrower than
// [MinWidth]) and rotated from the knob above its top edge. The "X" button
// closes it.
//
// # Quick start
//
//	board := sticker.NewBoard(sticker.DefaultConfig())
//	board.OnNotice(func(msg string) { log.Print(msg) })
//	if _, err := board.AddImage("logo.png", img); err != nil {
//		// *sticker.CapacityError when five overlays are already shown
//	}
//	sticker.Run(board, sticker.RunConfig{Title: "Stickers"})
//
// For full control, implement [ebiten.Game] yourself and call [Board.Update]
// and [Board.Draw] directly, or drive the board from any event source with
// [Board.PointerDown], [Board.PointerMove] and [Board.PointerUp].
//
// # Slots
//
// The [Collection] never shrinks. Closing an overlay marks its slot
// invisible; the next add overwrites the first invisible slot in place and
// keeps its [ID]. Only when no slot is free and the collection is below its
// cap does a new slot appear. At the cap, [Board.AddOrReuse] returns a
// [*CapacityError] whose message is the user notice.
//
// # Gestures
//
// Every overlay runs its own [Gesture] state machine: Idle, Dragging,
// Resizing or Rotating. A press captures an anchor (start geometry plus
// pointer position) and subscribes to the board's window [Surface] for moves
// and releases. Each move yields exactly one [Patch]; the release, wherever it
// happens, returns the machine to Idle and drops the subscriptions. Closing
// the overlay or pressing outside it forces Idle the same way.
//
// Board is single-threaded, like the ebiten game loop that drives it.
//
// [Ebitengine]: https://ebitengine.org
package sticker
