package sticker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run. Zero fields fall back to
// the board's WindowConfig.
type RunConfig struct {
	Title         string
	Width, Height int

	// Before and After run around the board each frame; a non-nil error from
	// either stops the loop. After is where an app updates widgets drawn on
	// top of the board.
	Before func() error
	After  func() error

	// Overlay is drawn after the board, for toolbars and notices.
	Overlay func(screen *ebiten.Image)

	// Blocked, when it returns true, suspends board input for the frame,
	// as while a modal notice is open.
	Blocked func() bool
}

type boardGame struct {
	board  *Board
	cfg    RunConfig
	cursor ebiten.CursorShapeType
}

func (g *boardGame) Update() error {
	if g.cfg.Before != nil {
		if err := g.cfg.Before(); err != nil {
			return err
		}
	}
	if g.cfg.Blocked == nil || !g.cfg.Blocked() {
		g.board.Update()
	}
	if c := g.board.Cursor(); c != g.cursor {
		ebiten.SetCursorShape(c)
		g.cursor = c
	}
	if g.cfg.After != nil {
		return g.cfg.After()
	}
	return nil
}

func (g *boardGame) Draw(screen *ebiten.Image) {
	g.board.Draw(screen)
	if g.cfg.Overlay != nil {
		g.cfg.Overlay(screen)
	}
}

func (g *boardGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.board.SetViewport(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and drives the board until the window closes
// or a frame hook fails.
func Run(b *Board, cfg RunConfig) error {
	win := b.cfg.Window
	if cfg.Title == "" {
		cfg.Title = win.Title
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = win.Width, win.Height
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	b.SetViewport(float64(cfg.Width), float64(cfg.Height))
	return ebiten.RunGame(&boardGame{board: b, cfg: cfg})
}
