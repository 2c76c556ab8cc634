package main

import (
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var (
	textColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	buttonColor = color.NRGBA{R: 0x7c, G: 0x3a, B: 0xed, A: 0xff}
	panelColor  = color.NRGBA{R: 0x11, G: 0x11, B: 0x18, A: 230}
)

// chrome holds the toolbar and the blocking notice built with ebitenui.
type chrome struct {
	face    ebtext.Face
	toolbar *ebitenui.UI
	bar     *widget.Container
	notice  *ebitenui.UI // non-nil while a notice is open
}

func newChrome(onAdd func()) *chrome {
	c := &chrome{face: ebtext.NewGoXFace(basicfont.Face7x13)}
	c.toolbar = c.buildToolbar(onAdd)
	return c
}

func (c *chrome) button(label string, layout any, onClick func()) *widget.Button {
	img := imageui.NewNineSliceColor(buttonColor)
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: img, Pressed: img}),
		widget.ButtonOpts.Text(label, &c.face, &widget.ButtonTextColor{Idle: textColor}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(layout)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// buildToolbar lays out the "Add PNG Overlay" button in the top-left corner.
func (c *chrome) buildToolbar(onAdd func()) *ebitenui.UI {
	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	c.bar = bar
	bar.AddChild(c.button("Add PNG Overlay", widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}, onAdd))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(bar)
	return &ebitenui.UI{Container: root}
}

// showNotice opens a centred modal with msg and an OK button. While it is
// open the board receives no input.
func (c *chrome) showNotice(msg string) {
	title := widget.NewText(
		widget.TextOpts.Text(msg, &c.face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	ok := c.button("OK", widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}, func() { c.notice = nil })

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(ok)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	c.notice = &ebitenui.UI{Container: root}
}

// covers reports whether (x, y) lies on the toolbar, so a press there is
// kept from the board.
func (c *chrome) covers(x, y float64) bool {
	return image.Pt(int(x), int(y)).In(c.bar.GetWidget().Rect)
}

// blocked reports whether a notice is open.
func (c *chrome) blocked() bool {
	return c.notice != nil
}

func (c *chrome) update() {
	if c.notice != nil {
		c.notice.Update()
		return
	}
	c.toolbar.Update()
}

func (c *chrome) draw(screen *ebiten.Image) {
	c.toolbar.Draw(screen)
	if c.notice != nil {
		c.notice.Draw(screen)
	}
}
