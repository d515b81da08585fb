package hoverlay

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"github.com/shhac/hoverlay/dismiss"
)

// bubble is the floating content surface: a themed rounded rectangle
// behind the padded content. The background rectangle is kept so the
// entry/exit fade can animate it.
type bubble struct {
	root *fyne.Container
	bg   *canvas.Rectangle
}

func newBubble(content fyne.CanvasObject) *bubble {
	bgColor := theme.Color(theme.ColorNameOverlayBackground)
	bg := canvas.NewRectangle(bgColor)
	bg.CornerRadius = theme.Padding()
	return &bubble{
		root: container.NewStack(bg, container.NewPadded(content)),
		bg:   bg,
	}
}

// overlayHost renders the backdrop and bubble above all other content
// through the canvas overlay stack.
type overlayHost struct {
	canvas fyne.Canvas
	layer  *fyne.Container
}

// show places the bubble next to the anchor and adds the layer to the
// overlay stack. backdrop may be nil for non-modal content (tooltips).
func (h *overlayHost) show(c fyne.Canvas, anchor fyne.CanvasObject, b *bubble, backdrop *dismiss.Backdrop, placement Placement) {
	h.hide()
	h.canvas = c

	objects := make([]fyne.CanvasObject, 0, 2)
	if backdrop != nil {
		backdrop.Resize(c.Size())
		backdrop.Move(fyne.NewPos(0, 0))
		objects = append(objects, backdrop)
	}

	driver := fyne.CurrentApp().Driver()
	anchorPos := driver.AbsolutePositionForObject(anchor)
	b.root.Resize(b.root.MinSize())
	b.root.Move(contentPosition(anchorPos, anchor.Size(), b.root.Size(), c.Size(), placement))
	objects = append(objects, b.root)

	h.layer = container.NewWithoutLayout(objects...)
	c.Overlays().Add(h.layer)
}

// hide removes the layer from the overlay stack, if present.
func (h *overlayHost) hide() {
	if h.layer == nil || h.canvas == nil {
		return
	}
	h.canvas.Overlays().Remove(h.layer)
	h.layer = nil
}

// contentPosition picks the preferred side of the anchor and clamps the
// result to the canvas so the content stays fully visible.
func contentPosition(anchorPos fyne.Position, anchorSize, popupSize, canvasSize fyne.Size, placement Placement) fyne.Position {
	gap := theme.Padding()

	var x, y float32
	switch placement {
	case PlacementTop:
		x = anchorPos.X + (anchorSize.Width-popupSize.Width)/2
		y = anchorPos.Y - popupSize.Height - gap
	case PlacementLeft:
		x = anchorPos.X - popupSize.Width - gap
		y = anchorPos.Y + (anchorSize.Height-popupSize.Height)/2
	case PlacementRight:
		x = anchorPos.X + anchorSize.Width + gap
		y = anchorPos.Y + (anchorSize.Height-popupSize.Height)/2
	default: // PlacementBottom
		x = anchorPos.X + (anchorSize.Width-popupSize.Width)/2
		y = anchorPos.Y + anchorSize.Height + gap
	}

	x = clamp(x, 0, canvasSize.Width-popupSize.Width)
	y = clamp(y, 0, canvasSize.Height-popupSize.Height)
	return fyne.NewPos(x, y)
}

func clamp(v, lo, hi float32) float32 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// fadeColors returns the transparent and opaque endpoints for the bubble
// background fade.
func fadeColors() (faded, full color.Color) {
	full = theme.Color(theme.ColorNameOverlayBackground)
	r, g, b, _ := full.RGBA()
	faded = color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0}
	return faded, full
}
