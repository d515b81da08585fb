package dismiss

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Compile-time interface check.
var _ fyne.Tappable = (*Backdrop)(nil)

// Backdrop is an invisible full-canvas layer rendered behind floating
// content. A press anywhere on it invokes the close callback.
type Backdrop struct {
	widget.BaseWidget

	onPress func()
}

// NewBackdrop creates a backdrop that calls onPress when tapped.
func NewBackdrop(onPress func()) *Backdrop {
	b := &Backdrop{onPress: onPress}
	b.ExtendBaseWidget(b)
	return b
}

// Tapped implements fyne.Tappable.
func (b *Backdrop) Tapped(_ *fyne.PointEvent) {
	if b.onPress != nil {
		b.onPress()
	}
}

// CreateRenderer implements fyne.Widget.
func (b *Backdrop) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}
