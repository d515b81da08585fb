package hoverlay

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/hoverlay/interaction"
)

// Compile-time interface checks.
var (
	_ desktop.Hoverable            = (*hoverArea)(nil)
	_ fyne.Focusable               = (*hoverArea)(nil)
	_ interaction.HoverFocusSource = (*hoverArea)(nil)
)

// hoverArea wraps a canvas object and reports its pointer-hover and
// focus-within transitions. Drivers without a pointer (mobile) never call
// the Hoverable methods, so the hover half is naturally inert there.
type hoverArea struct {
	widget.BaseWidget

	content fyne.CanvasObject
	onHover func(bool)
	onFocus func(bool)
}

func newHoverArea(content fyne.CanvasObject) *hoverArea {
	a := &hoverArea{content: content}
	a.ExtendBaseWidget(a)
	return a
}

// AttachHover implements interaction.HoverFocusSource.
func (a *hoverArea) AttachHover(fn func(bool)) { a.onHover = fn }

// AttachFocus implements interaction.HoverFocusSource.
func (a *hoverArea) AttachFocus(fn func(bool)) { a.onFocus = fn }

// Detach implements interaction.HoverFocusSource.
func (a *hoverArea) Detach() {
	a.onHover = nil
	a.onFocus = nil
}

// MouseIn implements desktop.Hoverable.
func (a *hoverArea) MouseIn(_ *desktop.MouseEvent) {
	if a.onHover != nil {
		a.onHover(true)
	}
}

// MouseMoved is required by desktop.Hoverable but needs no action.
func (a *hoverArea) MouseMoved(_ *desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable.
func (a *hoverArea) MouseOut() {
	if a.onHover != nil {
		a.onHover(false)
	}
}

// FocusGained implements fyne.Focusable.
func (a *hoverArea) FocusGained() {
	if a.onFocus != nil {
		a.onFocus(true)
	}
}

// FocusLost implements fyne.Focusable.
func (a *hoverArea) FocusLost() {
	if a.onFocus != nil {
		a.onFocus(false)
	}
}

// TypedRune implements fyne.Focusable.
func (a *hoverArea) TypedRune(rune) {}

// TypedKey implements fyne.Focusable.
func (a *hoverArea) TypedKey(*fyne.KeyEvent) {}

// CreateRenderer implements fyne.Widget.
func (a *hoverArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(a.content)
}
