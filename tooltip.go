package hoverlay

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Tooltip is the non-modal variant: hover-triggered by default, no
// backdrop, tooltip accessibility attributes. It shares the popover's
// interaction core, so controlled mode, Escape dismissal and the hover
// debounce all behave identically.
type Tooltip struct {
	Popover
}

// NewTooltip creates a tooltip around trigger showing text while hovered
// or focused.
func NewTooltip(trigger fyne.CanvasObject, text string, opts ...Option) *Tooltip {
	return NewTooltipWithContent(trigger, widget.NewLabel(text), opts...)
}

// NewTooltipWithContent creates a tooltip with arbitrary floating content.
func NewTooltipWithContent(trigger, content fyne.CanvasObject, opts ...Option) *Tooltip {
	t := &Tooltip{}
	t.init(t, trigger, content, variantTooltip, tooltipDefaults(), opts)
	return t
}
