package hoverlay

import (
	"image/color"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	databinding "fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/hoverlay/a11y"
	"github.com/shhac/hoverlay/dismiss"
	"github.com/shhac/hoverlay/interaction"
	"github.com/shhac/hoverlay/state"
)

type variant int

const (
	variantPopover variant = iota
	variantTooltip
)

// Compile-time interface checks.
var (
	_ fyne.Tappable          = (*Popover)(nil)
	_ fyne.SecondaryTappable = (*Popover)(nil)
	_ desktop.Hoverable      = (*Popover)(nil)
	_ fyne.Focusable         = (*Popover)(nil)
)

// Popover wraps a trigger element and shows floating content above all
// other canvas content while open. The open boolean is owned by the widget
// (uncontrolled) or by the consumer (controlled, via WithOpen or
// WithOpenBinding); interaction and dismissal always write through the
// same cell, so there is exactly one writer path per turn.
type Popover struct {
	widget.BaseWidget

	trigger fyne.CanvasObject
	cfg     config
	logger  *slog.Logger
	v       variant

	triggerID string
	contentID string

	openState      *state.Controllable[bool]
	openListener   databinding.DataListener
	bound          *interaction.Binding
	contentTracker *interaction.Tracker
	contentArea    *hoverArea
	policy         *dismiss.Policy
	host           overlayHost

	bubble    *bubble
	shown     bool
	prevFocus fyne.Focusable
}

// NewPopover creates a popover around trigger, showing content while open.
// The default configuration opens on press and closes on Escape or a press
// outside the content.
func NewPopover(trigger, content fyne.CanvasObject, opts ...Option) *Popover {
	p := &Popover{}
	p.init(p, trigger, content, variantPopover, popoverDefaults(), opts)
	return p
}

func (p *Popover) init(outer fyne.Widget, trigger, content fyne.CanvasObject, v variant, cfg config, opts []Option) {
	for _, opt := range opts {
		opt(&cfg)
	}

	p.trigger = trigger
	p.cfg = cfg
	p.logger = cfg.logger
	p.v = v

	if cfg.ids != nil {
		p.triggerID = cfg.ids.Next("trigger")
		p.contentID = cfg.ids.Next("content")
	} else {
		p.triggerID = a11y.NextID("trigger")
		p.contentID = a11y.NextID("content")
	}

	p.contentTracker = interaction.NewTracker(nil)
	p.contentArea = newHoverArea(content)
	p.contentArea.AttachHover(p.contentTracker.SetHovered)
	p.contentArea.AttachFocus(func(focused bool) {
		p.contentTracker.SetFocused(focused)
		if !focused && p.cfg.trapFocus && p.shown {
			if c := p.host.canvas; c != nil {
				c.Focus(p.contentArea)
			}
		}
	})

	p.openState = state.New(p.stateOptions(cfg))
	if cfg.openBinding != nil {
		p.openListener = databinding.NewDataListener(func() {
			if open, err := cfg.openBinding.Get(); err == nil {
				p.SetOpen(open)
			}
		})
		cfg.openBinding.AddListener(p.openListener)
	}

	p.bound = interaction.Bind(interaction.Config{
		Trigger:    cfg.trigger,
		User:       cfg.userHandlers,
		OnOpen:     func() { p.requestSet(true) },
		OnClose:    func() { p.requestSet(false) },
		Content:    p.contentTracker,
		Scheduler:  cfg.scheduler,
		CloseDelay: cfg.closeDelay,
	})

	if cfg.keyboard != nil {
		p.policy = dismiss.NewPolicy(cfg.keyboard)
	}

	p.ExtendBaseWidget(outer)
}

// stateOptions builds the open-state cell: controlled when WithOpen or
// WithOpenBinding was supplied, uncontrolled otherwise. The mode is fixed
// here for the widget's lifetime.
func (p *Popover) stateOptions(cfg config) state.Options[bool] {
	opts := state.Options[bool]{
		OnChange: func(open bool) {
			if cfg.openBinding != nil {
				_ = cfg.openBinding.Set(open)
			}
			if cfg.onOpenChange != nil {
				cfg.onOpenChange(open)
			}
			if cfg.open == nil && cfg.openBinding == nil {
				p.applyOpen(open)
			}
		},
	}
	switch {
	case cfg.open != nil:
		opts.Value = cfg.open
	case cfg.openBinding != nil:
		open, _ := cfg.openBinding.Get()
		opts.Value = &open
	default:
		opts.Default = cfg.defaultOpen
	}
	return opts
}

// IsOpen reports the logical open state.
func (p *Popover) IsOpen() bool {
	return p.openState.Get()
}

// SetOpen applies an open-state update. In controlled mode this is the
// consumer's write path after observing a change request; in uncontrolled
// mode it is a programmatic toggle equivalent to the user interaction.
func (p *Popover) SetOpen(open bool) {
	if p.openState.Controlled() {
		p.openState.Sync(open)
		p.applyOpen(open)
		return
	}
	if p.openState.Get() == open && p.shown == open {
		return
	}
	p.openState.Set(open)
}

// TriggerID returns the unique id of the trigger element.
func (p *Popover) TriggerID() string { return p.triggerID }

// ContentID returns the unique id of the floating content.
func (p *Popover) ContentID() string { return p.contentID }

// TriggerAttributes derives the accessibility attributes for the trigger
// from the current open state.
func (p *Popover) TriggerAttributes() a11y.Attributes {
	if p.v == variantTooltip {
		return a11y.TooltipTriggerAttrs(p.IsOpen(), p.triggerID, p.contentID)
	}
	return a11y.PopoverTriggerAttrs(p.IsOpen(), p.triggerID, p.contentID)
}

// ContentAttributes derives the accessibility attributes for the content.
func (p *Popover) ContentAttributes() a11y.Attributes {
	if p.v == variantTooltip {
		return a11y.TooltipContentAttrs(p.contentID)
	}
	return a11y.PopoverContentAttrs(p.contentID)
}

// Detach tears down listeners, trackers and pending deferred work. Call it
// when permanently removing the widget from a canvas; no callback fires
// afterwards.
func (p *Popover) Detach() {
	p.bound.Detach()
	if p.openListener != nil {
		p.cfg.openBinding.RemoveListener(p.openListener)
		p.openListener = nil
	}
	if p.policy != nil {
		p.policy.SetEnabled(false)
		p.policy.SetOnClose(nil)
	}
	p.contentArea.Detach()
	p.contentTracker.Reset()
	p.host.hide()
	p.shown = false
}

// requestSet is the single write path used by interaction and dismissal.
func (p *Popover) requestSet(open bool) {
	if p.openState.Get() == open {
		return
	}
	p.openState.Set(open)
}

// applyOpen reconciles the rendered overlay with the logical open state.
func (p *Popover) applyOpen(open bool) {
	if open == p.shown {
		return
	}
	if open {
		p.showContent()
	} else {
		p.hideContent()
	}
}

func (p *Popover) showContent() {
	c := fyne.CurrentApp().Driver().CanvasForObject(p)
	if c == nil {
		p.logger.Debug("trigger not mounted, deferring show", slog.String("trigger_id", p.triggerID))
		return
	}

	if p.policy == nil {
		p.policy = dismiss.NewPolicy(dismiss.CanvasKeyboard(c))
	}
	p.policy.SetOnClose(func() {
		p.logger.Debug("dismissed via escape", slog.String("content_id", p.contentID))
		p.requestSet(false)
	})
	p.policy.SetEnabled(p.cfg.keyboardDismissable)

	var backdrop *dismiss.Backdrop
	if p.v == variantPopover {
		backdrop = dismiss.NewBackdrop(func() {
			if !p.cfg.outsideClickClose {
				return
			}
			p.logger.Debug("dismissed via outside press", slog.String("content_id", p.contentID))
			p.requestSet(false)
		})
	}

	p.bubble = newBubble(p.contentArea)
	p.host.show(c, p, p.bubble, backdrop, p.cfg.placement)
	p.shown = true

	if p.cfg.restoreFocus {
		p.prevFocus = c.Focused()
	}
	if p.cfg.autoFocus || p.cfg.trapFocus {
		f := firstFocusable(p.contentArea.content)
		if f == nil {
			f = p.contentArea
		}
		c.Focus(f)
	}
	if p.cfg.animated && p.cfg.entryDuration > 0 {
		p.fade(p.bubble, false, p.cfg.entryDuration)
	}
	p.logger.Debug("floating content opened", slog.String("content_id", p.contentID))
}

func (p *Popover) hideContent() {
	if !p.shown {
		return
	}
	p.shown = false
	if p.policy != nil {
		p.policy.SetEnabled(false)
	}

	if c := p.host.canvas; c != nil && p.cfg.restoreFocus && p.prevFocus != nil {
		c.Focus(p.prevFocus)
		p.prevFocus = nil
	}

	if p.cfg.animated && p.cfg.exitDuration > 0 {
		// Exit fade is presentational: the logical state is already
		// closed, only overlay removal is deferred.
		p.fade(p.bubble, true, p.cfg.exitDuration)
		layer := p.host.layer
		p.schedule(p.cfg.exitDuration, func() {
			if p.host.layer == layer {
				p.host.hide()
			}
		})
	} else {
		p.host.hide()
	}
	p.logger.Debug("floating content closed", slog.String("content_id", p.contentID))
}

func (p *Popover) fade(b *bubble, out bool, d time.Duration) {
	faded, full := fadeColors()
	from, to := faded, full
	if out {
		from, to = full, faded
	}
	canvas.NewColorRGBAAnimation(from, to, d, func(col color.Color) {
		b.bg.FillColor = col
		b.bg.Refresh()
	}).Start()
}

func (p *Popover) schedule(d time.Duration, f func()) {
	sched := p.cfg.scheduler
	if sched == nil {
		sched = interaction.DefaultScheduler()
	}
	sched.Schedule(d, f)
}

// firstFocusable walks obj and its container children for a focus target.
func firstFocusable(obj fyne.CanvasObject) fyne.Focusable {
	if f, ok := obj.(fyne.Focusable); ok {
		return f
	}
	if c, ok := obj.(*fyne.Container); ok {
		for _, child := range c.Objects {
			if f := firstFocusable(child); f != nil {
				return f
			}
		}
	}
	return nil
}

// Tapped implements fyne.Tappable.
func (p *Popover) Tapped(_ *fyne.PointEvent) {
	if p.bound.OnPress != nil {
		p.bound.OnPress()
	}
}

// TappedSecondary implements fyne.SecondaryTappable. Fyne's mobile driver
// delivers a long press as a secondary tap, so this is the long-press path.
func (p *Popover) TappedSecondary(_ *fyne.PointEvent) {
	if p.bound.OnLongPress != nil {
		p.bound.OnLongPress()
	}
}

// MouseIn implements desktop.Hoverable.
func (p *Popover) MouseIn(_ *desktop.MouseEvent) {
	if p.bound.OnHoverIn != nil {
		p.bound.OnHoverIn()
	}
}

// MouseMoved is required by desktop.Hoverable but needs no action.
func (p *Popover) MouseMoved(_ *desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable.
func (p *Popover) MouseOut() {
	if p.bound.OnHoverOut != nil {
		p.bound.OnHoverOut()
	}
}

// FocusGained implements fyne.Focusable.
func (p *Popover) FocusGained() {
	if p.bound.OnFocus != nil {
		p.bound.OnFocus()
	}
}

// FocusLost implements fyne.Focusable.
func (p *Popover) FocusLost() {
	if p.bound.OnBlur != nil {
		p.bound.OnBlur()
	}
}

// TypedRune implements fyne.Focusable.
func (p *Popover) TypedRune(rune) {}

// TypedKey implements fyne.Focusable.
func (p *Popover) TypedKey(*fyne.KeyEvent) {}

// CreateRenderer implements fyne.Widget. A widget constructed already open
// (default-open, or controlled with an initial true) shows its content on
// the next UI turn, once the trigger has a canvas.
func (p *Popover) CreateRenderer() fyne.WidgetRenderer {
	if p.IsOpen() && !p.shown {
		p.schedule(0, func() { p.applyOpen(p.IsOpen()) })
	}
	return widget.NewSimpleRenderer(p.trigger)
}
