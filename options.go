// Package hoverlay provides popover and tooltip widgets for Fyne. The
// widgets wrap a trigger element, decide when the floating content should
// be visible (press, long-press, or hover/focus, with Escape and
// outside-press dismissal), and render the content through the canvas
// overlay stack. Placement and drawing are delegated to Fyne; this package
// only coordinates visibility and exposes the accessibility metadata that
// relates a trigger to its content.
package hoverlay

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2/data/binding"

	"github.com/shhac/hoverlay/a11y"
	"github.com/shhac/hoverlay/dismiss"
	"github.com/shhac/hoverlay/interaction"
)

// Placement selects which side of the trigger the floating content prefers.
// The position is clamped to the canvas; placement never affects whether
// the content is open.
type Placement int

const (
	PlacementBottom Placement = iota
	PlacementTop
	PlacementLeft
	PlacementRight
)

type config struct {
	trigger      interaction.Trigger
	userHandlers interaction.Handlers

	open         *bool
	openBinding  binding.Bool
	defaultOpen  bool
	onOpenChange func(bool)

	outsideClickClose   bool
	keyboardDismissable bool

	placement Placement

	animated      bool
	entryDuration time.Duration
	exitDuration  time.Duration

	autoFocus    bool
	trapFocus    bool
	restoreFocus bool

	closeDelay time.Duration

	logger    *slog.Logger
	scheduler interaction.Scheduler
	keyboard  dismiss.KeyboardSource
	ids       *a11y.IDGenerator
}

func popoverDefaults() config {
	return config{
		trigger:             interaction.TriggerPress,
		outsideClickClose:   true,
		keyboardDismissable: true,
		placement:           PlacementBottom,
		entryDuration:       150 * time.Millisecond,
		exitDuration:        150 * time.Millisecond,
		logger:              slog.New(slog.DiscardHandler),
	}
}

func tooltipDefaults() config {
	cfg := popoverDefaults()
	cfg.trigger = interaction.TriggerHover
	cfg.outsideClickClose = false
	cfg.placement = PlacementTop
	return cfg
}

// Option configures a Popover or Tooltip at construction.
type Option func(*config)

// WithTrigger selects the interaction that opens the content.
func WithTrigger(t interaction.Trigger) Option {
	return func(c *config) { c.trigger = t }
}

// WithTriggerOn selects the trigger from its consumer-facing name
// ("press", "longPress", "hover"). An unknown name produces a widget
// that never opens from interaction, not an error.
func WithTriggerOn(name string) Option {
	return func(c *config) {
		t, _ := interaction.ParseTrigger(name)
		c.trigger = t
	}
}

// WithHandlers merges the consumer's own event handlers; each runs before
// the widget's internal open/close effect for the same event.
func WithHandlers(h interaction.Handlers) Option {
	return func(c *config) { c.userHandlers = h }
}

// WithOpen fixes the widget in controlled mode: the consumer owns the open
// boolean and pushes updates through SetOpen. Interaction and dismissal
// only request changes via the WithOnOpenChange callback.
func WithOpen(open bool) Option {
	return func(c *config) { c.open = &open }
}

// WithOpenBinding drives the open state from a Fyne data binding
// (controlled mode). The widget follows the binding and writes change
// requests back to it.
func WithOpenBinding(b binding.Bool) Option {
	return func(c *config) { c.openBinding = b }
}

// WithDefaultOpen sets the initial value of an uncontrolled widget.
func WithDefaultOpen(open bool) Option {
	return func(c *config) { c.defaultOpen = open }
}

// WithOnOpenChange observes every requested open-state change.
func WithOnOpenChange(fn func(bool)) Option {
	return func(c *config) { c.onOpenChange = fn }
}

// WithOutsideClickClose toggles whether a press on the backdrop closes the
// content.
func WithOutsideClickClose(v bool) Option {
	return func(c *config) { c.outsideClickClose = v }
}

// WithKeyboardDismissable toggles the Escape-key listener.
func WithKeyboardDismissable(v bool) Option {
	return func(c *config) { c.keyboardDismissable = v }
}

// WithPlacement sets the preferred side of the trigger.
func WithPlacement(p Placement) Option {
	return func(c *config) { c.placement = p }
}

// WithAnimated toggles the entry/exit fade. Animations are presentational
// only; the logical open state changes immediately either way.
func WithAnimated(v bool) Option {
	return func(c *config) { c.animated = v }
}

// WithEntryDuration sets the entry fade duration.
func WithEntryDuration(d time.Duration) Option {
	return func(c *config) { c.entryDuration = d }
}

// WithExitDuration sets the exit fade duration. Overlay removal is
// deferred by this long while animated.
func WithExitDuration(d time.Duration) Option {
	return func(c *config) { c.exitDuration = d }
}

// WithAutoFocus focuses the floating content when it opens.
func WithAutoFocus(v bool) Option {
	return func(c *config) { c.autoFocus = v }
}

// WithTrapFocus keeps canvas focus on the floating content while open.
func WithTrapFocus(v bool) Option {
	return func(c *config) { c.trapFocus = v }
}

// WithRestoreFocus returns focus to the previously focused object when the
// content closes.
func WithRestoreFocus(v bool) Option {
	return func(c *config) { c.restoreFocus = v }
}

// WithCloseDelay tunes the hover-mode debounce window.
func WithCloseDelay(d time.Duration) Option {
	return func(c *config) { c.closeDelay = d }
}

// WithLogger sets the structured logger; the default discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithScheduler substitutes the deferred-work scheduler, for tests.
func WithScheduler(s interaction.Scheduler) Option {
	return func(c *config) { c.scheduler = s }
}

// WithKeyboardSource substitutes the Escape-key capability, for tests or
// keyboardless platforms (dismiss.Noop).
func WithKeyboardSource(k dismiss.KeyboardSource) Option {
	return func(c *config) { c.keyboard = k }
}

// WithIDGenerator scopes accessibility ids to a caller-owned generator.
func WithIDGenerator(g *a11y.IDGenerator) Option {
	return func(c *config) { c.ids = g }
}
