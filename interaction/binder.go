package interaction

import "time"

// Trigger selects which interaction opens the floating content. It is
// fixed per component instance.
type Trigger int

const (
	// TriggerPress opens on tap/click.
	TriggerPress Trigger = iota
	// TriggerLongPress opens on a long press (secondary tap on Fyne).
	TriggerLongPress
	// TriggerHover opens while the trigger or content is hovered or focused.
	TriggerHover
	// triggerInvalid marks an unparseable mode; Bind treats it as no-op.
	triggerInvalid
)

// ParseTrigger maps the consumer-facing mode string to a Trigger.
// Unknown strings report ok=false; binding the returned value yields an
// empty handler set rather than an error.
func ParseTrigger(s string) (t Trigger, ok bool) {
	switch s {
	case "press":
		return TriggerPress, true
	case "longPress", "longpress":
		return TriggerLongPress, true
	case "hover":
		return TriggerHover, true
	default:
		return triggerInvalid, false
	}
}

// DefaultCloseDelay is the hover-mode debounce window: how long all four
// hover/focus booleans must stay false before the content closes. Long
// enough for the content's own hover-in or focus-in to land while the
// pointer travels from trigger to content.
const DefaultCloseDelay = 100 * time.Millisecond

// Handlers is the event-handler set attached to the trigger element. Nil
// fields mean the event is not observed. The set produced by Bind always
// invokes the user-supplied handler before the internal open/close effect,
// in the same synchronous turn.
type Handlers struct {
	OnPress     func()
	OnLongPress func()
	OnHoverIn   func()
	OnHoverOut  func()
	OnFocus     func()
	OnBlur      func()
}

// Config describes one binding between a trigger mode and the open/close
// callbacks of a floating element.
type Config struct {
	Trigger Trigger

	// User carries the consumer's own handlers, merged so they run before
	// the internal effect.
	User Handlers

	OnOpen  func()
	OnClose func()

	// Content tracks the floating content's hover/focus booleans in hover
	// mode. May be nil; the close check then considers only the trigger.
	Content *Tracker

	// Scheduler defers the hover-mode close check; DefaultScheduler when nil.
	Scheduler Scheduler

	// CloseDelay overrides DefaultCloseDelay when positive.
	CloseDelay time.Duration
}

// Binding is the live result of Bind: the handler set plus its teardown.
type Binding struct {
	Handlers

	detach func()
}

// Detach cancels any pending deferred work and disconnects the binding
// from its trackers. Safe to call more than once.
func (b *Binding) Detach() {
	if b.detach != nil {
		b.detach()
	}
}

// Bind constructs the handler set for cfg's trigger mode. Each mode is a
// separate constructor built the same way regardless of configuration; the
// switch here is the only dispatch. An unrecognized mode yields an empty
// (no-op) binding.
func Bind(cfg Config) *Binding {
	switch cfg.Trigger {
	case TriggerPress:
		return bindPress(cfg)
	case TriggerLongPress:
		return bindLongPress(cfg)
	case TriggerHover:
		return bindHover(cfg)
	default:
		return &Binding{}
	}
}

func bindPress(cfg Config) *Binding {
	return &Binding{Handlers: Handlers{
		OnPress:     compose(cfg.User.OnPress, cfg.OnOpen),
		OnLongPress: cfg.User.OnLongPress,
		OnHoverIn:   cfg.User.OnHoverIn,
		OnHoverOut:  cfg.User.OnHoverOut,
		OnFocus:     cfg.User.OnFocus,
		OnBlur:      cfg.User.OnBlur,
	}}
}

func bindLongPress(cfg Config) *Binding {
	return &Binding{Handlers: Handlers{
		OnPress:     cfg.User.OnPress,
		OnLongPress: compose(cfg.User.OnLongPress, cfg.OnOpen),
		OnHoverIn:   cfg.User.OnHoverIn,
		OnHoverOut:  cfg.User.OnHoverOut,
		OnFocus:     cfg.User.OnFocus,
		OnBlur:      cfg.User.OnBlur,
	}}
}

// hoverBinding owns the trigger-side hover/focus booleans and the deferred
// close check shared with the content-side tracker.
type hoverBinding struct {
	cfg     Config
	trigger Tracker
	cancel  func()

	// gen stamps each scheduled close check. A callback that was already
	// queued onto the UI thread when its cancel ran compares its stamp on
	// entry and returns, so only the newest check can close.
	gen      uint64
	detached bool
}

func bindHover(cfg Config) *Binding {
	h := &hoverBinding{cfg: cfg}
	if cfg.Content != nil {
		cfg.Content.SetOnChange(h.scheduleCloseCheck)
	}
	return &Binding{
		Handlers: Handlers{
			OnPress:     cfg.User.OnPress,
			OnLongPress: cfg.User.OnLongPress,
			OnHoverIn:   compose(cfg.User.OnHoverIn, func() { h.setTrigger(h.trigger.SetHovered, true) }),
			OnHoverOut:  compose(cfg.User.OnHoverOut, func() { h.setTrigger(h.trigger.SetHovered, false) }),
			OnFocus:     compose(cfg.User.OnFocus, func() { h.setTrigger(h.trigger.SetFocused, true) }),
			OnBlur:      compose(cfg.User.OnBlur, func() { h.setTrigger(h.trigger.SetFocused, false) }),
		},
		detach: h.teardown,
	}
}

// setTrigger applies one trigger-side transition: open on the rising edge
// of (hovered OR focused), then reschedule the close check.
func (h *hoverBinding) setTrigger(set func(bool), v bool) {
	wasActive := h.trigger.Active()
	set(v)
	if !wasActive && h.trigger.Active() && h.cfg.OnOpen != nil {
		h.cfg.OnOpen()
	}
	h.scheduleCloseCheck()
}

// scheduleCloseCheck cancels any pending check and defers a fresh one.
// The check closes only if none of the four booleans is true by the time
// it fires, which lets a focus or hover transfer onto the content land
// before the binding concludes nothing is active.
func (h *hoverBinding) scheduleCloseCheck() {
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	sched := h.cfg.Scheduler
	if sched == nil {
		sched = DefaultScheduler()
	}
	delay := h.cfg.CloseDelay
	if delay <= 0 {
		delay = DefaultCloseDelay
	}
	h.gen++
	gen := h.gen
	h.cancel = sched.Schedule(delay, func() {
		if h.detached || gen != h.gen {
			return
		}
		h.cancel = nil
		if h.anyActive() {
			return
		}
		if h.cfg.OnClose != nil {
			h.cfg.OnClose()
		}
	})
}

func (h *hoverBinding) anyActive() bool {
	if h.trigger.Active() {
		return true
	}
	return h.cfg.Content != nil && h.cfg.Content.Active()
}

func (h *hoverBinding) teardown() {
	h.detached = true
	h.gen++
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	if h.cfg.Content != nil {
		h.cfg.Content.SetOnChange(nil)
		h.cfg.Content.Reset()
	}
	h.trigger.Reset()
}

// compose runs the user handler, then the internal effect. A panic in the
// user handler propagates to the caller untouched.
func compose(user, internal func()) func() {
	if user == nil && internal == nil {
		return nil
	}
	return func() {
		if user != nil {
			user()
		}
		if internal != nil {
			internal()
		}
	}
}
