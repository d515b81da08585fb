package interaction

// HoverFocusSource is the capability that reports pointer-hover and
// focus-within transitions for one rendered element. Implementations on
// platforms without a pointer or focus primitive simply never fire the
// attached callbacks.
type HoverFocusSource interface {
	// AttachHover registers the callback invoked with each hover transition.
	AttachHover(fn func(bool))
	// AttachFocus registers the callback invoked with each focus transition.
	AttachFocus(fn func(bool))
	// Detach removes both callbacks; no callback fires after Detach returns.
	Detach()
}

// NoopSource is a HoverFocusSource that never reports a transition, for
// platforms lacking the underlying primitive.
type NoopSource struct{}

func (NoopSource) AttachHover(func(bool)) {}
func (NoopSource) AttachFocus(func(bool)) {}
func (NoopSource) Detach()                {}

// Tracker holds the observed hover and focus booleans for one element.
// Setters are edge-triggered: the change hook fires only when a boolean
// actually transitions, never on repeated identical events.
type Tracker struct {
	hovered  bool
	focused  bool
	onChange func()
}

// NewTracker creates a Tracker whose hook fires on every transition.
func NewTracker(onChange func()) *Tracker {
	return &Tracker{onChange: onChange}
}

// SetOnChange replaces the transition hook.
func (t *Tracker) SetOnChange(fn func()) {
	t.onChange = fn
}

// Follow attaches the tracker's setters to a source.
func (t *Tracker) Follow(src HoverFocusSource) {
	src.AttachHover(t.SetHovered)
	src.AttachFocus(t.SetFocused)
}

// SetHovered records a hover transition.
func (t *Tracker) SetHovered(v bool) {
	if t.hovered == v {
		return
	}
	t.hovered = v
	t.changed()
}

// SetFocused records a focus transition.
func (t *Tracker) SetFocused(v bool) {
	if t.focused == v {
		return
	}
	t.focused = v
	t.changed()
}

// Hovered reports the last observed hover state.
func (t *Tracker) Hovered() bool { return t.hovered }

// Focused reports the last observed focus state.
func (t *Tracker) Focused() bool { return t.focused }

// Active reports whether the element is hovered or focused.
func (t *Tracker) Active() bool { return t.hovered || t.focused }

// Reset clears both booleans without firing the hook, for teardown.
func (t *Tracker) Reset() {
	t.hovered = false
	t.focused = false
}

func (t *Tracker) changed() {
	if t.onChange != nil {
		t.onChange()
	}
}
