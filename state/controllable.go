// Package state provides the two-mode value cell used for open/closed
// ownership: a value is either controlled (owned by the consumer, who
// supplies the current value and receives change requests) or uncontrolled
// (owned by the cell itself, seeded from a default).
package state

// Options configures a Controllable cell.
//
// If Value is non-nil at construction the cell is controlled for its entire
// lifetime. Otherwise it is uncontrolled and starts from DefaultFunc (lazy)
// when set, or Default (eager) when not.
type Options[T any] struct {
	// Value, when non-nil, fixes the cell in controlled mode and supplies
	// its initial external value.
	Value *T

	// Default seeds an uncontrolled cell.
	Default T

	// DefaultFunc, when non-nil, seeds an uncontrolled cell lazily and
	// takes precedence over Default.
	DefaultFunc func() T

	// OnChange is invoked with the requested next value on every Set. In
	// controlled mode it is the only effect of Set.
	OnChange func(T)
}

// Controllable is a value cell that is either externally owned (controlled)
// or internally owned (uncontrolled), behind a uniform Get/Set contract.
//
// The mode is fixed at construction. Constructing with Options.Value set and
// later treating the cell as uncontrolled (or vice versa) is unsupported;
// the cell does not detect or report it.
type Controllable[T any] struct {
	controlled bool
	value      T
	onChange   func(T)
}

// New creates a Controllable cell from opts.
func New[T any](opts Options[T]) *Controllable[T] {
	c := &Controllable[T]{onChange: opts.OnChange}
	if opts.Value != nil {
		c.controlled = true
		c.value = *opts.Value
		return c
	}
	if opts.DefaultFunc != nil {
		c.value = opts.DefaultFunc()
	} else {
		c.value = opts.Default
	}
	return c
}

// Controlled reports whether the cell is externally owned.
func (c *Controllable[T]) Controlled() bool {
	return c.controlled
}

// Get returns the current value: the latest synced external value in
// controlled mode, the internal cell otherwise.
func (c *Controllable[T]) Get() T {
	return c.value
}

// Set requests a new value. Uncontrolled cells store it and then invoke
// OnChange if present. Controlled cells never store it; they only invoke
// OnChange, leaving the owner to decide whether to Sync the value back.
func (c *Controllable[T]) Set(v T) {
	if !c.controlled {
		c.value = v
	}
	if c.onChange != nil {
		c.onChange(v)
	}
}

// SetFunc is Set with a transform applied to the current value.
func (c *Controllable[T]) SetFunc(f func(T) T) {
	c.Set(f(c.value))
}

// Sync records the latest externally supplied value of a controlled cell.
// It fires no callbacks. Calling Sync on an uncontrolled cell is a no-op.
func (c *Controllable[T]) Sync(v T) {
	if c.controlled {
		c.value = v
	}
}
