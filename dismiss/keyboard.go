// Package dismiss closes floating content from outside the trigger: an
// Escape-key listener and a full-canvas backdrop that captures outside
// presses. Both paths invoke the same close callback; neither knows about
// the other.
package dismiss

import "fyne.io/fyne/v2"

// KeyboardSource is the capability behind the Escape listener. Platforms
// without keyboard/document events use Noop.
type KeyboardSource interface {
	// Install arranges for onClose to run on Escape. Installing over an
	// existing installation replaces it.
	Install(onClose func())
	// Uninstall removes the listener; Escape does nothing afterwards.
	Uninstall()
}

type canvasKeyboard struct {
	canvas    fyne.Canvas
	prev      func(*fyne.KeyEvent)
	installed bool
}

// CanvasKeyboard listens for Escape through the canvas's typed-key hook,
// forwarding every other key to whatever handler was set before Install.
func CanvasKeyboard(c fyne.Canvas) KeyboardSource {
	return &canvasKeyboard{canvas: c}
}

func (k *canvasKeyboard) Install(onClose func()) {
	if k.installed {
		k.Uninstall()
	}
	k.prev = k.canvas.OnTypedKey()
	prev := k.prev
	k.canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			onClose()
			return
		}
		if prev != nil {
			prev(ev)
		}
	})
	k.installed = true
}

func (k *canvasKeyboard) Uninstall() {
	if !k.installed {
		return
	}
	k.canvas.SetOnTypedKey(k.prev)
	k.prev = nil
	k.installed = false
}

type noopKeyboard struct{}

func (noopKeyboard) Install(func()) {}
func (noopKeyboard) Uninstall()     {}

// Noop returns the KeyboardSource for platforms without a keyboard.
func Noop() KeyboardSource {
	return noopKeyboard{}
}

// Policy keeps the keyboard listener in sync with the enabled switch and
// the close callback, reinstalling whenever either changes.
type Policy struct {
	keyboard  KeyboardSource
	enabled   bool
	onClose   func()
	installed bool
}

// NewPolicy creates a disabled policy over the given source.
func NewPolicy(kb KeyboardSource) *Policy {
	return &Policy{keyboard: kb}
}

// SetEnabled toggles the Escape listener.
func (p *Policy) SetEnabled(v bool) {
	if p.enabled == v {
		return
	}
	p.enabled = v
	p.sync()
}

// SetOnClose replaces the close callback, reinstalling the listener so the
// new identity is the one invoked.
func (p *Policy) SetOnClose(fn func()) {
	p.onClose = fn
	p.sync()
}

func (p *Policy) sync() {
	if p.enabled && p.onClose != nil {
		p.keyboard.Install(p.onClose)
		p.installed = true
		return
	}
	if p.installed {
		p.keyboard.Uninstall()
		p.installed = false
	}
}
