package dismiss

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pressEscape(c fyne.Canvas) {
	if handler := c.OnTypedKey(); handler != nil {
		handler(&fyne.KeyEvent{Name: fyne.KeyEscape})
	}
}

func TestCanvasKeyboard_EscapeCloses(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	w := test.NewWindow(widget.NewLabel("content"))
	defer w.Close()

	closed := 0
	kb := CanvasKeyboard(w.Canvas())
	kb.Install(func() { closed++ })

	pressEscape(w.Canvas())
	assert.Equal(t, 1, closed, "escape triggers the close callback exactly once")

	pressEscape(w.Canvas())
	assert.Equal(t, 2, closed)
}

func TestCanvasKeyboard_UninstallRestoresPrevious(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	w := test.NewWindow(widget.NewLabel("content"))
	defer w.Close()

	var keys []fyne.KeyName
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		keys = append(keys, ev.Name)
	})

	closed := 0
	kb := CanvasKeyboard(w.Canvas())
	kb.Install(func() { closed++ })

	// Non-escape keys forward to the handler that was there before.
	w.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Equal(t, []fyne.KeyName{fyne.KeyReturn}, keys)

	pressEscape(w.Canvas())
	require.Equal(t, 1, closed)
	assert.Len(t, keys, 1, "escape is consumed, not forwarded")

	kb.Uninstall()
	pressEscape(w.Canvas())
	assert.Equal(t, 1, closed, "escape after teardown triggers nothing")
	assert.Equal(t, []fyne.KeyName{fyne.KeyReturn, fyne.KeyEscape}, keys,
		"the previous handler is restored")

	// Uninstall is idempotent.
	kb.Uninstall()
}

func TestCanvasKeyboard_ReinstallReplacesCallback(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	w := test.NewWindow(widget.NewLabel("content"))
	defer w.Close()

	first, second := 0, 0
	kb := CanvasKeyboard(w.Canvas())
	kb.Install(func() { first++ })
	kb.Install(func() { second++ })

	pressEscape(w.Canvas())
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)

	kb.Uninstall()
	pressEscape(w.Canvas())
	assert.Equal(t, 1, second)
}

// recordingKeyboard counts installs and fires like a keyboard for Policy tests.
type recordingKeyboard struct {
	onClose    func()
	installs   int
	uninstalls int
}

func (k *recordingKeyboard) Install(onClose func()) {
	k.onClose = onClose
	k.installs++
}

func (k *recordingKeyboard) Uninstall() {
	k.onClose = nil
	k.uninstalls++
}

func (k *recordingKeyboard) escape() {
	if k.onClose != nil {
		k.onClose()
	}
}

func TestPolicy_InstallsOnlyWhenEnabledWithCallback(t *testing.T) {
	kb := &recordingKeyboard{}
	p := NewPolicy(kb)

	p.SetEnabled(true)
	assert.Equal(t, 0, kb.installs, "no callback yet, nothing to install")

	closed := 0
	p.SetOnClose(func() { closed++ })
	assert.Equal(t, 1, kb.installs)

	kb.escape()
	assert.Equal(t, 1, closed)

	p.SetEnabled(false)
	assert.Equal(t, 1, kb.uninstalls)
	kb.escape()
	assert.Equal(t, 1, closed, "disabled policy triggers nothing")

	p.SetEnabled(true)
	assert.Equal(t, 2, kb.installs)
}

func TestPolicy_CallbackIdentityChangeReinstalls(t *testing.T) {
	kb := &recordingKeyboard{}
	p := NewPolicy(kb)

	a, b := 0, 0
	p.SetEnabled(true)
	p.SetOnClose(func() { a++ })
	p.SetOnClose(func() { b++ })
	assert.Equal(t, 2, kb.installs)

	kb.escape()
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
}

func TestPolicy_ClearingCallbackUninstalls(t *testing.T) {
	kb := &recordingKeyboard{}
	p := NewPolicy(kb)

	p.SetEnabled(true)
	p.SetOnClose(func() {})
	require.Equal(t, 1, kb.installs)

	p.SetOnClose(nil)
	assert.Equal(t, 1, kb.uninstalls)
}

func TestNoop_DoesNothing(t *testing.T) {
	kb := Noop()
	kb.Install(func() { t.Fatal("noop keyboard must never fire") })
	kb.Uninstall()

	p := NewPolicy(Noop())
	p.SetEnabled(true)
	p.SetOnClose(func() { t.Fatal("noop keyboard must never fire") })
	p.SetEnabled(false)
}

func TestBackdrop_TapCloses(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	pressed := 0
	b := NewBackdrop(func() { pressed++ })
	w := test.NewWindow(b)
	defer w.Close()
	w.Resize(fyne.NewSize(300, 300))

	test.Tap(b)
	assert.Equal(t, 1, pressed)

	test.Tap(b)
	assert.Equal(t, 2, pressed)
}

func TestBackdrop_NilCallback(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	b := NewBackdrop(nil)
	w := test.NewWindow(b)
	defer w.Close()

	// Must not panic.
	test.Tap(b)
}
