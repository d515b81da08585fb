// Package interaction turns a trigger mode (press, long-press, hover) into
// the event-handler set that opens and closes a floating element. The hover
// mode coordinates four hover/focus booleans and a deferred close check so
// the content does not flicker shut while the pointer or focus moves from
// the trigger onto the content.
package interaction

import (
	"time"

	"fyne.io/fyne/v2"
)

// Scheduler defers a callback onto the UI thread after a delay. The
// returned cancel discards the callback if it has not fired yet. Tests
// substitute a deterministic implementation.
type Scheduler interface {
	Schedule(d time.Duration, f func()) (cancel func())
}

type uiScheduler struct{}

func (uiScheduler) Schedule(d time.Duration, f func()) func() {
	t := time.AfterFunc(d, func() {
		fyne.Do(f)
	})
	return func() { t.Stop() }
}

// DefaultScheduler schedules through time.AfterFunc and delivers the
// callback on the Fyne UI thread via fyne.Do.
func DefaultScheduler() Scheduler {
	return uiScheduler{}
}
