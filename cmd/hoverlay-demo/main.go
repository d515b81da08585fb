// Command hoverlay-demo is a small gallery window exercising the popover
// and tooltip widgets: an uncontrolled press popover, a button-driven
// controlled popover, a long-press popover and a hover tooltip.
package main

import (
	"log/slog"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/hoverlay"
	"github.com/shhac/hoverlay/interaction"
)

func main() {
	logger := newLogger()
	logger.Info("starting hoverlay demo")

	fyneApp := app.NewWithID("com.shhac.hoverlay.demo")
	window := fyneApp.NewWindow("hoverlay demo")

	pressPop := hoverlay.NewPopover(
		widget.NewLabel("Press me"),
		container.NewVBox(
			widget.NewLabel("An uncontrolled popover."),
			widget.NewEntry(),
		),
		hoverlay.WithLogger(logger),
		hoverlay.WithAutoFocus(true),
		hoverlay.WithRestoreFocus(true),
	)

	// Controlled popover: the button owns the open boolean and accepts
	// every change request (escape, outside press) by writing it back.
	var controlled *hoverlay.Popover
	toggle := widget.NewButton("Toggle popover", func() {
		controlled.SetOpen(!controlled.IsOpen())
	})
	controlled = hoverlay.NewPopover(
		toggle,
		widget.NewLabel("A controlled popover."),
		hoverlay.WithOpen(false),
		hoverlay.WithOnOpenChange(func(open bool) { controlled.SetOpen(open) }),
		hoverlay.WithPlacement(hoverlay.PlacementRight),
		hoverlay.WithLogger(logger),
	)

	longPressPop := hoverlay.NewPopover(
		widget.NewLabel("Long-press me"),
		widget.NewLabel("Opened by a long press."),
		hoverlay.WithTrigger(interaction.TriggerLongPress),
		hoverlay.WithLogger(logger),
	)

	tip := hoverlay.NewTooltip(
		widget.NewLabel("Hover me"),
		"Tooltips follow hover and focus.",
		hoverlay.WithAnimated(true),
		hoverlay.WithLogger(logger),
	)

	window.SetContent(container.NewVBox(pressPop, controlled, longPressPop, tip))
	window.Resize(fyne.NewSize(480, 360))
	window.ShowAndRun()
}

// newLogger builds a stderr text logger; HOVERLAY_DEBUG=1 enables debug
// level so the widgets' open/close/dismiss lines show up.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if v := os.Getenv("HOVERLAY_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil && debug {
			level = slog.LevelDebug
		}
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
