// Package runview renders the countdown window of the desktop UI.
package runview

import (
	"context"
	"fmt"

	"roundtimer/internal/core/cue"
	"roundtimer/internal/core/intervals"
	"roundtimer/internal/core/model"
	"roundtimer/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines the window's action handlers.
type Callbacks struct {
	OnStart    func()
	OnStop     func()
	OnSettings func()
}

// Window manages the countdown UI.
type Window struct {
	window         fyne.Window
	palette        animation.Palette
	background     *canvas.Rectangle
	phaseLabel     *canvas.Text
	timerLabel     *canvas.Text
	roundLabel     *canvas.Text
	toggleButton   *widget.Button
	settingsButton *widget.Button
	engine         *animation.Engine
	callbacks      Callbacks
	state          intervals.RunState
	settings       model.Settings
}

// New creates the countdown window.
func New(app fyne.App, palette animation.Palette, flash animation.Config, callbacks Callbacks) *Window {
	window := app.NewWindow("Round Timer")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	background := canvas.NewRectangle(palette.PhaseColor(model.PhaseIdle))

	phaseLabel := canvas.NewText(model.PhaseIdle.Title(), palette.Text)
	phaseLabel.Alignment = fyne.TextAlignCenter
	phaseLabel.TextStyle = fyne.TextStyle{Bold: true}
	phaseLabel.TextSize = 28

	timerLabel := canvas.NewText("00:00", palette.Text)
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerLabel.TextSize = 72

	roundLabel := canvas.NewText("", palette.Text)
	roundLabel.Alignment = fyne.TextAlignCenter
	roundLabel.TextSize = 20

	toggleButton := widget.NewButton("Start", nil)
	settingsButton := widget.NewButton("Settings", nil)

	labels := container.NewVBox(layout.NewSpacer(), phaseLabel, timerLabel, roundLabel, layout.NewSpacer())
	buttons := container.NewHBox(layout.NewSpacer(), toggleButton, settingsButton, layout.NewSpacer())
	content := container.NewBorder(nil, container.NewPadded(buttons), nil, nil, labels)
	window.SetContent(container.NewStack(background, content))
	window.Resize(fyne.NewSize(360, 320))

	view := &Window{
		window:         window,
		palette:        palette,
		background:     background,
		phaseLabel:     phaseLabel,
		timerLabel:     timerLabel,
		roundLabel:     roundLabel,
		toggleButton:   toggleButton,
		settingsButton: settingsButton,
		callbacks:      callbacks,
		settings:       model.DefaultSettings(),
	}
	view.engine = animation.New(flash, func(on bool) {
		fyne.Do(func() {
			view.highlightUnsafe(on)
		})
	})

	toggleButton.OnTapped = view.handleToggle
	settingsButton.OnTapped = func() {
		if view.callbacks.OnSettings != nil {
			view.callbacks.OnSettings()
		}
	}
	view.applyStateUnsafe(view.state)

	return view
}

// Window returns the underlying fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// SetState renders a session snapshot.
func (view *Window) SetState(state intervals.RunState) {
	fyne.Do(func() {
		view.applyStateUnsafe(state)
	})
}

// SetSettings updates the values shown while idle.
func (view *Window) SetSettings(settings model.Settings) {
	fyne.Do(func() {
		view.settings = settings
		view.applyStateUnsafe(view.state)
	})
}

// Flash highlights the countdown for a cue.
func (view *Window) Flash(ctx context.Context, event cue.Event) {
	view.engine.Flash(ctx, event.Kind)
}

// Close stops the flash animation.
func (view *Window) Close() {
	view.engine.Stop()
}

func (view *Window) handleToggle() {
	if view.state.Idle() {
		if view.callbacks.OnStart != nil {
			view.callbacks.OnStart()
		}
		return
	}
	if view.callbacks.OnStop != nil {
		view.callbacks.OnStop()
	}
}

func (view *Window) applyStateUnsafe(state intervals.RunState) {
	view.state = state
	view.phaseLabel.Text = state.Phase.Title()
	if state.Idle() {
		view.phaseLabel.Text = model.PhaseIdle.Title()
		view.timerLabel.Text = model.FormatClock(view.settings.WorkSeconds)
		view.roundLabel.Text = fmt.Sprintf("%d rounds", view.settings.Rounds)
		view.toggleButton.SetText("Start")
		view.settingsButton.Enable()
	} else {
		view.timerLabel.Text = model.FormatClock(state.RemainingSeconds())
		view.roundLabel.Text = fmt.Sprintf("Round %d/%d", state.Round, state.TotalRounds)
		view.toggleButton.SetText("Stop")
		view.settingsButton.Disable()
	}
	view.background.FillColor = view.palette.PhaseColor(state.Phase)

	view.background.Refresh()
	view.phaseLabel.Refresh()
	view.timerLabel.Refresh()
	view.roundLabel.Refresh()
}

func (view *Window) highlightUnsafe(on bool) {
	if on {
		view.timerLabel.Color = view.palette.Highlight
	} else {
		view.timerLabel.Color = view.palette.Text
	}
	view.timerLabel.Refresh()
}
