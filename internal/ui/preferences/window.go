package preferences

import (
	"strconv"

	"roundtimer/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings model.Settings
	onSave   func(model.Settings)
	rounds   *widget.Entry
	work     *widget.Entry
	rest     *widget.Entry
	muted    *widget.Check
	announce *widget.Check
	cancel   *widget.Button
}

// New creates a preferences window.
func New(app fyne.App, settings model.Settings, onSave func(model.Settings)) *Window {
	window := app.NewWindow("Round Timer Settings")

	rounds := widget.NewEntry()
	work := widget.NewEntry()
	rest := widget.NewEntry()

	muted := widget.NewCheck("Mute whistles", nil)
	announce := widget.NewCheck("Announce rounds", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Session", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Rounds"), rounds),
		container.NewHBox(widget.NewLabel("Work"), work, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Rest"), rest, widget.NewLabel("sec")),
		widget.NewLabelWithStyle("Sound", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		muted,
		announce,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(320, 300))

	prefs := &Window{
		window:   window,
		onSave:   onSave,
		rounds:   rounds,
		work:     work,
		rest:     rest,
		muted:    muted,
		announce: announce,
		cancel:   cancelButton,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		window.Hide()
		prefs.UpdateSettings(prefs.settings)
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	prefs.rounds.SetText(strconv.Itoa(settings.Rounds))
	prefs.work.SetText(strconv.Itoa(settings.WorkSeconds))
	prefs.rest.SetText(strconv.Itoa(settings.RestSeconds))
	prefs.muted.SetChecked(settings.Muted)
	prefs.announce.SetChecked(settings.AnnounceRounds)
}

// Invalid entries keep their previous value.
func (prefs *Window) handleSave() {
	settings := prefs.settings

	if rounds, ok := parseNonNegativeInt(prefs.rounds.Text); ok {
		settings.Rounds = rounds
	}
	if seconds, ok := parseNonNegativeInt(prefs.work.Text); ok {
		settings.WorkSeconds = seconds
	}
	if seconds, ok := parseNonNegativeInt(prefs.rest.Text); ok {
		settings.RestSeconds = seconds
	}
	settings.Muted = prefs.muted.Checked
	settings.AnnounceRounds = prefs.announce.Checked

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parseNonNegativeInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, false
	}
	return parsed, true
}
