package tray

import (
	"fmt"

	"roundtimer/internal/core/intervals"
	"roundtimer/resources"

	"fyne.io/fyne/v2"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnPreferences func()
	OnToggle      func()
	OnQuit        func()
}

// App is the part of desktop.App the tray needs.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Manager handles system tray state.
type Manager struct {
	app        App
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	callbacks  Callbacks
	running    bool
}

// New creates a tray manager with the provided callbacks.
func New(app App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: ready", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})

	manager.refreshMenu()
	manager.refreshIcon()
	return manager
}

// SetState updates the status label and toggle item from a session snapshot.
func (manager *Manager) SetState(state intervals.RunState) {
	running := !state.Idle()
	label := StatusLabel(state)
	if label == manager.statusItem.Label && running == manager.running {
		return
	}
	manager.statusItem.Label = label
	if running != manager.running {
		manager.running = running
		manager.refreshIcon()
	}
	if running {
		manager.toggleItem.Label = "Stop"
	} else {
		manager.toggleItem.Label = "Start"
	}
	manager.refreshMenu()
}

// StatusLabel renders the tray status line.
func StatusLabel(state intervals.RunState) string {
	if state.Idle() {
		return "Status: ready"
	}
	return fmt.Sprintf("Status: %s %d/%d", state.Phase.Title(), state.Round, state.TotalRounds)
}

func (manager *Manager) refreshIcon() {
	if manager.app == nil {
		return
	}
	if manager.running {
		manager.app.SetSystemTrayIcon(resources.MustIcon(resources.IconActive))
		return
	}
	manager.app.SetSystemTrayIcon(resources.MustIcon(resources.IconIdle))
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Round Timer",
		manager.statusItem,
		fyne.NewMenuItem("Show", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.toggleItem,
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
