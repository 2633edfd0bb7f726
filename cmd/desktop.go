package main

import (
	"context"

	"roundtimer/internal/core/model"
	"roundtimer/internal/ui/animation"
	"roundtimer/internal/ui/preferences"
	"roundtimer/internal/ui/runview"
	"roundtimer/internal/ui/tray"
	"roundtimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
)

func runDesktop(ctx context.Context, env *environment) error {
	fyneApp := app.NewWithID("com.roundtimer.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconIdle))

	var prefsWindow *preferences.Window
	var view *runview.Window
	view = runview.New(fyneApp, animation.DefaultPalette(), animation.DefaultConfig(), runview.Callbacks{
		OnStart: func() {
			if err := env.start(ctx); err != nil {
				env.logger.Warn("start session", "error", err)
				dialog.ShowError(err, view.Window())
			}
		},
		OnStop: env.engine.Stop,
		OnSettings: func() {
			prefsWindow.Show()
		},
	})
	view.SetSettings(env.settings.Current())

	prefsWindow = preferences.New(fyneApp, env.settings.Current(), func(updated model.Settings) {
		if err := env.settings.Save(updated); err != nil {
			env.logger.Warn("save settings", "error", err)
			dialog.ShowError(err, view.Window())
			return
		}
		view.SetSettings(updated)
	})
	env.settings.OnExternalChange(func(updated model.Settings) {
		fyne.Do(func() {
			prefsWindow.UpdateSettings(updated)
		})
		view.SetSettings(updated)
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        view.Show,
			OnPreferences: prefsWindow.Show,
			OnToggle: func() {
				if !env.engine.State().Idle() {
					env.engine.Stop()
					return
				}
				if err := env.start(ctx); err != nil {
					env.logger.Warn("start session", "error", err)
					view.Show()
					dialog.ShowError(err, view.Window())
				}
			},
			OnQuit: fyneApp.Quit,
		})
		view.Window().SetCloseIntercept(func() {
			view.Window().Hide()
		})
	} else {
		env.logger.Info("system tray unsupported on this platform")
		view.Window().SetMaster()
	}

	states, cancelStates := env.engine.States().Subscribe()
	defer cancelStates()
	go func() {
		for state := range states {
			view.SetState(state)
			if trayManager != nil {
				fyne.Do(func() {
					trayManager.SetState(state)
				})
			}
		}
	}()

	cues, cancelCues := env.engine.Cues().Subscribe(8)
	defer cancelCues()
	go func() {
		for event := range cues {
			view.Flash(ctx, event)
		}
	}()

	go func() {
		<-ctx.Done()
		fyne.Do(fyneApp.Quit)
	}()

	view.Show()
	fyneApp.Run()
	env.engine.Close()
	view.Close()
	return nil
}
