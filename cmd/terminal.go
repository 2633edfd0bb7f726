package main

import (
	"context"
	"errors"

	"roundtimer/internal/core/model"
	"roundtimer/internal/ui/term"

	tea "github.com/charmbracelet/bubbletea"
)

func runTerminal(ctx context.Context, env *environment) error {
	timer := term.New(ctx, env.engine, env.settings.Current(), term.Options{
		Prepare:    env.cfg.Prepare,
		Theme:      term.ThemeByName(env.cfg.Theme),
		Logger:     env.logger.With("component", "tui"),
		OnSettings: env.settings.Save,
	})
	defer timer.Close()

	program := tea.NewProgram(timer, tea.WithAltScreen(), tea.WithContext(ctx))
	env.settings.OnExternalChange(func(updated model.Settings) {
		program.Send(term.SettingsChanged(updated))
	})

	_, err := program.Run()
	env.engine.Close()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
