// Package term is the terminal front end built on bubbletea.
package term

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"roundtimer/internal/core/cue"
	"roundtimer/internal/core/intervals"
	"roundtimer/internal/core/model"
	"roundtimer/internal/core/observe"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	secondsStep   = 5
	flashDuration = 150 * time.Millisecond
	maxBarWidth   = 48
)

// Controller is the part of the interval engine the terminal UI drives.
type Controller interface {
	Start(ctx context.Context, config model.IntervalConfig) error
	Stop()
	State() intervals.RunState
	States() *observe.Value[intervals.RunState]
	Cues() *observe.Feed[cue.Event]
}

// Options configures the terminal model.
type Options struct {
	Prepare time.Duration
	Theme   Theme
	Logger  *slog.Logger
	// OnSettings persists and applies edited settings.
	OnSettings func(model.Settings) error
}

type stateMsg intervals.RunState

type cueMsg cue.Event

type flashDoneMsg struct {
	seq int
}

type settingsMsg model.Settings

// SettingsChanged returns a message that replaces the displayed settings
// without persisting them again.
func SettingsChanged(settings model.Settings) tea.Msg {
	return settingsMsg(settings)
}

// Model is the bubbletea model of the timer screen.
type Model struct {
	ctx      context.Context
	engine   Controller
	options  Options
	settings model.Settings
	active   model.IntervalConfig
	state    intervals.RunState
	states   <-chan intervals.RunState
	cues     <-chan cue.Event
	cancel   []func()
	keys     keyMap
	help     help.Model
	progress progress.Model
	flashing bool
	flashSeq int
	err      error
}

// New creates the terminal model and subscribes it to the engine.
func New(ctx context.Context, engine Controller, settings model.Settings, options Options) Model {
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	if options.Theme.Phases == nil {
		options.Theme = ThemeByName("default")
	}
	if options.Prepare <= 0 {
		options.Prepare = model.DefaultPrepare
	}

	states, cancelStates := engine.States().Subscribe()
	cues, cancelCues := engine.Cues().Subscribe(8)

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = maxBarWidth

	m := Model{
		ctx:      ctx,
		engine:   engine,
		options:  options,
		settings: settings,
		state:    engine.State(),
		states:   states,
		cues:     cues,
		cancel:   []func(){cancelStates, cancelCues},
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: bar,
	}
	m.keys.setEditable(m.state.Idle())
	return m
}

// Close drops the engine subscriptions.
func (m Model) Close() {
	for _, cancel := range m.cancel {
		cancel()
	}
}

// Settings returns the current settings.
func (m Model) Settings() model.Settings {
	return m.settings
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForState(m.states), waitForCue(m.cues))
}

func waitForState(states <-chan intervals.RunState) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-states
		if !ok {
			return nil
		}
		return stateMsg(state)
	}
}

func waitForCue(cues <-chan cue.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-cues
		if !ok {
			return nil
		}
		return cueMsg(event)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.setState(intervals.RunState(msg))
		return m, waitForState(m.states)
	case cueMsg:
		m.flashing = true
		m.flashSeq++
		seq := m.flashSeq
		return m, tea.Batch(waitForCue(m.cues), tea.Tick(flashDuration, func(time.Time) tea.Msg {
			return flashDoneMsg{seq: seq}
		}))
	case settingsMsg:
		m.settings = model.Settings(msg)
		return m, nil
	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flashing = false
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.progress.Width = min(maxBarWidth, max(msg.Width-8, 10))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.engine.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Toggle):
		m.toggle()
	case key.Matches(msg, m.keys.Mute):
		settings := m.settings
		settings.Muted = !settings.Muted
		m.applySettings(settings)
	case key.Matches(msg, m.keys.RoundsUp):
		m.adjust(func(settings *model.Settings) { settings.Rounds++ })
	case key.Matches(msg, m.keys.RoundsDown):
		m.adjust(func(settings *model.Settings) { settings.Rounds = max(settings.Rounds-1, 0) })
	case key.Matches(msg, m.keys.WorkUp):
		m.adjust(func(settings *model.Settings) { settings.WorkSeconds += secondsStep })
	case key.Matches(msg, m.keys.WorkDown):
		m.adjust(func(settings *model.Settings) { settings.WorkSeconds = max(settings.WorkSeconds-secondsStep, 0) })
	case key.Matches(msg, m.keys.RestUp):
		m.adjust(func(settings *model.Settings) { settings.RestSeconds += secondsStep })
	case key.Matches(msg, m.keys.RestDown):
		m.adjust(func(settings *model.Settings) { settings.RestSeconds = max(settings.RestSeconds-secondsStep, 0) })
	}
	return m, nil
}

func (m *Model) toggle() {
	m.err = nil
	if !m.state.Idle() {
		m.engine.Stop()
		m.setState(m.engine.State())
		return
	}
	config := m.settings.IntervalConfig(m.options.Prepare)
	if err := m.engine.Start(m.ctx, config); err != nil {
		m.err = err
		m.options.Logger.Warn("start session", "error", err)
		return
	}
	m.active = config
	m.setState(m.engine.State())
}

func (m *Model) adjust(edit func(*model.Settings)) {
	settings := m.settings
	edit(&settings)
	m.applySettings(settings)
}

func (m *Model) applySettings(settings model.Settings) {
	if settings == m.settings {
		return
	}
	m.settings = settings
	m.err = nil
	if m.options.OnSettings == nil {
		return
	}
	if err := m.options.OnSettings(settings); err != nil {
		m.err = fmt.Errorf("save settings: %w", err)
		m.options.Logger.Warn("save settings", "error", err)
	}
}

func (m *Model) setState(state intervals.RunState) {
	m.state = state
	m.keys.setEditable(state.Idle())
	if state.Idle() {
		m.flashing = false
	}
}

func (m Model) View() string {
	theme := m.options.Theme
	var b strings.Builder

	b.WriteString(theme.Header.Render("ROUND TIMER"))
	b.WriteString("\n\n")

	phase := m.state.Phase
	if m.state.Idle() {
		phase = model.PhaseIdle
	}
	b.WriteString(theme.phase(phase).Render(strings.ToUpper(phase.Title())))
	b.WriteString("  ")

	timerStyle := theme.Timer
	if m.flashing {
		timerStyle = theme.Flash
	}
	if m.state.Idle() {
		b.WriteString(timerStyle.Render(model.FormatClock(m.settings.WorkSeconds)))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("%d rounds · work %ds · rest %ds", m.settings.Rounds, m.settings.WorkSeconds, m.settings.RestSeconds))
	} else {
		b.WriteString(timerStyle.Render(model.FormatClock(m.state.RemainingSeconds())))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Round %d/%d", m.state.Round, m.state.TotalRounds))
		b.WriteString("\n")
		b.WriteString(m.progress.ViewAs(m.phaseProgress()))
	}
	if m.settings.Muted {
		b.WriteString("\n")
		b.WriteString(theme.Dim.Render("muted"))
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(theme.Error.Render(m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return theme.Base.Render(b.String())
}

// phaseProgress is the elapsed fraction of the current phase.
func (m Model) phaseProgress() float64 {
	total := m.active.Duration(m.state.Phase)
	if total <= 0 {
		return 1
	}
	elapsed := total - m.state.Remaining
	return min(max(float64(elapsed)/float64(total), 0), 1)
}
