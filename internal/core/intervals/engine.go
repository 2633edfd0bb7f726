package intervals

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"roundtimer/internal/core/cue"
	"roundtimer/internal/core/model"
	"roundtimer/internal/core/observe"
)

// ErrClosed is returned by Start after Close.
var ErrClosed = errors.New("engine closed")

// Config contains runtime options for the Engine.
type Config struct {
	TickInterval time.Duration
	Policy       cue.Policy
	Logger       *slog.Logger
	// NewTicker replaces the wall clock ticker, mainly in tests.
	NewTicker func(time.Duration) Ticker
}

// Engine drives a Machine from a single ticker loop, owns the sound output
// of the running session and publishes state and cues.
type Engine struct {
	mu         sync.Mutex
	options    Config
	machine    *Machine
	sound      SoundProvider
	output     SoundOutput
	stopCh     chan struct{}
	generation uint64
	closed     bool
	states     *observe.Value[RunState]
	cues       *observe.Feed[cue.Event]
}

// New creates an idle Engine. sound may be nil for a silent engine.
func New(sound SoundProvider, options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = 100 * time.Millisecond
	}
	if options.Policy.Marks == nil {
		options.Policy = cue.DefaultPolicy()
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	if options.NewTicker == nil {
		options.NewTicker = newClockTicker
	}

	return &Engine{
		options: options,
		machine: NewMachine(options.Policy),
		sound:   sound,
		states:  observe.NewValue(idleState()),
		cues:    observe.NewFeed[cue.Event](),
	}
}

// States returns the state container. Every mutation is published to it.
func (engine *Engine) States() *observe.Value[RunState] {
	return engine.states
}

// Cues returns the feed of cues fired by the running session.
func (engine *Engine) Cues() *observe.Feed[cue.Event] {
	return engine.cues
}

// State returns the current state.
func (engine *Engine) State() RunState {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.machine.State()
}

// Start begins a new session. A running session is stopped first.
// ctx bounds the whole session: the sound acquisition and the countdown,
// which stops when ctx is done.
func (engine *Engine) Start(ctx context.Context, config model.IntervalConfig) error {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return ErrClosed
	}
	previous := engine.stopLocked()
	err := engine.machine.Start(config)
	if err == nil {
		engine.generation++
		engine.publishLocked()
	}
	generation := engine.generation
	engine.mu.Unlock()
	engine.release(previous)
	if err != nil {
		return err
	}

	output := engine.acquire(ctx)

	engine.mu.Lock()
	if engine.generation != generation || !engine.machine.State().Running {
		// Stopped or restarted while the sound output was being acquired.
		engine.mu.Unlock()
		engine.release(output)
		return nil
	}
	engine.output = output
	stopCh := make(chan struct{})
	engine.stopCh = stopCh
	engine.options.Logger.Info("session started",
		"rounds", config.Rounds,
		"work", config.Work,
		"rest", config.Rest)
	engine.mu.Unlock()

	go engine.run(ctx, stopCh)
	return nil
}

// Stop cancels the running session. It is a no-op when idle.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	output := engine.stopLocked()
	engine.mu.Unlock()
	engine.release(output)
}

// Close stops any session and closes the state and cue containers, which
// ends every subscription. Start fails afterwards.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.closed = true
	output := engine.stopLocked()
	engine.states.Close()
	engine.cues.Close()
	engine.mu.Unlock()
	engine.release(output)
}

func (engine *Engine) stopLocked() SoundOutput {
	if engine.stopCh != nil {
		close(engine.stopCh)
		engine.stopCh = nil
	}
	if engine.machine.Stop() {
		engine.options.Logger.Info("session stopped")
		engine.publishLocked()
	}
	output := engine.output
	engine.output = nil
	return output
}

func (engine *Engine) run(ctx context.Context, stopCh chan struct{}) {
	ticker := engine.options.NewTicker(engine.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ctx.Done():
			engine.cancel(stopCh, ctx.Err())
			return
		case <-ticker.C():
			if !engine.tick(stopCh) {
				return
			}
		}
	}
}

// cancel stops the session owned by stopCh, if it is still the current one.
func (engine *Engine) cancel(stopCh chan struct{}, cause error) {
	engine.mu.Lock()
	if engine.stopCh != stopCh {
		engine.mu.Unlock()
		return
	}
	engine.options.Logger.Info("session cancelled", "cause", cause)
	output := engine.stopLocked()
	engine.mu.Unlock()
	engine.release(output)
}

// tick advances the machine by one interval. It returns false once the
// loop owning stopCh should exit.
func (engine *Engine) tick(stopCh chan struct{}) bool {
	engine.mu.Lock()
	if engine.stopCh != stopCh {
		engine.mu.Unlock()
		return false
	}

	events := engine.machine.Advance(engine.options.TickInterval)
	for _, event := range events {
		engine.dispatchLocked(event)
	}
	engine.publishLocked()

	if engine.machine.State().Running {
		engine.mu.Unlock()
		return true
	}

	engine.options.Logger.Info("session finished")
	close(engine.stopCh)
	engine.stopCh = nil
	output := engine.output
	engine.output = nil
	engine.mu.Unlock()
	engine.release(output)
	return false
}

func (engine *Engine) dispatchLocked(event cue.Event) {
	engine.cues.Publish(event)
	engine.options.Logger.Debug("cue", "kind", event.Kind, "phase", event.Phase, "round", event.Round)
	if engine.output == nil {
		return
	}
	if err := engine.output.PlayCue(event.Kind); err != nil {
		engine.options.Logger.Error("play cue", "kind", event.Kind, "error", err)
	}
	if event.Kind == cue.RoundBoundary && event.Round > 1 {
		if err := engine.output.AnnounceRound(event.Round); err != nil {
			engine.options.Logger.Error("announce round", "round", event.Round, "error", err)
		}
	}
}

func (engine *Engine) publishLocked() {
	engine.states.Set(engine.machine.State())
}

func (engine *Engine) acquire(ctx context.Context) SoundOutput {
	if engine.sound == nil {
		return nil
	}
	output, err := engine.sound.Acquire(ctx)
	if err != nil {
		engine.options.Logger.Warn("sound unavailable, running silently", "error", err)
		return nil
	}
	return output
}

func (engine *Engine) release(output SoundOutput) {
	if output == nil {
		return
	}
	if err := output.Release(); err != nil {
		engine.options.Logger.Warn("release sound", "error", err)
	}
}
