// Package animation flashes the countdown display when cues fire.
package animation

import (
	"context"
	"sync"
	"time"

	"roundtimer/internal/core/cue"
)

// Config contains flash timing values.
type Config struct {
	FlashOn  time.Duration
	FlashOff time.Duration
	// Pulses is the number of flashes per cue kind; missing kinds do not
	// flash.
	Pulses map[cue.Kind]int
}

// Engine runs one flash sequence at a time.
type Engine struct {
	mu        sync.Mutex
	config    Config
	highlight func(bool)
	cancel    context.CancelFunc
	done      chan struct{}
}

// New creates a new animation engine. highlight is called with true when
// the display should light up and false when it returns to normal.
func New(config Config, highlight func(bool)) *Engine {
	return &Engine{
		config:    config,
		highlight: highlight,
	}
}

// Flash starts the sequence for kind, replacing any running one.
func (engine *Engine) Flash(ctx context.Context, kind cue.Kind) {
	pulses := engine.config.Pulses[kind]
	if pulses <= 0 {
		return
	}
	engine.start(ctx, func(runCtx context.Context) {
		defer engine.highlight(false)
		for i := 0; i < pulses; i++ {
			engine.highlight(true)
			if !sleepWithContext(runCtx, engine.config.FlashOn) {
				return
			}
			engine.highlight(false)
			if !sleepWithContext(runCtx, engine.config.FlashOff) {
				return
			}
		}
	})
}

// Stop terminates any active animation and waits for it to reset the
// display.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	cancel, done := engine.cancel, engine.done
	engine.cancel, engine.done = nil, nil
	engine.mu.Unlock()
	if cancel != nil {
		cancel()
		<-done
	}
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.Stop()

	runCtx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	engine.mu.Lock()
	engine.cancel = cancel
	engine.done = done
	engine.mu.Unlock()

	go func() {
		defer close(done)
		run(runCtx)
	}()
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
