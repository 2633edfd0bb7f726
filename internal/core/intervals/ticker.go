package intervals

import "time"

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type clockTicker struct {
	ticker *time.Ticker
}

func newClockTicker(interval time.Duration) Ticker {
	return clockTicker{ticker: time.NewTicker(interval)}
}

func (ticker clockTicker) C() <-chan time.Time {
	return ticker.ticker.C
}

func (ticker clockTicker) Stop() {
	ticker.ticker.Stop()
}
