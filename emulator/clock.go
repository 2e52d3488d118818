package emulator

import (
	"context"
	"time"
)

// Clock paces the emulator.
type Clock interface {
	// Wait blocks until the next tick is due, or the context is done.
	Wait(ctx context.Context) error
}

// FreeRun is a clock that never waits.
type FreeRun struct{}

func (FreeRun) Wait(ctx context.Context) error {
	return ctx.Err()
}

// Ticker is a clock with a fixed period.
type Ticker struct {
	ticker *time.Ticker
}

// NewTicker creates a clock ticking hz times a second.
// Rates above 1GHz tick once a nanosecond.
func NewTicker(hz int) (clk *Ticker) {
	period := max(time.Second/time.Duration(max(hz, 1)), time.Nanosecond)

	clk = &Ticker{
		ticker: time.NewTicker(period),
	}

	return
}

func (clk *Ticker) Wait(ctx context.Context) (err error) {
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case <-clk.ticker.C:
	}

	return
}

// Stop releases the ticker.
func (clk *Ticker) Stop() {
	clk.ticker.Stop()
}
