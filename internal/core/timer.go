package core

import (
	"context"
	"time"
)

// Pacer spaces out rendered frames by a fixed delay.
type Pacer struct {
	delay time.Duration
}

// NewPacer constructs a Pacer. A non-positive delay disables waiting.
func NewPacer(delay time.Duration) *Pacer {
	if delay < 0 {
		delay = 0
	}
	return &Pacer{delay: delay}
}

// Delay reports the configured inter-frame delay.
func (p *Pacer) Delay() time.Duration { return p.delay }

// Wait blocks for one frame delay or until ctx is done, whichever comes
// first. It returns ctx.Err() on cancellation.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
