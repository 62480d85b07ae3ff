package pipeline

import (
	"context"
	"time"
)

// Throttle spaces out vision calls by a fixed delay. The first call goes out immediately.
type Throttle struct {
	delay time.Duration
	sleep func(ctx context.Context, d time.Duration) error
	calls int
}

func NewThrottle(delay time.Duration) *Throttle {
	return &Throttle{delay: delay, sleep: sleepCtx}
}

// Wait blocks for the configured delay unless this is the first call.
func (t *Throttle) Wait(ctx context.Context) error {
	t.calls++
	if t.calls == 1 || t.delay <= 0 {
		return nil
	}
	return t.sleep(ctx, t.delay)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
