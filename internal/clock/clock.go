// Package clock produces frame deltas at a steady rate for windows that do
// not have their own render loop.
package clock

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

type Driver struct {
	limiter *rate.Limiter
	now     func() time.Time
}

func New(fps int) *Driver {
	if fps <= 0 {
		fps = 1
	}

	return &Driver{limiter: rate.NewLimiter(rate.Limit(fps), 1), now: time.Now}
}

// Run calls fn once per frame with the seconds elapsed since the previous
// frame until ctx is done.
func (d *Driver) Run(ctx context.Context, fn func(dt float64)) error {
	last := d.now()
	for {
		// Wait fails only when ctx ends or its deadline is too close.
		if err := d.limiter.Wait(ctx); err != nil {
			return nil
		}

		now := d.now()
		fn(now.Sub(last).Seconds())
		last = now
	}
}
