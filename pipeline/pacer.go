package pipeline

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces consecutive operations by a fixed interval using a token
// bucket with no bursting. It bounds outbound request rate to target sites
// and the inference backend without an explicit semaphore: the pipeline is
// sequential, so one global limiter is the whole story.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer enforcing at most one operation per interval.
// A non-positive interval disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		return &Pacer{}
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the pace allows the next operation.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.limiter == nil {
		return ctx.Err()
	}
	return p.limiter.Wait(ctx)
}
