package checker

import (
	"context"
	"time"
)

// Pacer spaces out consecutive calls to VIES. Wait is invoked after a call
// that got an answer from the service and blocks the caller.
type Pacer interface {
	Wait(ctx context.Context)
}

// DefaultRequestDelay keeps a sequential caller at roughly 60 calls a minute.
const DefaultRequestDelay = time.Second

// FixedDelay pauses for a constant duration. Non-positive values disable it.
type FixedDelay time.Duration

// Wait sleeps for the configured delay or until ctx is done.
func (d FixedDelay) Wait(ctx context.Context) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(time.Duration(d))
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
