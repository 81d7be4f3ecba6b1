package stopwatch

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// wait blocks for d on clock or until ctx is done, returning ctx.Err() in
// the latter case. The timer is stopped on return, so a cancelled wait
// leaves no pending timer behind on a fake clock.
func wait(ctx context.Context, clock clockwork.Clock, d time.Duration) error {
	timer := clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.Chan():
		return nil
	}
}
