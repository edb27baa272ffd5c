// Package simulated provides stand-in implementations of the external
// career-tool services. Each one waits a fixed delay and returns a
// canned result, matching the latency and shape a real provider would
// have without any network dependency.
package simulated

import (
	"context"
	"time"
)

// wait blocks for d or until ctx is cancelled.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
