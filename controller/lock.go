package controller

import (
	"context"
	"errors"
	"time"
)

// How long a mutating request will wait for its turn before giving up.
const commitLockWait = 5 * time.Second

// acquireCommitLock takes the process-wide writer lock with a bounded wait.
// The returned release function must be called on every path out of the
// critical section.
func (c *controller) acquireCommitLock(ctx context.Context) (func(), error) {
	select {
	case c.commitLock <- struct{}{}:
		return func() { <-c.commitLock }, nil
	case <-c.clock.After(commitLockWait):
		return nil, errors.New("timed out waiting for the commit lock")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
