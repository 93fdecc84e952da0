// Package retry bounds the automatic retry of transient storage failures.
// Only errors classified as errs.ErrStorageUnavailable (deadlocks,
// serialization conflicts) are retried; every other error is surfaced on the
// first attempt. The retry budget is small and fixed so a struggling database
// fails fast instead of piling up work.
package retry

import (
	"context"
	"errors"
	"time"

	"logistics/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// maxRetries is the number of re-attempts after the initial try.
const maxRetries = 3

// initialInterval is the first backoff delay; subsequent delays grow
// exponentially with the backoff package's default multiplier.
const initialInterval = 50 * time.Millisecond

// Transient runs op, retrying up to maxRetries times with exponential backoff
// while it keeps failing with errs.ErrStorageUnavailable. Any other error
// aborts immediately and is returned as-is. Context cancellation stops the
// retry loop.
func Transient(ctx context.Context, op func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = initialInterval

	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if errors.Is(err, errs.ErrStorageUnavailable) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(backoff.WithMaxRetries(policy, maxRetries), ctx))
}
