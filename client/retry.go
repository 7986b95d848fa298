package client

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// retryPolicy bounds transient-failure retries. It applies to read-only
// GETs only: mutating commands must reach the service at most once per
// invocation, so they are never resubmitted here.
type retryPolicy struct {
	enabled      bool
	maxRetries   uint64
	initialDelay time.Duration
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{enabled: true, maxRetries: 3, initialDelay: 100 * time.Millisecond}
}

// run executes op, retrying with exponential backoff while op keeps
// returning transient errors. Any other error stops immediately.
func (p retryPolicy) run(ctx context.Context, op func() error) error {
	if !p.enabled {
		return op()
	}
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.initialDelay
	wrapped := func() error {
		err := op()
		if err != nil && !IsTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	return backoff.Retry(wrapped, backoff.WithContext(backoff.WithMaxRetries(bo, p.maxRetries), ctx))
}
