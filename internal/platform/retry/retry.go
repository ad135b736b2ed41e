package retry

import (
	"context"
	"errors"
	"time"
)

// Policy is a fixed exponential backoff: Base, 2*Base, 4*Base, ... for at
// most Retries extra attempts.
type Policy struct {
	Retries   int
	Base      time.Duration
	Retryable func(error) bool
	sleep     func(context.Context, time.Duration) error
}

// Default matches the rate-limit backoff of the planner: 1s, 2s, 4s.
func Default(retryable func(error) bool) Policy {
	return Policy{Retries: 3, Base: time.Second, Retryable: retryable}
}

// WithSleep replaces the wait function, used by tests to avoid real delays.
func (p Policy) WithSleep(sleep func(context.Context, time.Duration) error) Policy {
	p.sleep = sleep
	return p
}

func (p Policy) Do(ctx context.Context, fn func(context.Context) error) error {
	sleep := p.sleep
	if sleep == nil {
		sleep = wait
	}
	var err error
	for attempt := 0; ; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if attempt >= p.Retries || p.Retryable == nil || !p.Retryable(err) {
			return err
		}
		if sleepErr := sleep(ctx, p.Base<<attempt); sleepErr != nil {
			return errors.Join(err, sleepErr)
		}
	}
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
