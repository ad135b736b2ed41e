package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"studyplan/internal/platform/retry"
)

var errBusy = errors.New("busy")

func TestDoBacksOffExponentiallyOnRetryableErrors(t *testing.T) {
	t.Parallel()
	var waits []time.Duration
	policy := retry.Default(func(err error) bool { return errors.Is(err, errBusy) }).
		WithSleep(func(_ context.Context, d time.Duration) error {
			waits = append(waits, d)
			return nil
		})
	calls := 0
	err := policy.Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 4 {
			return errBusy
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success on fourth attempt, got %v", err)
	}
	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}
	if len(waits) != len(want) {
		t.Fatalf("expected %d waits, got %v", len(want), waits)
	}
	for i := range want {
		if waits[i] != want[i] {
			t.Fatalf("wait %d: expected %s, got %s", i, want[i], waits[i])
		}
	}
}

func TestDoGivesUpAfterRetriesAndSkipsPermanentErrors(t *testing.T) {
	t.Parallel()
	noWait := func(context.Context, time.Duration) error { return nil }
	policy := retry.Default(func(err error) bool { return errors.Is(err, errBusy) }).WithSleep(noWait)

	calls := 0
	err := policy.Do(context.Background(), func(context.Context) error {
		calls++
		return errBusy
	})
	if !errors.Is(err, errBusy) || calls != 4 {
		t.Fatalf("expected 4 attempts ending in busy, got %d attempts err=%v", calls, err)
	}

	calls = 0
	permanent := errors.New("bad request")
	err = policy.Do(context.Background(), func(context.Context) error {
		calls++
		return permanent
	})
	if !errors.Is(err, permanent) || calls != 1 {
		t.Fatalf("permanent error must not retry, got %d attempts", calls)
	}
}

func TestDoStopsWhenContextEnds(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	policy := retry.Policy{Retries: 3, Base: time.Hour, Retryable: func(error) bool { return true }}
	err := policy.Do(ctx, func(context.Context) error { return errBusy })
	if !errors.Is(err, context.Canceled) || !errors.Is(err, errBusy) {
		t.Fatalf("expected joined busy and canceled errors, got %v", err)
	}
}
