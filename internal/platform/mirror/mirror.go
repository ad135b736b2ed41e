// Package mirror keeps a local collection and an optional remote copy of it
// in step. Saves go local first, then remote; loads prefer the remote copy
// and fall back to the local cache.
package mirror

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"studyplan/internal/platform/logging"
	"studyplan/internal/platform/retry"
	"studyplan/internal/platform/sqldb"
)

// Store is a whole-array collection.
type Store[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, items []T) error
}

type Mirrored[T any] struct {
	name   string
	local  Store[T]
	remote Store[T]
	policy retry.Policy
	logger *zap.Logger
}

// New wraps local. A nil remote makes the mirror a pass-through.
func New[T any](name string, local, remote Store[T], logger *zap.Logger) *Mirrored[T] {
	return &Mirrored[T]{
		name:   name,
		local:  local,
		remote: remote,
		policy: retry.Default(sqldb.Transient),
		logger: logging.OrNop(logger).With(zap.String("collection", name)),
	}
}

// WithPolicy swaps the remote retry policy.
func (m *Mirrored[T]) WithPolicy(policy retry.Policy) *Mirrored[T] {
	m.policy = policy
	return m
}

func (m *Mirrored[T]) Name() string { return m.name }

func (m *Mirrored[T]) RemoteEnabled() bool { return m.remote != nil }

func (m *Mirrored[T]) Load(ctx context.Context) ([]T, error) {
	if m.remote == nil {
		return m.local.Load(ctx)
	}
	remote, err := m.loadRemote(ctx)
	if err != nil {
		m.logger.Warn("remote load failed, using local cache", zap.Error(err))
		return m.local.Load(ctx)
	}
	if len(remote) == 0 {
		// An empty remote copy never hides local data that was not pushed yet.
		local, err := m.local.Load(ctx)
		if err != nil {
			return nil, err
		}
		if len(local) > 0 {
			return local, nil
		}
		return remote, nil
	}
	if err := m.local.Save(ctx, remote); err != nil {
		m.logger.Warn("refresh local cache failed", zap.Error(err))
	}
	return remote, nil
}

func (m *Mirrored[T]) Save(ctx context.Context, items []T) error {
	if err := m.local.Save(ctx, items); err != nil {
		return err
	}
	if m.remote == nil {
		return nil
	}
	if err := m.saveRemote(ctx, items); err != nil {
		m.logger.Warn("remote save failed, local copy kept", zap.Int("records", len(items)), zap.Error(err))
	}
	return nil
}

// Push replaces the remote copy with the local collection.
func (m *Mirrored[T]) Push(ctx context.Context) (int, error) {
	if m.remote == nil {
		return 0, fmt.Errorf("push %s: remote is not configured", m.name)
	}
	items, err := m.local.Load(ctx)
	if err != nil {
		return 0, err
	}
	if err := m.saveRemote(ctx, items); err != nil {
		return 0, fmt.Errorf("push %s: %w", m.name, err)
	}
	m.logger.Debug("pushed collection", zap.Int("records", len(items)))
	return len(items), nil
}

// Pull replaces the local collection with the remote copy.
func (m *Mirrored[T]) Pull(ctx context.Context) (int, error) {
	if m.remote == nil {
		return 0, fmt.Errorf("pull %s: remote is not configured", m.name)
	}
	items, err := m.loadRemote(ctx)
	if err != nil {
		return 0, fmt.Errorf("pull %s: %w", m.name, err)
	}
	if err := m.local.Save(ctx, items); err != nil {
		return 0, err
	}
	m.logger.Debug("pulled collection", zap.Int("records", len(items)))
	return len(items), nil
}

// Counts reports local and remote record counts.
func (m *Mirrored[T]) Counts(ctx context.Context) (local, remote int, err error) {
	localItems, err := m.local.Load(ctx)
	if err != nil {
		return 0, 0, err
	}
	if m.remote == nil {
		return len(localItems), 0, nil
	}
	remoteItems, err := m.loadRemote(ctx)
	if err != nil {
		return len(localItems), 0, fmt.Errorf("count %s: %w", m.name, err)
	}
	return len(localItems), len(remoteItems), nil
}

func (m *Mirrored[T]) loadRemote(ctx context.Context) ([]T, error) {
	var items []T
	err := m.policy.Do(ctx, func(ctx context.Context) error {
		var err error
		items, err = m.remote.Load(ctx)
		return err
	})
	return items, err
}

func (m *Mirrored[T]) saveRemote(ctx context.Context, items []T) error {
	return m.policy.Do(ctx, func(ctx context.Context) error {
		return m.remote.Save(ctx, items)
	})
}
