package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"studyplan/internal/platform/logging"
)

// Collection stores a whole array of T as one JSON document under a key.
// Every save replaces the array.
type Collection[T any] struct {
	store  *Store
	key    string
	logger *zap.Logger
}

func NewCollection[T any](store *Store, key string, logger *zap.Logger) *Collection[T] {
	return &Collection[T]{store: store, key: key, logger: logging.OrNop(logger)}
}

func (c *Collection[T]) Key() string { return c.key }

// Load returns the stored array. A missing key is an empty array; a value
// that no longer decodes is logged and read as empty so the planner keeps
// working on fresh data.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		c.logger.Warn("discarding undecodable collection", zap.String("key", c.key), zap.Error(err))
		return []T{}, nil
	}
	return items, nil
}

func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	return c.store.Set(ctx, c.key, raw)
}
