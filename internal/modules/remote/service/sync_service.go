package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	remoteout "studyplan/internal/modules/remote/port/out"
	apperrors "studyplan/internal/platform/errors"
	"studyplan/internal/platform/logging"
)

// Count is the outcome of moving one collection.
type Count struct {
	Name    string
	Records int
}

type CollectionCounts struct {
	Name   string
	Local  int
	Remote int
	Err    error
}

type SyncService struct {
	collections []remoteout.Collection
	logger      *zap.Logger
}

func NewSyncService(collections []remoteout.Collection, logger *zap.Logger) *SyncService {
	return &SyncService{collections: collections, logger: logging.OrNop(logger)}
}

// Enabled reports whether any collection has a remote copy.
func (s *SyncService) Enabled() bool {
	for _, c := range s.collections {
		if c.RemoteEnabled() {
			return true
		}
	}
	return false
}

func (s *SyncService) Push(ctx context.Context) ([]Count, error) {
	return s.each(ctx, "push", remoteout.Collection.Push)
}

func (s *SyncService) Pull(ctx context.Context) ([]Count, error) {
	return s.each(ctx, "pull", remoteout.Collection.Pull)
}

// each runs op on every collection concurrently. Results keep the
// collection order; the first failure cancels the rest.
func (s *SyncService) each(ctx context.Context, verb string, op func(remoteout.Collection, context.Context) (int, error)) ([]Count, error) {
	if !s.Enabled() {
		return nil, apperrors.ErrRemoteDisabled
	}
	out := make([]Count, len(s.collections))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range s.collections {
		i, c := i, c
		g.Go(func() error {
			n, err := op(c, gctx)
			if err != nil {
				return err
			}
			out[i] = Count{Name: c.Name(), Records: n}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn("sync failed", zap.String("op", verb), zap.Error(err))
		return nil, err
	}
	s.logger.Info("sync finished", zap.String("op", verb), zap.Int("collections", len(out)))
	return out, nil
}

// Counts reports per-collection record counts. A failing remote is recorded
// on its entry instead of failing the whole report.
func (s *SyncService) Counts(ctx context.Context) []CollectionCounts {
	out := make([]CollectionCounts, len(s.collections))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range s.collections {
		i, c := i, c
		g.Go(func() error {
			local, remote, err := c.Counts(gctx)
			out[i] = CollectionCounts{Name: c.Name(), Local: local, Remote: remote, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return out
}
