package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"studyplan/internal/modules/session/domain"
	sessionout "studyplan/internal/modules/session/port/out"
	apperrors "studyplan/internal/platform/errors"
)

// FileActiveTimerStore keeps the running timer in a JSON file so start, pause
// and stop can be issued from separate processes. A file that cannot be
// decoded is logged and reads as no timer; the next save or clear replaces it.
type FileActiveTimerStore struct {
	path   string
	logger *zap.Logger
}

func NewFileActiveTimerStore(path string, logger *zap.Logger) sessionout.ActiveTimerStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileActiveTimerStore{path: path, logger: logger}
}

func (s *FileActiveTimerStore) SaveActive(_ context.Context, timer domain.ActiveTimer) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create active timer dir: %w", err)
	}
	payload, err := json.MarshalIndent(timer, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal active timer: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write active timer: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace active timer: %w", err)
	}
	return nil
}

func (s *FileActiveTimerStore) LoadActive(_ context.Context) (domain.ActiveTimer, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ActiveTimer{}, apperrors.ErrNoActiveTimer
		}
		return domain.ActiveTimer{}, fmt.Errorf("read active timer: %w", err)
	}
	timer := domain.ActiveTimer{}
	if err := json.Unmarshal(payload, &timer); err != nil {
		s.logger.Warn("active timer file is unreadable, treating as no timer", zap.String("path", s.path), zap.Error(err))
		return domain.ActiveTimer{}, apperrors.ErrNoActiveTimer
	}
	if timer.ID == "" {
		return domain.ActiveTimer{}, apperrors.ErrNoActiveTimer
	}
	return timer, nil
}

func (s *FileActiveTimerStore) ClearActive(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear active timer: %w", err)
	}
	return nil
}
