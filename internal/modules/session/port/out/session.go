package out

import (
	"context"

	"studyplan/internal/modules/session/domain"
)

// SessionStore persists the whole session array at once.
type SessionStore interface {
	Load(ctx context.Context) ([]domain.Session, error)
	Save(ctx context.Context, sessions []domain.Session) error
}

type ActiveTimerStore interface {
	SaveActive(ctx context.Context, timer domain.ActiveTimer) error
	LoadActive(ctx context.Context) (domain.ActiveTimer, error)
	ClearActive(ctx context.Context) error
}
