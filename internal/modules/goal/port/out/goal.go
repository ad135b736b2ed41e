package out

import (
	"context"

	"studyplan/internal/modules/goal/domain"
)

type GoalStore interface {
	Load(ctx context.Context) ([]domain.Goal, error)
	Save(ctx context.Context, goals []domain.Goal) error
}
