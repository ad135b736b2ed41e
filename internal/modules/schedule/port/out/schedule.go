package out

import (
	"context"

	"studyplan/internal/modules/schedule/domain"
)

type SlotStore interface {
	Load(ctx context.Context) ([]domain.Slot, error)
	Save(ctx context.Context, slots []domain.Slot) error
}
