package in

import (
	"context"

	"studyplan/internal/modules/remote/dto"
)

type Usecase interface {
	Push(ctx context.Context) ([]dto.SyncResult, error)
	Pull(ctx context.Context) ([]dto.SyncResult, error)
	Status(ctx context.Context) (dto.Status, error)
}
