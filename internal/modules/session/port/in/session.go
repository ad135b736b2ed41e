package in

import (
	"context"
	"time"

	"studyplan/internal/modules/session/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.TimerOutput, error)
	Pause(ctx context.Context) (dto.TimerOutput, error)
	Resume(ctx context.Context) (dto.TimerOutput, error)
	Annotate(ctx context.Context, input dto.AnnotateInput) (dto.TimerOutput, error)
	Stop(ctx context.Context, input dto.StopInput) (dto.SessionOutput, error)
	Discard(ctx context.Context) error
	Status(ctx context.Context) (dto.TimerOutput, error)
	Watch(ctx context.Context, interval time.Duration) (<-chan dto.TimerOutput, error)

	Log(ctx context.Context, input dto.LogInput) (dto.SessionOutput, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]dto.SessionOutput, error)
	History(ctx context.Context, limit int) ([]dto.HistoryEntry, error)
}
