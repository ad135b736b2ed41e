package in

import (
	"context"

	"studyplan/internal/modules/schedule/dto"
)

type Usecase interface {
	AddSlot(ctx context.Context, input dto.AddSlotInput) (dto.SlotOutput, error)
	ToggleSlot(ctx context.Context, id string) (dto.SlotOutput, error)
	DeleteSlot(ctx context.Context, id string) error
	ListSlots(ctx context.Context, input dto.ListSlotsInput) ([]dto.SlotOutput, error)
}
