package usecase

import (
	"context"
	"fmt"

	"studyplan/internal/modules/schedule/domain"
	"studyplan/internal/modules/schedule/dto"
	schedulein "studyplan/internal/modules/schedule/port/in"
	"studyplan/internal/modules/schedule/service"
	subjectin "studyplan/internal/modules/subject/port/in"
	apperrors "studyplan/internal/platform/errors"
)

type Interactor struct {
	svc      *service.ScheduleService
	subjects subjectin.Usecase
}

// NewInteractor wires the schedule usecase. When subjects is set, new slots
// must reference an existing subject.
func NewInteractor(svc *service.ScheduleService, subjects subjectin.Usecase) schedulein.Usecase {
	return &Interactor{svc: svc, subjects: subjects}
}

func (i *Interactor) AddSlot(ctx context.Context, input dto.AddSlotInput) (dto.SlotOutput, error) {
	if i.subjects != nil && input.SubjectID != "" {
		if _, err := i.subjects.GetSubject(ctx, input.SubjectID); err != nil {
			return dto.SlotOutput{}, err
		}
	}
	slot, err := i.svc.Add(ctx, domain.Slot{
		SubjectID: input.SubjectID,
		DayOfWeek: input.DayOfWeek,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	})
	if err != nil {
		return dto.SlotOutput{}, err
	}
	return toOutput(slot), nil
}

func (i *Interactor) ToggleSlot(ctx context.Context, id string) (dto.SlotOutput, error) {
	slot, err := i.svc.Toggle(ctx, id)
	if err != nil {
		return dto.SlotOutput{}, err
	}
	return toOutput(slot), nil
}

func (i *Interactor) DeleteSlot(ctx context.Context, id string) error {
	return i.svc.Delete(ctx, id)
}

func (i *Interactor) ListSlots(ctx context.Context, input dto.ListSlotsInput) ([]dto.SlotOutput, error) {
	if input.Day != nil && (*input.Day < 0 || *input.Day > 6) {
		return nil, fmt.Errorf("%w: day must be between 0 and 6", apperrors.ErrInvalidInput)
	}
	slots, err := i.svc.List(ctx, input.Day)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SlotOutput, 0, len(slots))
	for _, slot := range slots {
		out = append(out, toOutput(slot))
	}
	return out, nil
}

func toOutput(s domain.Slot) dto.SlotOutput {
	return dto.SlotOutput{
		ID:        s.ID,
		SubjectID: s.SubjectID,
		DayOfWeek: s.DayOfWeek,
		Day:       s.Weekday().String(),
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		IsActive:  s.IsActive,
	}
}
