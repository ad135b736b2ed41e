package in

import (
	"context"

	"studyplan/internal/modules/schedule/dto"
	schedulein "studyplan/internal/modules/schedule/port/in"
)

type CLIHandler struct {
	usecase schedulein.Usecase
}

func NewCLIHandler(usecase schedulein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Add accepts the day as a number or an English name.
func (h CLIHandler) Add(ctx context.Context, subjectID, day, start, end string) (dto.SlotOutput, error) {
	dow, err := dto.ParseDay(day)
	if err != nil {
		return dto.SlotOutput{}, err
	}
	return h.usecase.AddSlot(ctx, dto.AddSlotInput{SubjectID: subjectID, DayOfWeek: dow, StartTime: start, EndTime: end})
}

func (h CLIHandler) Toggle(ctx context.Context, id string) (dto.SlotOutput, error) {
	return h.usecase.ToggleSlot(ctx, id)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.DeleteSlot(ctx, id)
}

func (h CLIHandler) List(ctx context.Context, day string) ([]dto.SlotOutput, error) {
	input := dto.ListSlotsInput{}
	if day != "" {
		dow, err := dto.ParseDay(day)
		if err != nil {
			return nil, err
		}
		input.Day = &dow
	}
	return h.usecase.ListSlots(ctx, input)
}
