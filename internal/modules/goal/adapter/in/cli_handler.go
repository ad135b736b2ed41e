package in

import (
	"context"

	"studyplan/internal/modules/goal/dto"
	goalin "studyplan/internal/modules/goal/port/in"
)

type CLIHandler struct {
	usecase goalin.Usecase
}

func NewCLIHandler(usecase goalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, input dto.AddGoalInput) (dto.GoalOutput, error) {
	return h.usecase.AddGoal(ctx, input)
}

func (h CLIHandler) Toggle(ctx context.Context, id string) (dto.GoalOutput, error) {
	return h.usecase.ToggleGoal(ctx, id)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.DeleteGoal(ctx, id)
}

func (h CLIHandler) List(ctx context.Context, filter string) ([]dto.GoalOutput, error) {
	return h.usecase.ListGoals(ctx, filter)
}
