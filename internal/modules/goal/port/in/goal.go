package in

import (
	"context"

	"studyplan/internal/modules/goal/dto"
)

type Usecase interface {
	AddGoal(ctx context.Context, input dto.AddGoalInput) (dto.GoalOutput, error)
	ToggleGoal(ctx context.Context, id string) (dto.GoalOutput, error)
	DeleteGoal(ctx context.Context, id string) error
	ListGoals(ctx context.Context, filter string) ([]dto.GoalOutput, error)
}
