package usecase

import (
	"context"
	"fmt"

	"studyplan/internal/modules/goal/domain"
	"studyplan/internal/modules/goal/dto"
	goalin "studyplan/internal/modules/goal/port/in"
	"studyplan/internal/modules/goal/service"
	apperrors "studyplan/internal/platform/errors"
)

type Interactor struct {
	svc *service.GoalService
}

func NewInteractor(svc *service.GoalService) goalin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) AddGoal(ctx context.Context, input dto.AddGoalInput) (dto.GoalOutput, error) {
	goal, err := i.svc.Add(ctx, domain.Goal{
		SubjectID:        input.SubjectID,
		SubjectIDs:       input.SubjectIDs,
		Title:            input.Title,
		Description:      input.Description,
		TargetDate:       input.TargetDate,
		IsExam:           input.IsExam,
		ExamDate:         input.ExamDate,
		ExamTime:         input.ExamTime,
		ExamLocation:     input.ExamLocation,
		StudyHoursTarget: input.StudyHoursTarget,
	})
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) ToggleGoal(ctx context.Context, id string) (dto.GoalOutput, error) {
	goal, err := i.svc.Toggle(ctx, id)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) DeleteGoal(ctx context.Context, id string) error {
	return i.svc.Delete(ctx, id)
}

func (i *Interactor) ListGoals(ctx context.Context, filter string) ([]dto.GoalOutput, error) {
	f, err := domain.ParseFilter(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	goals, err := i.svc.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GoalOutput, 0, len(goals))
	for _, goal := range goals {
		out = append(out, toOutput(goal))
	}
	return out, nil
}

func toOutput(g domain.Goal) dto.GoalOutput {
	return dto.GoalOutput{
		ID:               g.ID,
		SubjectID:        g.SubjectID,
		SubjectIDs:       g.SubjectIDs,
		Title:            g.Title,
		Description:      g.Description,
		TargetDate:       g.TargetDate,
		Completed:        g.Completed,
		CompletedAt:      g.CompletedAt,
		IsExam:           g.IsExam,
		ExamDate:         g.ExamDate,
		ExamTime:         g.ExamTime,
		ExamLocation:     g.ExamLocation,
		StudyHoursTarget: g.StudyHoursTarget,
	}
}
