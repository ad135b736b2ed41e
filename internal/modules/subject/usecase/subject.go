package usecase

import (
	"context"

	"studyplan/internal/modules/subject/domain"
	"studyplan/internal/modules/subject/dto"
	subjectin "studyplan/internal/modules/subject/port/in"
	"studyplan/internal/modules/subject/service"
)

type Interactor struct {
	svc *service.SubjectService
}

func NewInteractor(svc *service.SubjectService) subjectin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) AddSubject(ctx context.Context, input dto.AddSubjectInput) (dto.SubjectOutput, error) {
	weekly := float64(domain.DefaultTargetHoursPerWeek)
	if input.TargetHoursPerWeek != nil {
		weekly = *input.TargetHoursPerWeek
	}
	subject, err := i.svc.Add(ctx, domain.Subject{
		Name:               input.Name,
		Color:              input.Color,
		Difficulty:         input.Difficulty,
		Priority:           input.Priority,
		TargetHoursPerWeek: weekly,
		TargetHoursPerDay:  input.TargetHoursPerDay,
	})
	if err != nil {
		return dto.SubjectOutput{}, err
	}
	return toOutput(subject), nil
}

func (i *Interactor) UpdateSubject(ctx context.Context, input dto.UpdateSubjectInput) (dto.SubjectOutput, error) {
	subject, err := i.svc.Update(ctx, input.ID, domain.Patch{
		Name:               input.Name,
		Color:              input.Color,
		Difficulty:         input.Difficulty,
		Priority:           input.Priority,
		TargetHoursPerWeek: input.TargetHoursPerWeek,
		TargetHoursPerDay:  input.TargetHoursPerDay,
		ClearDailyTarget:   input.ClearDailyTarget,
	})
	if err != nil {
		return dto.SubjectOutput{}, err
	}
	return toOutput(subject), nil
}

func (i *Interactor) DeleteSubject(ctx context.Context, id string) error {
	return i.svc.Delete(ctx, id)
}

func (i *Interactor) ListSubjects(ctx context.Context) ([]dto.SubjectOutput, error) {
	subjects, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubjectOutput, 0, len(subjects))
	for _, subject := range subjects {
		out = append(out, toOutput(subject))
	}
	return out, nil
}

func (i *Interactor) GetSubject(ctx context.Context, id string) (dto.SubjectOutput, error) {
	subject, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.SubjectOutput{}, err
	}
	return toOutput(subject), nil
}

func toOutput(s domain.Subject) dto.SubjectOutput {
	return dto.SubjectOutput{
		ID:                 s.ID,
		Name:               s.Name,
		Color:              s.Color,
		Difficulty:         s.Difficulty,
		Priority:           s.Priority,
		TargetHoursPerWeek: s.TargetHoursPerWeek,
		TargetHoursPerDay:  s.TargetHoursPerDay,
		DailyTarget:        s.DailyTarget(),
	}
}
