package in

import (
	"context"

	"studyplan/internal/modules/subject/dto"
)

type Usecase interface {
	AddSubject(ctx context.Context, input dto.AddSubjectInput) (dto.SubjectOutput, error)
	UpdateSubject(ctx context.Context, input dto.UpdateSubjectInput) (dto.SubjectOutput, error)
	DeleteSubject(ctx context.Context, id string) error
	ListSubjects(ctx context.Context) ([]dto.SubjectOutput, error)
	GetSubject(ctx context.Context, id string) (dto.SubjectOutput, error)
}
