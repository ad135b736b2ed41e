package in

import (
	"context"

	"studyplan/internal/modules/subject/dto"
	subjectin "studyplan/internal/modules/subject/port/in"
)

type CLIHandler struct {
	usecase subjectin.Usecase
}

func NewCLIHandler(usecase subjectin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, input dto.AddSubjectInput) (dto.SubjectOutput, error) {
	return h.usecase.AddSubject(ctx, input)
}

func (h CLIHandler) Update(ctx context.Context, input dto.UpdateSubjectInput) (dto.SubjectOutput, error) {
	return h.usecase.UpdateSubject(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.DeleteSubject(ctx, id)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.SubjectOutput, error) {
	return h.usecase.ListSubjects(ctx)
}

func (h CLIHandler) Get(ctx context.Context, id string) (dto.SubjectOutput, error) {
	return h.usecase.GetSubject(ctx, id)
}
