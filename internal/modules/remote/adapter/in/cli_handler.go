package in

import (
	"context"

	"studyplan/internal/modules/remote/dto"
	remotein "studyplan/internal/modules/remote/port/in"
)

type CLIHandler struct {
	usecase remotein.Usecase
}

func NewCLIHandler(usecase remotein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Push(ctx context.Context) ([]dto.SyncResult, error) {
	return h.usecase.Push(ctx)
}

func (h CLIHandler) Pull(ctx context.Context) ([]dto.SyncResult, error) {
	return h.usecase.Pull(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (dto.Status, error) {
	return h.usecase.Status(ctx)
}
