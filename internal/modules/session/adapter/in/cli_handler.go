package in

import (
	"context"
	"time"

	sessiondto "studyplan/internal/modules/session/dto"
	sessionin "studyplan/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, subjectID string) (sessiondto.TimerOutput, error) {
	return h.usecase.Start(ctx, sessiondto.StartInput{SubjectID: subjectID})
}

func (h CLIHandler) Pause(ctx context.Context) (sessiondto.TimerOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h CLIHandler) Resume(ctx context.Context) (sessiondto.TimerOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h CLIHandler) Annotate(ctx context.Context, notes *string, focus *int) (sessiondto.TimerOutput, error) {
	return h.usecase.Annotate(ctx, sessiondto.AnnotateInput{Notes: notes, FocusRating: focus})
}

func (h CLIHandler) Stop(ctx context.Context, notes *string, focus *int) (sessiondto.SessionOutput, error) {
	return h.usecase.Stop(ctx, sessiondto.StopInput{Notes: notes, FocusRating: focus})
}

func (h CLIHandler) Discard(ctx context.Context) error {
	return h.usecase.Discard(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (sessiondto.TimerOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Watch(ctx context.Context, interval time.Duration) (<-chan sessiondto.TimerOutput, error) {
	return h.usecase.Watch(ctx, interval)
}

func (h CLIHandler) Log(ctx context.Context, input sessiondto.LogInput) (sessiondto.SessionOutput, error) {
	return h.usecase.Log(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) List(ctx context.Context) ([]sessiondto.SessionOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]sessiondto.HistoryEntry, error) {
	return h.usecase.History(ctx, limit)
}
