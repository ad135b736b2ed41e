package in

import (
	"context"

	"studyplan/internal/modules/analytics/dto"
	analyticsin "studyplan/internal/modules/analytics/port/in"
)

type CLIHandler struct {
	usecase analyticsin.Usecase
}

func NewCLIHandler(usecase analyticsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Stats(ctx context.Context) (dto.StudyStats, error) {
	return h.usecase.Stats(ctx)
}

func (h CLIHandler) Insights(ctx context.Context) ([]dto.Insight, error) {
	return h.usecase.Insights(ctx)
}

func (h CLIHandler) Weekly(ctx context.Context) ([]dto.DayProgress, error) {
	return h.usecase.WeeklyProgress(ctx)
}

func (h CLIHandler) Daily(ctx context.Context) (dto.DailyStats, error) {
	return h.usecase.DailyCompletion(ctx)
}

func (h CLIHandler) Subjects(ctx context.Context) (dto.WeeklyStats, error) {
	return h.usecase.WeeklySubjectProgress(ctx)
}

func (h CLIHandler) Advanced(ctx context.Context, rangeName string) (dto.AdvancedReport, error) {
	return h.usecase.Advanced(ctx, rangeName)
}

func (h CLIHandler) Dashboard(ctx context.Context) (dto.Dashboard, error) {
	return h.usecase.Dashboard(ctx)
}
