package in

import (
	"context"

	"studyplan/internal/modules/analytics/dto"
)

type Usecase interface {
	Stats(ctx context.Context) (dto.StudyStats, error)
	Insights(ctx context.Context) ([]dto.Insight, error)
	WeeklyProgress(ctx context.Context) ([]dto.DayProgress, error)
	DailyCompletion(ctx context.Context) (dto.DailyStats, error)
	WeeklySubjectProgress(ctx context.Context) (dto.WeeklyStats, error)
	Advanced(ctx context.Context, rangeName string) (dto.AdvancedReport, error)
	Dashboard(ctx context.Context) (dto.Dashboard, error)
}
