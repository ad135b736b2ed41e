package dto

import (
	"time"

	"studyplan/internal/modules/analytics/domain"
	goaldto "studyplan/internal/modules/goal/dto"
)

type (
	StudyStats      = domain.StudyStats
	SubjectHours    = domain.SubjectHours
	Insight         = domain.Insight
	InsightData     = domain.InsightData
	DayProgress     = domain.DayProgress
	DailyStats      = domain.DailyStats
	WeeklyStats     = domain.WeeklyStats
	SubjectProgress = domain.SubjectProgress
	AdvancedReport  = domain.AdvancedReport
)

// Dashboard bundles everything the overview screen shows.
type Dashboard struct {
	GeneratedAt    time.Time            `json:"generatedAt"`
	Stats          StudyStats           `json:"stats"`
	Insights       []Insight            `json:"insights"`
	WeeklyProgress []DayProgress        `json:"weeklyProgress"`
	DailyStats     DailyStats           `json:"dailyStats"`
	WeeklyStats    WeeklyStats          `json:"weeklyStats"`
	ActiveGoals    []goaldto.GoalOutput `json:"activeGoals"`
	CompletedGoals int                  `json:"completedGoals"`
	TotalGoals     int                  `json:"totalGoals"`
}
