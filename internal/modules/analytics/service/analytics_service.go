package service

import (
	"time"

	"studyplan/internal/modules/analytics/domain"
	"studyplan/internal/platform/clock"
)

// dashboardGoals is how many open goals the overview lists.
const dashboardGoals = 5

type AnalyticsService struct {
	clock clock.Clock
}

func NewAnalyticsService(clock clock.Clock) *AnalyticsService {
	return &AnalyticsService{clock: clock}
}

func (s *AnalyticsService) Now() time.Time { return s.clock.Now() }

func (s *AnalyticsService) Stats(sessions []domain.Session, subjects []domain.Subject) domain.StudyStats {
	return domain.CalculateStudyStats(sessions, subjects)
}

func (s *AnalyticsService) Insights(sessions []domain.Session, subjects []domain.Subject) []domain.Insight {
	return domain.GenerateInsights(sessions, subjects, s.clock.Now())
}

func (s *AnalyticsService) WeeklyProgress(sessions []domain.Session) []domain.DayProgress {
	return domain.WeeklyProgress(sessions, s.clock.Now())
}

func (s *AnalyticsService) DailyCompletion(sessions []domain.Session, subjects []domain.Subject) domain.DailyStats {
	return domain.DailyCompletion(sessions, subjects, s.clock.Now())
}

func (s *AnalyticsService) WeeklySubjectProgress(sessions []domain.Session, subjects []domain.Subject) domain.WeeklyStats {
	return domain.WeeklySubjectProgress(sessions, subjects, s.clock.Now())
}

func (s *AnalyticsService) Advanced(sessions []domain.Session, subjects []domain.Subject, r domain.Range) domain.AdvancedReport {
	return domain.Advanced(sessions, subjects, r, s.clock.Now())
}

// DashboardGoals picks the open non-exam goals shown on the overview, along
// with the completed and total non-exam counts. pick reports whether a goal
// is an exam and whether it is completed.
func DashboardGoals[G any](goals []G, pick func(G) (exam, done bool)) (open []G, completed, total int) {
	open = []G{}
	for _, g := range goals {
		exam, done := pick(g)
		if exam {
			continue
		}
		total++
		if done {
			completed++
			continue
		}
		if len(open) < dashboardGoals {
			open = append(open, g)
		}
	}
	return open, completed, total
}
