package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"studyplan/internal/modules/analytics/domain"
	"studyplan/internal/modules/analytics/dto"
	analyticsin "studyplan/internal/modules/analytics/port/in"
	"studyplan/internal/modules/analytics/service"
	goaldto "studyplan/internal/modules/goal/dto"
	goalin "studyplan/internal/modules/goal/port/in"
	sessionin "studyplan/internal/modules/session/port/in"
	subjectin "studyplan/internal/modules/subject/port/in"
	apperrors "studyplan/internal/platform/errors"
)

type Interactor struct {
	svc      *service.AnalyticsService
	subjects subjectin.Usecase
	sessions sessionin.Usecase
	goals    goalin.Usecase
}

func NewInteractor(svc *service.AnalyticsService, subjects subjectin.Usecase, sessions sessionin.Usecase, goals goalin.Usecase) analyticsin.Usecase {
	return &Interactor{svc: svc, subjects: subjects, sessions: sessions, goals: goals}
}

type snapshot struct {
	subjects []domain.Subject
	sessions []domain.Session
	goals    []goaldto.GoalOutput
}

// load reads the collections in parallel. Goals are only read when asked.
func (i *Interactor) load(ctx context.Context, withGoals bool) (snapshot, error) {
	var snap snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		subjects, err := i.subjects.ListSubjects(gctx)
		if err != nil {
			return fmt.Errorf("list subjects: %w", err)
		}
		snap.subjects = make([]domain.Subject, 0, len(subjects))
		for _, s := range subjects {
			snap.subjects = append(snap.subjects, domain.Subject{
				ID:                 s.ID,
				Name:               s.Name,
				Color:              s.Color,
				TargetHoursPerWeek: s.TargetHoursPerWeek,
				DailyTarget:        s.DailyTarget,
			})
		}
		return nil
	})
	g.Go(func() error {
		sessions, err := i.sessions.List(gctx)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		snap.sessions = make([]domain.Session, 0, len(sessions))
		for _, s := range sessions {
			snap.sessions = append(snap.sessions, domain.Session{
				SubjectID:       s.SubjectID,
				StartTime:       s.StartTime,
				DurationMinutes: s.DurationMinutes,
				FocusRating:     s.FocusRating,
				Completed:       s.Completed,
			})
		}
		return nil
	})
	if withGoals && i.goals != nil {
		g.Go(func() error {
			goals, err := i.goals.ListGoals(gctx, "all")
			if err != nil {
				return fmt.Errorf("list goals: %w", err)
			}
			snap.goals = goals
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

func (i *Interactor) Stats(ctx context.Context) (dto.StudyStats, error) {
	snap, err := i.load(ctx, false)
	if err != nil {
		return dto.StudyStats{}, err
	}
	return i.svc.Stats(snap.sessions, snap.subjects), nil
}

func (i *Interactor) Insights(ctx context.Context) ([]dto.Insight, error) {
	snap, err := i.load(ctx, false)
	if err != nil {
		return nil, err
	}
	return i.svc.Insights(snap.sessions, snap.subjects), nil
}

func (i *Interactor) WeeklyProgress(ctx context.Context) ([]dto.DayProgress, error) {
	snap, err := i.load(ctx, false)
	if err != nil {
		return nil, err
	}
	return i.svc.WeeklyProgress(snap.sessions), nil
}

func (i *Interactor) DailyCompletion(ctx context.Context) (dto.DailyStats, error) {
	snap, err := i.load(ctx, false)
	if err != nil {
		return dto.DailyStats{}, err
	}
	return i.svc.DailyCompletion(snap.sessions, snap.subjects), nil
}

func (i *Interactor) WeeklySubjectProgress(ctx context.Context) (dto.WeeklyStats, error) {
	snap, err := i.load(ctx, false)
	if err != nil {
		return dto.WeeklyStats{}, err
	}
	return i.svc.WeeklySubjectProgress(snap.sessions, snap.subjects), nil
}

func (i *Interactor) Advanced(ctx context.Context, rangeName string) (dto.AdvancedReport, error) {
	r, err := domain.ParseRange(rangeName)
	if err != nil {
		return dto.AdvancedReport{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	snap, err := i.load(ctx, false)
	if err != nil {
		return dto.AdvancedReport{}, err
	}
	return i.svc.Advanced(snap.sessions, snap.subjects, r), nil
}

func (i *Interactor) Dashboard(ctx context.Context) (dto.Dashboard, error) {
	snap, err := i.load(ctx, true)
	if err != nil {
		return dto.Dashboard{}, err
	}
	open, completed, total := service.DashboardGoals(snap.goals, func(g goaldto.GoalOutput) (bool, bool) {
		return g.IsExam, g.Completed
	})
	return dto.Dashboard{
		GeneratedAt:    i.svc.Now(),
		Stats:          i.svc.Stats(snap.sessions, snap.subjects),
		Insights:       i.svc.Insights(snap.sessions, snap.subjects),
		WeeklyProgress: i.svc.WeeklyProgress(snap.sessions),
		DailyStats:     i.svc.DailyCompletion(snap.sessions, snap.subjects),
		WeeklyStats:    i.svc.WeeklySubjectProgress(snap.sessions, snap.subjects),
		ActiveGoals:    open,
		CompletedGoals: completed,
		TotalGoals:     total,
	}, nil
}
