package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"studyplan/internal/modules/session/domain"
	sessionout "studyplan/internal/modules/session/port/out"
	"studyplan/internal/platform/clock"
	apperrors "studyplan/internal/platform/errors"
	"studyplan/internal/platform/id"
)

type SessionService struct {
	clock clock.Clock
	idGen id.Generator
	store sessionout.SessionStore
}

func NewSessionService(clock clock.Clock, idGen id.Generator, store sessionout.SessionStore) *SessionService {
	return &SessionService{clock: clock, idGen: idGen, store: store}
}

func (s *SessionService) Now() time.Time { return s.clock.Now() }

func (s *SessionService) StartTimer(subjectID string) (domain.ActiveTimer, error) {
	if strings.TrimSpace(subjectID) == "" {
		return domain.ActiveTimer{}, fmt.Errorf("%w: please select a subject first", apperrors.ErrInvalidInput)
	}
	return domain.NewActiveTimer(s.idGen.New(), subjectID, s.clock.Now()), nil
}

func (s *SessionService) Pause(active domain.ActiveTimer) (domain.ActiveTimer, error) {
	return active.Pause(s.clock.Now())
}

func (s *SessionService) Resume(active domain.ActiveTimer) (domain.ActiveTimer, error) {
	return active.Resume(s.clock.Now())
}

// Complete turns the active timer into a recorded session. Timers under one
// minute are rejected and must keep running.
func (s *SessionService) Complete(ctx context.Context, active domain.ActiveTimer) (domain.Session, error) {
	now := s.clock.Now()
	minutes := int(active.Elapsed(now) / time.Minute)
	if minutes < 1 {
		return domain.Session{}, apperrors.ErrSessionTooShort
	}
	if err := domain.ValidateFocus(active.FocusRating); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	end := now
	session := domain.Session{
		ID:              active.ID,
		SubjectID:       active.SubjectID,
		StartTime:       active.StartedAt,
		EndTime:         &end,
		DurationMinutes: minutes,
		FocusRating:     active.FocusRating,
		Notes:           active.Notes,
		Completed:       true,
	}
	return s.append(ctx, session)
}

// Log records a session entered by hand.
func (s *SessionService) Log(ctx context.Context, subjectID string, start time.Time, minutes, focus int, notes string) (domain.Session, error) {
	if minutes < 1 {
		return domain.Session{}, apperrors.ErrSessionTooShort
	}
	if start.IsZero() {
		start = s.clock.Now().Add(-time.Duration(minutes) * time.Minute)
	}
	if focus == 0 {
		focus = domain.DefaultFocusRating
	}
	end := start.Add(time.Duration(minutes) * time.Minute)
	return s.append(ctx, domain.Session{
		ID:              s.idGen.New(),
		SubjectID:       subjectID,
		StartTime:       start,
		EndTime:         &end,
		DurationMinutes: minutes,
		FocusRating:     focus,
		Notes:           notes,
		Completed:       true,
	})
}

func (s *SessionService) append(ctx context.Context, session domain.Session) (domain.Session, error) {
	if err := session.Validate(); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	sessions, err := s.store.Load(ctx)
	if err != nil {
		return domain.Session{}, err
	}
	// A stop retried after the timer failed to clear must not record twice.
	for _, existing := range sessions {
		if existing.ID == session.ID {
			return existing, nil
		}
	}
	if err := s.store.Save(ctx, append(sessions, session)); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

func (s *SessionService) Delete(ctx context.Context, id string) error {
	sessions, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	kept := sessions[:0]
	for _, session := range sessions {
		if session.ID != id {
			kept = append(kept, session)
		}
	}
	if len(kept) == len(sessions) {
		return fmt.Errorf("session %s: %w", id, apperrors.ErrNotFound)
	}
	return s.store.Save(ctx, kept)
}

func (s *SessionService) List(ctx context.Context) ([]domain.Session, error) {
	return s.store.Load(ctx)
}

// Recent returns up to limit sessions, newest first.
func (s *SessionService) Recent(ctx context.Context, limit int) ([]domain.Session, error) {
	sessions, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.After(sessions[j].StartTime)
	})
	if limit <= 0 {
		limit = domain.DefaultHistorySize
	}
	if len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}
