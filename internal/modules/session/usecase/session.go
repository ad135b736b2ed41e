package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studyplan/internal/modules/session/domain"
	sessiondto "studyplan/internal/modules/session/dto"
	sessionin "studyplan/internal/modules/session/port/in"
	sessionout "studyplan/internal/modules/session/port/out"
	"studyplan/internal/modules/session/service"
	subjectdto "studyplan/internal/modules/subject/dto"
	subjectin "studyplan/internal/modules/subject/port/in"
	apperrors "studyplan/internal/platform/errors"
)

const (
	unknownSubjectName  = "Unknown Subject"
	unknownSubjectColor = "#6b7280"
)

type Interactor struct {
	svc         *service.SessionService
	subjects    subjectin.Usecase
	activeStore sessionout.ActiveTimerStore
}

func NewInteractor(svc *service.SessionService, subjects subjectin.Usecase, activeStore sessionout.ActiveTimerStore) sessionin.Usecase {
	return &Interactor{svc: svc, subjects: subjects, activeStore: activeStore}
}

func (i *Interactor) Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.TimerOutput, error) {
	if i.activeStore == nil {
		return sessiondto.TimerOutput{}, fmt.Errorf("active timer store is not configured")
	}
	_, err := i.activeStore.LoadActive(ctx)
	if err == nil {
		return sessiondto.TimerOutput{}, apperrors.ErrTimerActive
	}
	if !errors.Is(err, apperrors.ErrNoActiveTimer) {
		return sessiondto.TimerOutput{}, err
	}

	active, err := i.svc.StartTimer(input.SubjectID)
	if err != nil {
		return sessiondto.TimerOutput{}, err
	}
	subject, err := i.lookupSubject(ctx, active.SubjectID)
	if err != nil {
		return sessiondto.TimerOutput{}, err
	}
	if err := i.activeStore.SaveActive(ctx, active); err != nil {
		return sessiondto.TimerOutput{}, err
	}
	return i.timerOutput(active, subject), nil
}

func (i *Interactor) Pause(ctx context.Context) (sessiondto.TimerOutput, error) {
	return i.mutate(ctx, i.svc.Pause)
}

func (i *Interactor) Resume(ctx context.Context) (sessiondto.TimerOutput, error) {
	return i.mutate(ctx, i.svc.Resume)
}

func (i *Interactor) Annotate(ctx context.Context, input sessiondto.AnnotateInput) (sessiondto.TimerOutput, error) {
	if input.FocusRating != nil {
		if err := domain.ValidateFocus(*input.FocusRating); err != nil {
			return sessiondto.TimerOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
	}
	return i.mutate(ctx, func(active domain.ActiveTimer) (domain.ActiveTimer, error) {
		return annotate(active, input.Notes, input.FocusRating), nil
	})
}

func (i *Interactor) Stop(ctx context.Context, input sessiondto.StopInput) (sessiondto.SessionOutput, error) {
	active, err := i.loadActive(ctx)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	active = annotate(active, input.Notes, input.FocusRating)
	session, err := i.svc.Complete(ctx, active)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

// Discard drops the active timer without recording it. The timer file is
// removed even when it could not be read.
func (i *Interactor) Discard(ctx context.Context) error {
	_, err := i.loadActive(ctx)
	if i.activeStore == nil {
		return err
	}
	if clearErr := i.activeStore.ClearActive(ctx); clearErr != nil {
		return clearErr
	}
	return err
}

func (i *Interactor) Status(ctx context.Context) (sessiondto.TimerOutput, error) {
	active, err := i.loadActive(ctx)
	if err != nil {
		return sessiondto.TimerOutput{}, err
	}
	subject, _ := i.lookupSubject(ctx, active.SubjectID)
	return i.timerOutput(active, subject), nil
}

// Watch polls the active timer every interval and emits its state until ctx
// ends or the timer goes away. The channel is closed on exit.
func (i *Interactor) Watch(ctx context.Context, interval time.Duration) (<-chan sessiondto.TimerOutput, error) {
	if interval <= 0 {
		interval = time.Second
	}
	first, err := i.Status(ctx)
	if err != nil {
		return nil, err
	}
	out := make(chan sessiondto.TimerOutput, 1)
	out <- first
	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				status, err := i.Status(ctx)
				if err != nil {
					return
				}
				select {
				case out <- status:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (i *Interactor) Log(ctx context.Context, input sessiondto.LogInput) (sessiondto.SessionOutput, error) {
	if input.FocusRating != 0 {
		if err := domain.ValidateFocus(input.FocusRating); err != nil {
			return sessiondto.SessionOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
	}
	if input.SubjectID == "" {
		return sessiondto.SessionOutput{}, fmt.Errorf("%w: subject is required", apperrors.ErrInvalidInput)
	}
	if _, err := i.lookupSubject(ctx, input.SubjectID); err != nil {
		return sessiondto.SessionOutput{}, err
	}
	session, err := i.svc.Log(ctx, input.SubjectID, input.StartTime, input.DurationMinutes, input.FocusRating, input.Notes)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	return i.svc.Delete(ctx, id)
}

func (i *Interactor) List(ctx context.Context) ([]sessiondto.SessionOutput, error) {
	sessions, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]sessiondto.SessionOutput, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, toSessionOutput(session))
	}
	return out, nil
}

func (i *Interactor) History(ctx context.Context, limit int) ([]sessiondto.HistoryEntry, error) {
	sessions, err := i.svc.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	var subjects []subjectdto.SubjectOutput
	if i.subjects != nil {
		if subjects, err = i.subjects.ListSubjects(ctx); err != nil {
			return nil, err
		}
	}
	out := make([]sessiondto.HistoryEntry, 0, len(sessions))
	for _, session := range sessions {
		entry := sessiondto.HistoryEntry{
			SessionOutput: toSessionOutput(session),
			SubjectName:   unknownSubjectName,
			SubjectColor:  unknownSubjectColor,
		}
		for _, subject := range subjects {
			if subject.ID == session.SubjectID {
				entry.SubjectName = subject.Name
				entry.SubjectColor = subject.Color
				break
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

func (i *Interactor) loadActive(ctx context.Context) (domain.ActiveTimer, error) {
	if i.activeStore == nil {
		return domain.ActiveTimer{}, apperrors.ErrNoActiveTimer
	}
	return i.activeStore.LoadActive(ctx)
}

func (i *Interactor) mutate(ctx context.Context, fn func(domain.ActiveTimer) (domain.ActiveTimer, error)) (sessiondto.TimerOutput, error) {
	active, err := i.loadActive(ctx)
	if err != nil {
		return sessiondto.TimerOutput{}, err
	}
	active, err = fn(active)
	if err != nil {
		return sessiondto.TimerOutput{}, err
	}
	if err := i.activeStore.SaveActive(ctx, active); err != nil {
		return sessiondto.TimerOutput{}, err
	}
	subject, _ := i.lookupSubject(ctx, active.SubjectID)
	return i.timerOutput(active, subject), nil
}

// lookupSubject checks that the subject exists. Without a subject usecase
// every id is accepted and resolves to the unknown subject.
func (i *Interactor) lookupSubject(ctx context.Context, id string) (subjectdto.SubjectOutput, error) {
	unknown := subjectdto.SubjectOutput{ID: id, Name: unknownSubjectName, Color: unknownSubjectColor}
	if i.subjects == nil {
		return unknown, nil
	}
	subject, err := i.subjects.GetSubject(ctx, id)
	if err != nil {
		return unknown, err
	}
	return subject, nil
}

func (i *Interactor) timerOutput(active domain.ActiveTimer, subject subjectdto.SubjectOutput) sessiondto.TimerOutput {
	elapsed := active.Elapsed(i.svc.Now())
	return sessiondto.TimerOutput{
		ID:             active.ID,
		SubjectID:      active.SubjectID,
		SubjectName:    subject.Name,
		SubjectColor:   subject.Color,
		StartedAt:      active.StartedAt,
		Paused:         active.Paused(),
		ElapsedSeconds: int(elapsed / time.Second),
		Clock:          domain.FormatClock(elapsed),
		Notes:          active.Notes,
		FocusRating:    active.FocusRating,
	}
}

func annotate(active domain.ActiveTimer, notes *string, focus *int) domain.ActiveTimer {
	if notes != nil {
		active.Notes = *notes
	}
	if focus != nil {
		active.FocusRating = *focus
	}
	return active
}

func toSessionOutput(s domain.Session) sessiondto.SessionOutput {
	return sessiondto.SessionOutput{
		ID:              s.ID,
		SubjectID:       s.SubjectID,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationMinutes: s.DurationMinutes,
		FocusRating:     s.FocusRating,
		Notes:           s.Notes,
		Completed:       s.Completed,
	}
}
