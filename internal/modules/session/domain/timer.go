package domain

import (
	"fmt"
	"time"

	apperrors "studyplan/internal/platform/errors"
)

// ActiveTimer is the running or paused stopwatch for the session in
// progress. Elapsed time is derived from the wall clock; AdjustedStart moves
// forward on every resume so paused time is not counted.
type ActiveTimer struct {
	ID            string     `json:"id"`
	SubjectID     string     `json:"subject_id"`
	StartedAt     time.Time  `json:"started_at"`
	AdjustedStart time.Time  `json:"adjusted_start"`
	PausedAt      *time.Time `json:"paused_at,omitempty"`
	Notes         string     `json:"notes"`
	FocusRating   int        `json:"focus_rating"`
}

func NewActiveTimer(id, subjectID string, now time.Time) ActiveTimer {
	return ActiveTimer{
		ID:            id,
		SubjectID:     subjectID,
		StartedAt:     now,
		AdjustedStart: now,
		FocusRating:   DefaultFocusRating,
	}
}

func (t ActiveTimer) Paused() bool { return t.PausedAt != nil }

// Elapsed is the counted study time at now, truncated to whole seconds.
func (t ActiveTimer) Elapsed(now time.Time) time.Duration {
	end := now
	if t.PausedAt != nil {
		end = *t.PausedAt
	}
	d := end.Sub(t.AdjustedStart)
	if d < 0 {
		return 0
	}
	return d.Truncate(time.Second)
}

func (t ActiveTimer) Pause(now time.Time) (ActiveTimer, error) {
	if t.PausedAt != nil {
		return t, apperrors.ErrTimerPaused
	}
	t.PausedAt = &now
	return t, nil
}

func (t ActiveTimer) Resume(now time.Time) (ActiveTimer, error) {
	if t.PausedAt == nil {
		return t, apperrors.ErrTimerNotPaused
	}
	if paused := now.Sub(*t.PausedAt); paused > 0 {
		t.AdjustedStart = t.AdjustedStart.Add(paused)
	}
	t.PausedAt = nil
	return t, nil
}

// FormatClock renders elapsed time as HH:MM:SS.
func FormatClock(d time.Duration) string {
	total := int(d / time.Second)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
