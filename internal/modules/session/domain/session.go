package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultFocusRating = 3
	MinFocusRating     = 1
	MaxFocusRating     = 5
	DefaultHistorySize = 20
)

// Session is one completed, timed study interval for a subject.
type Session struct {
	ID              string     `json:"id"`
	SubjectID       string     `json:"subjectId"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	DurationMinutes int        `json:"durationMinutes"`
	FocusRating     int        `json:"focusRating,omitempty"`
	Notes           string     `json:"notes"`
	Completed       bool       `json:"completed"`
}

func (s Session) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(s.SubjectID) == "" {
		return fmt.Errorf("subject is required")
	}
	if s.StartTime.IsZero() {
		return fmt.Errorf("start time is required")
	}
	if s.DurationMinutes < 1 {
		return fmt.Errorf("session must be at least 1 minute long")
	}
	if s.FocusRating != 0 {
		if err := ValidateFocus(s.FocusRating); err != nil {
			return err
		}
	}
	return nil
}

func ValidateFocus(rating int) error {
	if rating < MinFocusRating || rating > MaxFocusRating {
		return fmt.Errorf("focus rating must be between %d and %d", MinFocusRating, MaxFocusRating)
	}
	return nil
}
