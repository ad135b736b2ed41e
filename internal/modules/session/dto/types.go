package dto

import "time"

type StartInput struct {
	SubjectID string
}

type AnnotateInput struct {
	Notes       *string
	FocusRating *int
}

type StopInput struct {
	Notes       *string
	FocusRating *int
}

type LogInput struct {
	SubjectID       string
	StartTime       time.Time
	DurationMinutes int
	FocusRating     int
	Notes           string
}

type TimerOutput struct {
	ID             string    `json:"id"`
	SubjectID      string    `json:"subjectId"`
	SubjectName    string    `json:"subjectName"`
	SubjectColor   string    `json:"subjectColor"`
	StartedAt      time.Time `json:"startedAt"`
	Paused         bool      `json:"paused"`
	ElapsedSeconds int       `json:"elapsedSeconds"`
	Clock          string    `json:"clock"`
	Notes          string    `json:"notes"`
	FocusRating    int       `json:"focusRating"`
}

type SessionOutput struct {
	ID              string     `json:"id"`
	SubjectID       string     `json:"subjectId"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	DurationMinutes int        `json:"durationMinutes"`
	FocusRating     int        `json:"focusRating,omitempty"`
	Notes           string     `json:"notes"`
	Completed       bool       `json:"completed"`
}

type HistoryEntry struct {
	SessionOutput
	SubjectName  string `json:"subjectName"`
	SubjectColor string `json:"subjectColor"`
}
