package dto

import "time"

type AddGoalInput struct {
	SubjectID        string
	SubjectIDs       []string
	Title            string
	Description      string
	TargetDate       *time.Time
	IsExam           bool
	ExamDate         *time.Time
	ExamTime         string
	ExamLocation     string
	StudyHoursTarget float64
}

type GoalOutput struct {
	ID               string     `json:"id"`
	SubjectID        string     `json:"subjectId,omitempty"`
	SubjectIDs       []string   `json:"subjectIds,omitempty"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	TargetDate       *time.Time `json:"targetDate,omitempty"`
	Completed        bool       `json:"completed"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	IsExam           bool       `json:"isExam,omitempty"`
	ExamDate         *time.Time `json:"examDate,omitempty"`
	ExamTime         string     `json:"examTime,omitempty"`
	ExamLocation     string     `json:"examLocation,omitempty"`
	StudyHoursTarget float64    `json:"studyHoursTarget,omitempty"`
}
