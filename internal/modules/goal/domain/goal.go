package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

var clockTime = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Goal is a task or exam milestone, optionally tied to one or more subjects.
type Goal struct {
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

func (g Goal) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("goal title is required")
	}
	if g.StudyHoursTarget < 0 {
		return fmt.Errorf("study hours target must be non-negative")
	}
	if !g.IsExam {
		return nil
	}
	if g.ExamDate == nil || g.ExamDate.IsZero() {
		return fmt.Errorf("exam date is required for exams")
	}
	if g.ExamTime != "" && !clockTime.MatchString(g.ExamTime) {
		return fmt.Errorf("exam time %q must be HH:MM", g.ExamTime)
	}
	return nil
}

// Subjects lists every linked subject id without duplicates.
func (g Goal) Subjects() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, id := range append([]string{g.SubjectID}, g.SubjectIDs...) {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Toggle flips completion and stamps or clears CompletedAt.
func (g Goal) Toggle(now time.Time) Goal {
	g.Completed = !g.Completed
	if g.Completed {
		g.CompletedAt = &now
	} else {
		g.CompletedAt = nil
	}
	return g
}

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
	FilterExams     Filter = "exams"
)

func ParseFilter(raw string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(raw))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterActive, FilterCompleted, FilterExams:
		return f, nil
	default:
		return "", fmt.Errorf("unknown goal filter %q (want all, active, completed or exams)", raw)
	}
}

func (f Filter) Match(g Goal) bool {
	switch f {
	case FilterActive:
		return !g.Completed
	case FilterCompleted:
		return g.Completed
	case FilterExams:
		return g.IsExam
	default:
		return true
	}
}

// Apply keeps the goals matching f. Exams come back ordered by exam date,
// undated exams last.
func (f Filter) Apply(goals []Goal) []Goal {
	out := make([]Goal, 0, len(goals))
	for _, g := range goals {
		if f.Match(g) {
			out = append(out, g)
		}
	}
	if f == FilterExams {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].ExamDate, out[j].ExamDate
			if a == nil || b == nil {
				return a != nil && b == nil
			}
			return a.Before(*b)
		})
	}
	return out
}
