package domain

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

const (
	UnknownName  = "Unknown Subject"
	UnknownColor = "#6b7280"

	DefaultDifficulty         = 3
	DefaultPriority           = 3
	DefaultTargetHoursPerWeek = 5
)

// Palette is the fixed set of subject colours offered on creation.
var Palette = []string{
	"#3b82f6", "#ef4444", "#10b981", "#f59e0b", "#8b5cf6",
	"#ec4899", "#06b6d4", "#84cc16", "#f97316", "#6366f1",
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Subject struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Color              string   `json:"color"`
	Difficulty         int      `json:"difficulty"`
	Priority           int      `json:"priority"`
	TargetHoursPerWeek float64  `json:"targetHoursPerWeek"`
	TargetHoursPerDay  *float64 `json:"targetHoursPerDay,omitempty"`
}

func (s Subject) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("subject name is required")
	}
	if !hexColor.MatchString(s.Color) {
		return fmt.Errorf("color %q must look like #rrggbb", s.Color)
	}
	if s.Difficulty < 1 || s.Difficulty > 5 {
		return fmt.Errorf("difficulty must be between 1 and 5")
	}
	if s.Priority < 1 || s.Priority > 5 {
		return fmt.Errorf("priority must be between 1 and 5")
	}
	if s.TargetHoursPerWeek < 0 {
		return fmt.Errorf("weekly target must be non-negative")
	}
	if s.TargetHoursPerDay != nil && *s.TargetHoursPerDay < 0 {
		return fmt.Errorf("daily target must be non-negative")
	}
	return nil
}

// DailyTarget is the explicit daily target, or a seventh of the weekly one.
func (s Subject) DailyTarget() float64 {
	if s.TargetHoursPerDay != nil {
		return *s.TargetHoursPerDay
	}
	return math.Round(s.TargetHoursPerWeek/7*10) / 10
}

// Patch carries the fields of a partial update; nil fields are left alone.
type Patch struct {
	Name               *string
	Color              *string
	Difficulty         *int
	Priority           *int
	TargetHoursPerWeek *float64
	TargetHoursPerDay  *float64
	ClearDailyTarget   bool
}

func (s Subject) Apply(p Patch) Subject {
	if p.Name != nil {
		s.Name = strings.TrimSpace(*p.Name)
	}
	if p.Color != nil {
		s.Color = *p.Color
	}
	if p.Difficulty != nil {
		s.Difficulty = *p.Difficulty
	}
	if p.Priority != nil {
		s.Priority = *p.Priority
	}
	if p.TargetHoursPerWeek != nil {
		s.TargetHoursPerWeek = *p.TargetHoursPerWeek
	}
	if p.TargetHoursPerDay != nil {
		v := *p.TargetHoursPerDay
		s.TargetHoursPerDay = &v
	}
	if p.ClearDailyTarget {
		s.TargetHoursPerDay = nil
	}
	return s
}

// Find resolves id by linear search.
func Find(subjects []Subject, id string) (Subject, bool) {
	for _, s := range subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}
