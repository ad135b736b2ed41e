package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

var clockTime = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Slot is a recurring weekly study block. DayOfWeek follows time.Weekday,
// Sunday is 0.
type Slot struct {
	ID        string `json:"id"`
	SubjectID string `json:"subjectId"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsActive  bool   `json:"isActive"`
}

func (s Slot) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(s.SubjectID) == "" {
		return fmt.Errorf("subject is required")
	}
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return fmt.Errorf("day of week must be between 0 (Sunday) and 6 (Saturday)")
	}
	if !clockTime.MatchString(s.StartTime) {
		return fmt.Errorf("start time %q must be HH:MM", s.StartTime)
	}
	if !clockTime.MatchString(s.EndTime) {
		return fmt.Errorf("end time %q must be HH:MM", s.EndTime)
	}
	// Zero-padded HH:MM strings order lexically.
	if s.EndTime <= s.StartTime {
		return fmt.Errorf("end time must be after start time")
	}
	return nil
}

func (s Slot) Weekday() time.Weekday { return time.Weekday(s.DayOfWeek) }

// Sort orders slots by day, then start time.
func Sort(slots []Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].DayOfWeek != slots[j].DayOfWeek {
			return slots[i].DayOfWeek < slots[j].DayOfWeek
		}
		return slots[i].StartTime < slots[j].StartTime
	})
}
