// Package domain holds the study analytics: pure reductions over session
// and subject snapshots. Day and hour buckets follow the location of the
// reference time passed in.
package domain

import (
	"math"
	"time"
)

// Subject is the part of a subject the analytics read.
type Subject struct {
	ID                 string
	Name               string
	Color              string
	TargetHoursPerWeek float64
	// DailyTarget is the explicit daily target or the weekly one spread
	// over seven days.
	DailyTarget float64
}

// Session is the part of a study session the analytics read.
type Session struct {
	SubjectID       string
	StartTime       time.Time
	DurationMinutes int
	FocusRating     int
	Completed       bool
}

type SubjectHours struct {
	Subject  string  `json:"subject"`
	Color    string  `json:"color"`
	Hours    float64 `json:"hours"`
	Sessions int     `json:"sessions"`
}

type StudyStats struct {
	TotalHours       float64        `json:"totalHours"`
	TotalSessions    int            `json:"totalSessions"`
	CompletionRate   int            `json:"completionRate"`
	AvgFocusRating   float64        `json:"avgFocusRating"`
	SubjectBreakdown []SubjectHours `json:"subjectBreakdown"`
}

type InsightType string

const (
	InsightPeakHours      InsightType = "peak_hours"
	InsightWeakSubjects   InsightType = "weak_subjects"
	InsightStreak         InsightType = "streak"
	InsightRecommendation InsightType = "recommendation"
)

type InsightData struct {
	Hour    *int    `json:"hour,omitempty"`
	Days    int     `json:"days,omitempty"`
	Subject string  `json:"subject,omitempty"`
	Current float64 `json:"current,omitempty"`
	Target  float64 `json:"target,omitempty"`
}

type Insight struct {
	Type        InsightType  `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Data        *InsightData `json:"data,omitempty"`
}

type DayProgress struct {
	Day      string  `json:"day"`
	Date     string  `json:"date"`
	Hours    float64 `json:"hours"`
	IsToday  bool    `json:"isToday"`
	IsFuture bool    `json:"isFuture"`
}

type SubjectProgress struct {
	Subject        string  `json:"subject"`
	Color          string  `json:"color"`
	HoursStudied   float64 `json:"hoursStudied"`
	TargetHours    float64 `json:"targetHours"`
	CompletionRate int     `json:"completionRate"`
}

type DailyStats struct {
	TodayHours          float64           `json:"todayHours"`
	TotalDailyTarget    float64           `json:"totalDailyTarget"`
	DailyCompletionRate int               `json:"dailyCompletionRate"`
	SubjectProgress     []SubjectProgress `json:"subjectProgress"`
}

type WeeklyStats struct {
	OverallWeeklyCompletion int               `json:"overallWeeklyCompletion"`
	TotalWeekHours          float64           `json:"totalWeekHours"`
	TotalWeeklyTarget       float64           `json:"totalWeeklyTarget"`
	SubjectProgress         []SubjectProgress `json:"subjectProgress"`
}

const dateLabel = "Jan 2"

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func hoursOf(minutes int) float64 { return round1(float64(minutes) / 60) }

// percent is round(part/whole*100) capped at 100, or 0 without a target.
func percent(part, whole float64) int {
	if whole <= 0 {
		return 0
	}
	p := int(math.Round(part / whole * 100))
	if p > 100 {
		return 100
	}
	return p
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func addDays(day time.Time, n int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, day.Location())
}

// weekStart is the Sunday midnight opening the week that contains now.
func weekStart(now time.Time) time.Time {
	today := midnight(now)
	return addDays(today, -int(today.Weekday()))
}

func within(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func totalMinutes(sessions []Session) int {
	total := 0
	for _, s := range sessions {
		total += s.DurationMinutes
	}
	return total
}

func forSubject(sessions []Session, id string) []Session {
	out := []Session{}
	for _, s := range sessions {
		if s.SubjectID == id {
			out = append(out, s)
		}
	}
	return out
}

func between(sessions []Session, from, to time.Time) []Session {
	out := []Session{}
	for _, s := range sessions {
		if within(s.StartTime.In(from.Location()), from, to) {
			out = append(out, s)
		}
	}
	return out
}

// meanFocus averages the non-zero ratings.
func meanFocus(sessions []Session) float64 {
	sum, n := 0, 0
	for _, s := range sessions {
		if s.FocusRating != 0 {
			sum += s.FocusRating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// weightedFocus averages ratings weighted by session length.
func weightedFocus(sessions []Session) float64 {
	weighted, minutes := 0, 0
	for _, s := range sessions {
		if s.FocusRating == 0 || s.DurationMinutes == 0 {
			continue
		}
		weighted += s.FocusRating * s.DurationMinutes
		minutes += s.DurationMinutes
	}
	if minutes == 0 {
		return 0
	}
	return float64(weighted) / float64(minutes)
}
