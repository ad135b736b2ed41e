package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type Range string

const (
	Range7d  Range = "7d"
	Range30d Range = "30d"
	Range90d Range = "90d"
	RangeAll Range = "all"
)

const DefaultRange = Range30d

func ParseRange(raw string) (Range, error) {
	switch r := Range(strings.ToLower(strings.TrimSpace(raw))); r {
	case "":
		return DefaultRange, nil
	case Range7d, Range30d, Range90d, RangeAll:
		return r, nil
	default:
		return "", fmt.Errorf("unknown range %q (want 7d, 30d, 90d or all)", raw)
	}
}

// Days is the look-back window; zero for all.
func (r Range) Days() int {
	switch r {
	case Range7d:
		return 7
	case Range30d:
		return 30
	case Range90d:
		return 90
	default:
		return 0
	}
}

// targetDays multiplies the daily targets for the completion rate. The long
// ranges compare against a single day.
func (r Range) targetDays() int {
	switch r {
	case Range7d, Range30d:
		return r.Days()
	default:
		return 1
	}
}

// trendDays is how many calendar days the trend series covers.
func (r Range) trendDays() int {
	if r == RangeAll {
		return 365
	}
	return r.Days()
}

type SubjectBreakdown struct {
	Subject    string  `json:"subject"`
	Color      string  `json:"color"`
	Hours      float64 `json:"hours"`
	Sessions   int     `json:"sessions"`
	AvgFocus   float64 `json:"avgFocus"`
	Percentage int     `json:"percentage"`
}

type DailyTrend struct {
	Date     string  `json:"date"`
	Hours    float64 `json:"hours"`
	Sessions int     `json:"sessions"`
	AvgFocus float64 `json:"avgFocus"`
}

type HourBucket struct {
	Hour    string  `json:"hour"`
	Minutes int     `json:"minutes"`
	Hours   float64 `json:"hours"`
}

type AdvancedReport struct {
	Range              Range              `json:"range"`
	TotalHours         float64            `json:"totalHours"`
	TotalSessions      int                `json:"totalSessions"`
	AvgSessionLength   float64            `json:"avgSessionLength"`
	CompletionRate     int                `json:"completionRate"`
	AvgFocusRating     float64            `json:"avgFocusRating"`
	SubjectBreakdown   []SubjectBreakdown `json:"subjectBreakdown"`
	DailyTrends        []DailyTrend       `json:"dailyTrends"`
	HourlyDistribution []HourBucket       `json:"hourlyDistribution"`
}

// Advanced computes the detailed analytics for the sessions started within
// r of now.
func Advanced(sessions []Session, subjects []Subject, r Range, now time.Time) AdvancedReport {
	loc := now.Location()
	filtered := sessions
	if days := r.Days(); days > 0 {
		cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
		filtered = []Session{}
		for _, s := range sessions {
			if !s.StartTime.Before(cutoff) {
				filtered = append(filtered, s)
			}
		}
	}

	minutes := totalMinutes(filtered)
	report := AdvancedReport{
		Range:              r,
		TotalHours:         hoursOf(minutes),
		TotalSessions:      len(filtered),
		AvgFocusRating:     round1(weightedFocus(filtered)),
		SubjectBreakdown:   []SubjectBreakdown{},
		DailyTrends:        []DailyTrend{},
		HourlyDistribution: []HourBucket{},
	}
	if len(filtered) > 0 {
		report.AvgSessionLength = round1(float64(minutes) / float64(len(filtered)))
	}

	target := 0.0
	for _, subject := range subjects {
		target += subject.DailyTarget * float64(r.targetDays())
	}
	report.CompletionRate = percent(report.TotalHours, target)

	for _, subject := range subjects {
		own := forSubject(filtered, subject.ID)
		ownMinutes := totalMinutes(own)
		hours := hoursOf(ownMinutes)
		if hours <= 0 {
			continue
		}
		share := 0
		if report.TotalHours > 0 {
			share = int(math.Round(float64(ownMinutes) / 60 / report.TotalHours * 100))
		}
		report.SubjectBreakdown = append(report.SubjectBreakdown, SubjectBreakdown{
			Subject:    subject.Name,
			Color:      subject.Color,
			Hours:      hours,
			Sessions:   len(own),
			AvgFocus:   round1(weightedFocus(own)),
			Percentage: share,
		})
	}

	today := midnight(now)
	for i := r.trendDays() - 1; i >= 0; i-- {
		day := addDays(today, -i)
		daySessions := between(filtered, day, addDays(day, 1))
		report.DailyTrends = append(report.DailyTrends, DailyTrend{
			Date:     day.Format(dateLabel),
			Hours:    hoursOf(totalMinutes(daySessions)),
			Sessions: len(daySessions),
			AvgFocus: round1(meanFocus(daySessions)),
		})
	}

	var perHour [24]int
	for _, s := range filtered {
		perHour[s.StartTime.In(loc).Hour()] += s.DurationMinutes
	}
	for hour, m := range perHour {
		if m == 0 {
			continue
		}
		report.HourlyDistribution = append(report.HourlyDistribution, HourBucket{
			Hour:    fmt.Sprintf("%d:00", hour),
			Minutes: m,
			Hours:   hoursOf(m),
		})
	}
	return report
}
