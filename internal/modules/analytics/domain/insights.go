package domain

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

const (
	peakHourMinSessions = 5
	streakWindow        = 7
	streakMinDays       = 3
	weakMinSessions     = 2
	weakFocusBelow      = 3
	behindRatio         = 0.7
)

// GenerateInsights derives the productivity hints shown on the dashboard.
// sessions must be in recording order; the streak looks at the last few.
func GenerateInsights(sessions []Session, subjects []Subject, now time.Time) []Insight {
	if len(sessions) == 0 {
		return []Insight{{
			Type:        InsightRecommendation,
			Title:       "Start Your Study Journey",
			Description: "Add your subjects and start your first study session to get personalized insights.",
		}}
	}
	loc := now.Location()
	insights := []Insight{}

	if len(sessions) >= peakHourMinSessions {
		hour := peakHour(sessions, loc)
		insights = append(insights, Insight{
			Type:        InsightPeakHours,
			Title:       "Peak Productivity Hour",
			Description: fmt.Sprintf("You're most productive at %d:00. Consider scheduling important subjects during this time.", hour),
			Data:        &InsightData{Hour: &hour},
		})
	}

	recent := sessions
	if len(recent) > streakWindow {
		recent = recent[len(recent)-streakWindow:]
	}
	days := map[time.Time]bool{}
	for _, s := range recent {
		days[midnight(s.StartTime.In(loc))] = true
	}
	if n := len(days); n >= streakMinDays {
		insights = append(insights, Insight{
			Type:        InsightStreak,
			Title:       fmt.Sprintf("%d-Day Streak!", n),
			Description: fmt.Sprintf("You've studied for %d days. Keep the momentum going!", n),
			Data:        &InsightData{Days: n},
		})
	}

	if weak, ok := weakestSubject(sessions, subjects); ok {
		insights = append(insights, Insight{
			Type:        InsightWeakSubjects,
			Title:       "Focus Improvement Needed",
			Description: fmt.Sprintf("Your focus rating for %s is below average. Try shorter sessions or different study techniques.", weak.Name),
			Data:        &InsightData{Subject: weak.Name},
		})
	}

	weekAgo := now.Add(-7 * 24 * time.Hour)
	lastWeek := []Session{}
	for _, s := range sessions {
		if !s.StartTime.Before(weekAgo) {
			lastWeek = append(lastWeek, s)
		}
	}
	for _, subject := range subjects {
		hours := float64(totalMinutes(forSubject(lastWeek, subject.ID))) / 60
		if subject.TargetHoursPerWeek <= 0 || hours >= subject.TargetHoursPerWeek*behindRatio {
			continue
		}
		insights = append(insights, Insight{
			Type:  InsightRecommendation,
			Title: "Behind Schedule: " + subject.Name,
			Description: fmt.Sprintf("You've studied %sh this week. Target is %sh. Consider adding more sessions.",
				formatHours(round1(hours)), formatHours(subject.TargetHoursPerWeek)),
			Data: &InsightData{Subject: subject.Name, Current: hours, Target: subject.TargetHoursPerWeek},
		})
	}
	return insights
}

// peakHour is the hour of day with the most session starts, the earliest on
// a tie.
func peakHour(sessions []Session, loc *time.Location) int {
	var counts [24]int
	for _, s := range sessions {
		counts[s.StartTime.In(loc).Hour()]++
	}
	best := 0
	for h, c := range counts {
		if c > counts[best] {
			best = h
		}
	}
	return best
}

// weakestSubject picks, among subjects with enough sessions, the one with
// the lowest mean focus, and reports it only when that mean is below par.
func weakestSubject(sessions []Session, subjects []Subject) (Subject, bool) {
	type perf struct {
		subject Subject
		focus   float64
	}
	candidates := []perf{}
	for _, subject := range subjects {
		own := forSubject(sessions, subject.ID)
		if len(own) < weakMinSessions {
			continue
		}
		candidates = append(candidates, perf{subject: subject, focus: meanFocus(own)})
	}
	if len(candidates) == 0 {
		return Subject{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].focus < candidates[j].focus })
	if candidates[0].focus >= weakFocusBelow {
		return Subject{}, false
	}
	return candidates[0].subject, true
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
