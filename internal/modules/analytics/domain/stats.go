package domain

import "math"

// CalculateStudyStats summarises every session. Subjects without recorded
// time are left out of the breakdown.
func CalculateStudyStats(sessions []Session, subjects []Subject) StudyStats {
	stats := StudyStats{
		TotalHours:       hoursOf(totalMinutes(sessions)),
		TotalSessions:    len(sessions),
		AvgFocusRating:   round1(meanFocus(sessions)),
		SubjectBreakdown: []SubjectHours{},
	}
	if len(sessions) > 0 {
		completed := 0
		for _, s := range sessions {
			if s.Completed {
				completed++
			}
		}
		stats.CompletionRate = int(math.Round(float64(completed) / float64(len(sessions)) * 100))
	}
	for _, subject := range subjects {
		own := forSubject(sessions, subject.ID)
		hours := hoursOf(totalMinutes(own))
		if hours <= 0 {
			continue
		}
		stats.SubjectBreakdown = append(stats.SubjectBreakdown, SubjectHours{
			Subject:  subject.Name,
			Color:    subject.Color,
			Hours:    hours,
			Sessions: len(own),
		})
	}
	return stats
}
