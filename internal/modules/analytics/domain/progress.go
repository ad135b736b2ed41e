package domain

import "time"

// WeeklyProgress reports hours per day for the Sunday-to-Saturday week
// containing now.
func WeeklyProgress(sessions []Session, now time.Time) []DayProgress {
	start := weekStart(now)
	today := midnight(now)
	out := make([]DayProgress, 0, 7)
	for i := 0; i < 7; i++ {
		day := addDays(start, i)
		out = append(out, DayProgress{
			Day:      day.Weekday().String()[:3],
			Date:     day.Format(dateLabel),
			Hours:    hoursOf(totalMinutes(between(sessions, day, addDays(day, 1)))),
			IsToday:  day.Equal(today),
			IsFuture: day.After(today),
		})
	}
	return out
}

// DailyCompletion compares today's study time with the summed daily targets.
func DailyCompletion(sessions []Session, subjects []Subject, now time.Time) DailyStats {
	today := midnight(now)
	todays := between(sessions, today, addDays(today, 1))
	minutes := totalMinutes(todays)

	target := 0.0
	progress := make([]SubjectProgress, 0, len(subjects))
	for _, subject := range subjects {
		target += subject.DailyTarget
		own := totalMinutes(forSubject(todays, subject.ID))
		progress = append(progress, SubjectProgress{
			Subject:        subject.Name,
			Color:          subject.Color,
			HoursStudied:   hoursOf(own),
			TargetHours:    subject.DailyTarget,
			CompletionRate: percent(float64(own)/60, subject.DailyTarget),
		})
	}
	return DailyStats{
		TodayHours:          hoursOf(minutes),
		TotalDailyTarget:    round1(target),
		DailyCompletionRate: percent(float64(minutes)/60, target),
		SubjectProgress:     progress,
	}
}

// WeeklySubjectProgress compares this week's study time per subject with
// the weekly targets.
func WeeklySubjectProgress(sessions []Session, subjects []Subject, now time.Time) WeeklyStats {
	start := weekStart(now)
	week := between(sessions, start, addDays(start, 7))
	minutes := totalMinutes(week)

	target := 0.0
	progress := make([]SubjectProgress, 0, len(subjects))
	for _, subject := range subjects {
		target += subject.TargetHoursPerWeek
		own := totalMinutes(forSubject(week, subject.ID))
		progress = append(progress, SubjectProgress{
			Subject:        subject.Name,
			Color:          subject.Color,
			HoursStudied:   hoursOf(own),
			TargetHours:    subject.TargetHoursPerWeek,
			CompletionRate: percent(float64(own)/60, subject.TargetHoursPerWeek),
		})
	}
	return WeeklyStats{
		OverallWeeklyCompletion: percent(float64(minutes)/60, target),
		TotalWeekHours:          hoursOf(minutes),
		TotalWeeklyTarget:       round1(target),
		SubjectProgress:         progress,
	}
}
