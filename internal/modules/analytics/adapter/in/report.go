package in

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"studyplan/internal/modules/analytics/dto"
	analyticsin "studyplan/internal/modules/analytics/port/in"
)

// ReportHandler renders the dashboard and the detailed analytics as a
// markdown study report.
type ReportHandler struct {
	usecase analyticsin.Usecase
}

func NewReportHandler(usecase analyticsin.Usecase) ReportHandler {
	return ReportHandler{usecase: usecase}
}

func (h ReportHandler) Markdown(ctx context.Context, rangeName string) (string, error) {
	dash, err := h.usecase.Dashboard(ctx)
	if err != nil {
		return "", err
	}
	adv, err := h.usecase.Advanced(ctx, rangeName)
	if err != nil {
		return "", err
	}
	return BuildReport(dash, adv), nil
}

// Render turns the report into styled terminal output. style is a glamour
// style name such as "dark", "light" or "notty"; width 0 disables wrapping.
func (h ReportHandler) Render(ctx context.Context, rangeName, style string, width int) (string, error) {
	md, err := h.Markdown(ctx, rangeName)
	if err != nil {
		return "", err
	}
	if style == "" {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return out, nil
}

func BuildReport(dash dto.Dashboard, adv dto.AdvancedReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Study report\n\n_Generated %s_\n\n", dash.GeneratedAt.Format("Mon 2 Jan 2006 15:04"))

	b.WriteString("## Overview\n\n| Metric | Value |\n| --- | --- |\n")
	fmt.Fprintf(&b, "| Total study time | %gh |\n", dash.Stats.TotalHours)
	fmt.Fprintf(&b, "| Sessions | %d |\n", dash.Stats.TotalSessions)
	fmt.Fprintf(&b, "| Completion rate | %d%% |\n", dash.Stats.CompletionRate)
	fmt.Fprintf(&b, "| Average focus | %g/5 |\n", dash.Stats.AvgFocusRating)
	fmt.Fprintf(&b, "| Today | %gh of %gh (%d%%) |\n", dash.DailyStats.TodayHours, dash.DailyStats.TotalDailyTarget, dash.DailyStats.DailyCompletionRate)
	fmt.Fprintf(&b, "| This week | %gh of %gh (%d%%) |\n", dash.WeeklyStats.TotalWeekHours, dash.WeeklyStats.TotalWeeklyTarget, dash.WeeklyStats.OverallWeeklyCompletion)
	fmt.Fprintf(&b, "| Goals completed | %d/%d |\n\n", dash.CompletedGoals, dash.TotalGoals)

	if len(dash.WeeklyProgress) == 7 {
		fmt.Fprintf(&b, "## Week of %s - %s\n\n", dash.WeeklyProgress[0].Date, dash.WeeklyProgress[6].Date)
		b.WriteString("| Day | Date | Hours |\n| --- | --- | --- |\n")
		for _, day := range dash.WeeklyProgress {
			label := day.Day
			if day.IsToday {
				label = "**" + label + "**"
			}
			hours := fmt.Sprintf("%g", day.Hours)
			if day.IsFuture {
				hours = "-"
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", label, day.Date, hours)
		}
		b.WriteString("\n")
	}

	if len(dash.WeeklyStats.SubjectProgress) > 0 {
		b.WriteString("## Subjects this week\n\n| Subject | Hours | Target | Progress |\n| --- | --- | --- | --- |\n")
		for _, p := range dash.WeeklyStats.SubjectProgress {
			fmt.Fprintf(&b, "| %s | %g | %g | %d%% |\n", p.Subject, p.HoursStudied, p.TargetHours, p.CompletionRate)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Insights\n\n")
	for _, insight := range dash.Insights {
		fmt.Fprintf(&b, "- **%s** %s\n", insight.Title, insight.Description)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", rangeLabel(string(adv.Range)))
	fmt.Fprintf(&b, "%gh over %d sessions, %g min on average, focus %g/5, %d%% of target.\n\n",
		adv.TotalHours, adv.TotalSessions, adv.AvgSessionLength, adv.AvgFocusRating, adv.CompletionRate)
	if len(adv.SubjectBreakdown) > 0 {
		b.WriteString("| Subject | Hours | Sessions | Focus | Share |\n| --- | --- | --- | --- | --- |\n")
		for _, s := range adv.SubjectBreakdown {
			fmt.Fprintf(&b, "| %s | %g | %d | %g | %d%% |\n", s.Subject, s.Hours, s.Sessions, s.AvgFocus, s.Percentage)
		}
		b.WriteString("\n")
	}
	if len(adv.HourlyDistribution) > 0 {
		b.WriteString("Study time by starting hour:\n\n")
		for _, h := range adv.HourlyDistribution {
			fmt.Fprintf(&b, "- %s: %d min\n", h.Hour, h.Minutes)
		}
		b.WriteString("\n")
	}

	if len(dash.ActiveGoals) > 0 {
		b.WriteString("## Open goals\n\n")
		for _, g := range dash.ActiveGoals {
			line := "- [ ] " + g.Title
			if g.TargetDate != nil {
				line += " (due " + g.TargetDate.Format("Jan 2") + ")"
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

func rangeLabel(r string) string {
	switch r {
	case "7d":
		return "Last 7 days"
	case "30d":
		return "Last 30 days"
	case "90d":
		return "Last 90 days"
	default:
		return "All time"
	}
}
