package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	analyticsdto "studyplan/internal/modules/analytics/dto"
	"studyplan/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AnalyticsPort interface {
	Dashboard(ctx context.Context) (analyticsdto.Dashboard, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Dashboard analyticsdto.Dashboard
	Err       error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   AnalyticsPort
	vp     viewport.Model
	data   analyticsdto.Dashboard
	loaded bool
	err    error
	width  int
	height int
}

func New(port AnalyticsPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)
	return Model{port: port, vp: vp}
}

func (m Model) Init() tea.Cmd { return m.Reload() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height
		m.vp.SetContent(m.content())
		return m, nil

	case LoadedMsg:
		m.loaded = true
		m.err = msg.Err
		if msg.Err == nil {
			m.data = msg.Dashboard
		}
		m.vp.SetContent(m.content())
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m Model) View() string { return m.vp.View() }

// Reload asks the analytics port for a fresh dashboard.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return LoadedMsg{}
		}
		d, err := m.port.Dashboard(context.Background())
		return LoadedMsg{Dashboard: d, Err: err}
	}
}

func (m Model) content() string {
	switch {
	case m.err != nil:
		return theme.Bad.Render("dashboard: " + m.err.Error())
	case !m.loaded:
		return theme.Muted.Render("Loading dashboard…")
	}
	return Render(m.data, m.width)
}

// Render lays the dashboard out as plain terminal text.
func Render(d analyticsdto.Dashboard, width int) string {
	barW := 20
	if width > 0 && width < 60 {
		barW = 10
	}

	var sb strings.Builder
	st := d.Stats
	sb.WriteString(theme.Title.Render("Overview") + "\n")
	sb.WriteString(fmt.Sprintf("%gh studied  %d sessions  %d%% completed  focus %g/5\n\n",
		st.TotalHours, st.TotalSessions, st.CompletionRate, st.AvgFocusRating))

	sb.WriteString(theme.Title.Render("Today") + "\n")
	ds := d.DailyStats
	sb.WriteString(fmt.Sprintf("%s %3d%%  %gh of %gh\n",
		theme.Bar(ds.DailyCompletionRate, barW), ds.DailyCompletionRate, ds.TodayHours, ds.TotalDailyTarget))
	for _, p := range ds.SubjectProgress {
		sb.WriteString(progressLine(p, barW))
	}
	sb.WriteString("\n")

	sb.WriteString(theme.Title.Render("This week") + "\n")
	ws := d.WeeklyStats
	sb.WriteString(fmt.Sprintf("%s %3d%%  %gh of %gh\n",
		theme.Bar(ws.OverallWeeklyCompletion, barW), ws.OverallWeeklyCompletion, ws.TotalWeekHours, ws.TotalWeeklyTarget))
	for _, day := range d.WeeklyProgress {
		label := fmt.Sprintf("%-3s %-6s", day.Day, day.Date)
		switch {
		case day.IsToday:
			label = theme.Hot.Render(label)
		case day.IsFuture:
			label = theme.Muted.Render(label)
		}
		sb.WriteString(fmt.Sprintf("  %s %s %gh\n", label, strings.Repeat("▇", int(day.Hours*2)), day.Hours))
	}
	sb.WriteString("\n")

	if len(d.Insights) > 0 {
		sb.WriteString(theme.Title.Render("Insights") + "\n")
		for _, in := range d.Insights {
			sb.WriteString("  " + theme.Hot.Render(in.Title) + "  " + in.Description + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(theme.Title.Render(fmt.Sprintf("Goals (%d/%d done)", d.CompletedGoals, d.TotalGoals)) + "\n")
	if len(d.ActiveGoals) == 0 {
		sb.WriteString(theme.Muted.Render("  nothing open") + "\n")
	}
	for _, g := range d.ActiveGoals {
		line := "  ○ " + g.Title
		if g.TargetDate != nil {
			line += theme.Muted.Render("  due " + g.TargetDate.Format("Jan 2"))
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

func progressLine(p analyticsdto.SubjectProgress, barW int) string {
	return fmt.Sprintf("  %s %-14s %s %3d%%\n",
		theme.Swatch(p.Color), truncate(p.Subject, 14), theme.Bar(p.CompletionRate, barW), p.CompletionRate)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
