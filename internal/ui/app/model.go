package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "studyplan/internal/modules/session/dto"
	apperrors "studyplan/internal/platform/errors"
	"studyplan/internal/ui/components"
	"studyplan/internal/ui/theme"
	dashboardview "studyplan/internal/ui/views/dashboard"
	historyview "studyplan/internal/ui/views/history"
	subjectsview "studyplan/internal/ui/views/subjects"
)

// pollInterval is how often the timer display re-reads the active timer.
const pollInterval = time.Second

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages.

type sessionPort interface {
	Start(ctx context.Context, subjectID string) (sessiondto.TimerOutput, error)
	Pause(ctx context.Context) (sessiondto.TimerOutput, error)
	Resume(ctx context.Context) (sessiondto.TimerOutput, error)
	Stop(ctx context.Context, notes *string, focus *int) (sessiondto.SessionOutput, error)
	Discard(ctx context.Context) error
	Status(ctx context.Context) (sessiondto.TimerOutput, error)
	History(ctx context.Context, limit int) ([]sessiondto.HistoryEntry, error)
}

type analyticsPort = dashboardview.AnalyticsPort

type subjectPort = subjectsview.SubjectPort

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabSubjects tabID = iota
	tabTimer
	tabDashboard
	tabHistory
	tabCount
)

var tabLabels = [tabCount]string{
	"Subjects", "Timer", "Dashboard", "History",
}

// ─── async messages ───────────────────────────────────────────────────────────

type tickMsg time.Time

type timerMsg struct {
	timer sessiondto.TimerOutput
	err   error
}

type timerActionMsg struct {
	verb  string
	timer sessiondto.TimerOutput
	err   error
}

type sessionStoppedMsg struct {
	session sessiondto.SessionOutput
	err     error
}

type discardedMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Start   key.Binding
	Pause   key.Binding
	Stop    key.Binding
	Refresh key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start timer")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause/resume")),
		Stop:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop and save")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Refresh},
		{k.Start, k.Pause, k.Stop},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the polled timer
// state, the help overlay and the command palette. Business logic stays
// behind the port interfaces; tab contents are rendered by sub-views.
type Model struct {
	session sessionPort

	subjectsView  subjectsview.Model
	dashboardView dashboardview.Model
	historyView   historyview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	timer     sessiondto.TimerOutput
	hasTimer  bool
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(session sessionPort, analytics analyticsPort, subjects subjectPort) Model {
	return Model{
		session:       session,
		subjectsView:  subjectsview.New(subjects),
		dashboardView: dashboardview.New(analytics),
		historyView:   historyview.New(session),
		activeTab:     tabSubjects,
		keys:          defaultKeys(),
		help:          help.New(),
		palette:       components.NewPalette(),
		status:        "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.subjectsView.Init(),
		m.dashboardView.Init(),
		m.historyView.Init(),
		m.statusCmd(),
		tick(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		return m, tea.Batch(m.statusCmd(), tick())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case timerMsg:
		m.applyTimer(msg.timer, msg.err)
		return m, nil

	case timerActionMsg:
		if msg.err != nil {
			m.status = msg.verb + " failed: " + msg.err.Error()
			return m, nil
		}
		m.hasTimer = true
		m.timer = msg.timer
		m.status = fmt.Sprintf("timer %s: %s", msg.verb, msg.timer.SubjectName)
		if msg.verb == "started" {
			m.activeTab = tabTimer
		}
		return m, nil

	case sessionStoppedMsg:
		if msg.err != nil {
			m.status = "stop failed: " + msg.err.Error()
			return m, nil
		}
		m.hasTimer = false
		m.timer = sessiondto.TimerOutput{}
		m.status = fmt.Sprintf("saved %d minute session", msg.session.DurationMinutes)
		return m, m.reloadCmd()

	case discardedMsg:
		if msg.err != nil {
			m.status = "discard failed: " + msg.err.Error()
			return m, nil
		}
		m.hasTimer = false
		m.timer = sessiondto.TimerOutput{}
		m.status = "timer discarded"
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case subjectsview.LoadedMsg:
		var cmd tea.Cmd
		m.subjectsView, cmd = m.subjectsView.Update(msg)
		return m, cmd

	case dashboardview.LoadedMsg:
		var cmd tea.Cmd
		m.dashboardView, cmd = m.dashboardView.Update(msg)
		return m, cmd

	case historyview.LoadedMsg:
		var cmd tea.Cmd
		m.historyView, cmd = m.historyView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// The palette intercepts all keys while open.
		if m.palette.Visible() {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the subject list while its filter is open.
		if m.activeTab == tabSubjects && m.subjectsView.Filtering() {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case msg.String() == "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			return m, m.palette.Open()
		case key.Matches(msg, m.keys.Refresh):
			m.status = "refreshing"
			return m, m.reloadCmd()
		case key.Matches(msg, m.keys.Start):
			if m.activeTab == tabSubjects {
				if s, ok := m.subjectsView.Selected(); ok {
					return m, m.startCmd(s.ID)
				}
				m.status = "no subject selected"
				return m, nil
			}
		case key.Matches(msg, m.keys.Pause):
			return m, m.togglePauseCmd()
		case key.Matches(msg, m.keys.Stop):
			return m, m.stopCmd(nil, nil)
		}
	}

	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabSubjects:
		m.subjectsView, tabCmd = m.subjectsView.Update(msg)
	case tabDashboard:
		m.dashboardView, tabCmd = m.dashboardView.Update(msg)
	case tabHistory:
		m.historyView, tabCmd = m.historyView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) applyTimer(t sessiondto.TimerOutput, err error) {
	switch {
	case err == nil:
		m.hasTimer = true
		m.timer = t
	case errors.Is(err, apperrors.ErrNoActiveTimer):
		m.hasTimer = false
		m.timer = sessiondto.TimerOutput{}
	default:
		m.status = "timer check: " + err.Error()
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView(contentH)
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView(height int) string {
	switch m.activeTab {
	case tabSubjects:
		return m.subjectsView.View()
	case tabTimer:
		return m.renderTimer(height)
	case tabDashboard:
		return m.dashboardView.View()
	case tabHistory:
		return m.historyView.View()
	}
	return ""
}

func (m Model) renderTimer(height int) string {
	if !m.hasTimer {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("No timer running. Pick a subject and press s."))
	}
	t := m.timer
	state := theme.Good.Render("● running")
	if t.Paused {
		state = theme.Hot.Render("❚❚ paused")
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Swatch(t.SubjectColor)+" "+theme.Title.Render(t.SubjectName),
		theme.Clock.Render(t.Clock),
		state,
		theme.Muted.Render("started "+t.StartedAt.Local().Format("15:04")),
		"",
		theme.Muted.Render("p: pause/resume  x: stop and save  : command"),
	)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "studyplan  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.hasTimer {
		clock := "● " + m.timer.SubjectName + " " + m.timer.Clock
		if m.timer.Paused {
			clock += " (paused)"
		}
		left = theme.Hot.Render(clock) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  ::command  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	switch parts[0] {
	case "start":
		if len(parts) < 2 {
			m.status = "usage: start <subject-id>"
			return m, nil
		}
		return m, m.startCmd(parts[1])

	case "pause":
		return m, m.actionCmd("paused", m.session.Pause)

	case "resume":
		return m, m.actionCmd("resumed", m.session.Resume)

	case "stop":
		var focus *int
		var notes *string
		rest := parts[1:]
		if len(rest) > 0 {
			if n, err := strconv.Atoi(rest[0]); err == nil {
				focus = &n
				rest = rest[1:]
			}
		}
		if len(rest) > 0 {
			text := strings.Join(rest, " ")
			notes = &text
		}
		return m, m.stopCmd(notes, focus)

	case "discard":
		return m, m.discardCmd()

	case "refresh":
		m.status = "refreshing"
		return m, m.reloadCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.subjectsView, _ = m.subjectsView.Update(sz)
	m.dashboardView, _ = m.dashboardView.Update(sz)
	m.historyView, _ = m.historyView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) reloadCmd() tea.Cmd {
	return tea.Batch(m.subjectsView.Reload(), m.dashboardView.Reload(), m.historyView.Reload())
}

func (m Model) statusCmd() tea.Cmd {
	return func() tea.Msg {
		t, err := m.session.Status(context.Background())
		return timerMsg{timer: t, err: err}
	}
}

func (m Model) startCmd(subjectID string) tea.Cmd {
	return func() tea.Msg {
		t, err := m.session.Start(context.Background(), subjectID)
		return timerActionMsg{verb: "started", timer: t, err: err}
	}
}

func (m Model) togglePauseCmd() tea.Cmd {
	if !m.hasTimer {
		return nil
	}
	if m.timer.Paused {
		return m.actionCmd("resumed", m.session.Resume)
	}
	return m.actionCmd("paused", m.session.Pause)
}

func (m Model) actionCmd(verb string, fn func(context.Context) (sessiondto.TimerOutput, error)) tea.Cmd {
	return func() tea.Msg {
		t, err := fn(context.Background())
		return timerActionMsg{verb: verb, timer: t, err: err}
	}
}

func (m Model) stopCmd(notes *string, focus *int) tea.Cmd {
	return func() tea.Msg {
		s, err := m.session.Stop(context.Background(), notes, focus)
		return sessionStoppedMsg{session: s, err: err}
	}
}

func (m Model) discardCmd() tea.Cmd {
	return func() tea.Msg {
		return discardedMsg{err: m.session.Discard(context.Background())}
	}
}
