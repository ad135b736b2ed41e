package history

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "studyplan/internal/modules/session/dto"
	"studyplan/internal/ui/theme"
)

const limit = 50

// ─── port ────────────────────────────────────────────────────────────────────

type HistoryPort interface {
	History(ctx context.Context, limit int) ([]sessiondto.HistoryEntry, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Entries []sessiondto.HistoryEntry
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    HistoryPort
	table   table.Model
	entries []sessiondto.HistoryEntry
	err     error
	width   int
	height  int
}

func New(port HistoryPort) Model {
	t := table.New(
		table.WithColumns(columns()),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Surface1).
		BorderBottom(true).
		Foreground(theme.Sapphire)
	styles.Selected = styles.Selected.Foreground(theme.Base).Background(theme.Lavender)
	t.SetStyles(styles)
	return Model{port: port, table: t}
}

func (m Model) Init() tea.Cmd { return m.Reload() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(max(msg.Height-2, 1))
		return m, nil

	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.entries = msg.Entries
			m.table.SetRows(Rows(msg.Entries))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.err != nil {
		return theme.Bad.Render("history: " + m.err.Error())
	}
	if len(m.entries) == 0 {
		return theme.Muted.Render("No sessions recorded yet.")
	}
	return m.table.View()
}

// Reload fetches the most recent sessions.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return LoadedMsg{}
		}
		entries, err := m.port.History(context.Background(), limit)
		return LoadedMsg{Entries: entries, Err: err}
	}
}

// Rows converts history entries into table rows, newest first as given.
func Rows(entries []sessiondto.HistoryEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		focus := "-"
		if e.FocusRating > 0 {
			focus = fmt.Sprintf("%d/5", e.FocusRating)
		}
		rows[i] = table.Row{
			e.StartTime.Local().Format("Mon Jan 2 15:04"),
			e.SubjectName,
			fmt.Sprintf("%dm", e.DurationMinutes),
			focus,
			e.Notes,
		}
	}
	return rows
}

func columns() []table.Column {
	return []table.Column{
		{Title: "Started", Width: 16},
		{Title: "Subject", Width: 18},
		{Title: "Length", Width: 7},
		{Title: "Focus", Width: 6},
		{Title: "Notes", Width: 30},
	}
}
