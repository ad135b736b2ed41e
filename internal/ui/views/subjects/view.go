package subjects

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	subjectdto "studyplan/internal/modules/subject/dto"
	"studyplan/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type SubjectPort interface {
	List(ctx context.Context) ([]subjectdto.SubjectOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Subjects []subjectdto.SubjectOutput
	Err      error
}

// ─── list item ───────────────────────────────────────────────────────────────

type subjectItem struct {
	subject subjectdto.SubjectOutput
}

func (i subjectItem) Title() string { return theme.Swatch(i.subject.Color) + " " + i.subject.Name }
func (i subjectItem) Description() string {
	return fmt.Sprintf("%gh/week  difficulty %d  priority %d",
		i.subject.TargetHoursPerWeek, i.subject.Difficulty, i.subject.Priority)
}
func (i subjectItem) FilterValue() string { return i.subject.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    SubjectPort
	list    list.Model
	preview viewport.Model
	spinner spinner.Model
	loading bool
	err     error
	width   int
	height  int
}

func New(port SubjectPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Subjects"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		preview: vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		items := make([]list.Item, len(msg.Subjects))
		for i, s := range msg.Subjects {
			items[i] = subjectItem{subject: s}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.preview.SetContent(m.renderDetail())

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.preview.SetContent(m.renderDetail())
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading subjects…")
	}
	if m.err != nil {
		return theme.Bad.Render("subjects: " + m.err.Error())
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(max(detailW-2, 1)).
		Height(max(m.height-2, 1)).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Reload fetches the subject list again.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return LoadedMsg{}
		}
		subjects, err := m.port.List(context.Background())
		return LoadedMsg{Subjects: subjects, Err: err}
	}
}

// Selected returns the highlighted subject, if any.
func (m Model) Selected() (subjectdto.SubjectOutput, bool) {
	if item, ok := m.list.SelectedItem().(subjectItem); ok {
		return item.subject, true
	}
	return subjectdto.SubjectOutput{}, false
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = max(detailW-4, 0)
	m.preview.Height = max(m.height-4, 0)
}

func (m Model) renderDetail() string {
	s, ok := m.Selected()
	if !ok {
		return theme.Muted.Render("No subjects yet. Add one with `studyplan subject add`.")
	}
	var sb strings.Builder
	sb.WriteString(theme.Swatch(s.Color) + " " + theme.Title.Render(s.Name) + "\n\n")
	sb.WriteString(theme.Muted.Render("id:         ") + s.ID + "\n")
	sb.WriteString(theme.Muted.Render("colour:     ") + s.Color + "\n")
	sb.WriteString(fmt.Sprintf("%s%d / 5\n", theme.Muted.Render("difficulty: "), s.Difficulty))
	sb.WriteString(fmt.Sprintf("%s%d / 5\n", theme.Muted.Render("priority:   "), s.Priority))
	sb.WriteString(fmt.Sprintf("%s%gh\n", theme.Muted.Render("weekly:     "), s.TargetHoursPerWeek))
	daily := fmt.Sprintf("%gh", s.DailyTarget)
	if s.TargetHoursPerDay == nil {
		daily += theme.Muted.Render(" (from weekly)")
	}
	sb.WriteString(theme.Muted.Render("daily:      ") + daily + "\n")
	sb.WriteString("\n" + theme.Muted.Render("s: start timer for this subject"))
	return sb.String()
}
