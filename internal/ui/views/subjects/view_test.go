package subjects

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	subjectdto "studyplan/internal/modules/subject/dto"
)

type fakeSubjects []subjectdto.SubjectOutput

func (f fakeSubjects) List(context.Context) ([]subjectdto.SubjectOutput, error) {
	return f, nil
}

func TestSelectionAndDetail(t *testing.T) {
	t.Parallel()
	daily := 1.5
	port := fakeSubjects{
		{ID: "math", Name: "Math", Color: "#3b82f6", Difficulty: 4, Priority: 5, TargetHoursPerWeek: 7, DailyTarget: 1},
		{ID: "chem", Name: "Chemistry", Color: "#10b981", Difficulty: 3, Priority: 3, TargetHoursPerWeek: 5, TargetHoursPerDay: &daily, DailyTarget: 1.5},
	}
	m := New(port)
	if _, ok := m.Selected(); ok {
		t.Fatalf("nothing should be selected before loading")
	}
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m, _ = m.Update(m.Reload()())

	s, ok := m.Selected()
	if !ok || s.ID != "math" {
		t.Fatalf("selected = %+v, %v", s, ok)
	}
	detail := m.renderDetail()
	for _, want := range []string{"Math", "4 / 5", "7h", "(from weekly)"} {
		if !strings.Contains(detail, want) {
			t.Fatalf("detail missing %q:\n%s", want, detail)
		}
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if s, _ := m.Selected(); s.ID != "chem" {
		t.Fatalf("after down selected = %q", s.ID)
	}
	if strings.Contains(m.renderDetail(), "(from weekly)") {
		t.Fatalf("explicit daily target should not be marked as derived")
	}
}

func TestEmptyList(t *testing.T) {
	t.Parallel()
	m := New(fakeSubjects{})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m, _ = m.Update(m.Reload()())
	if !strings.Contains(m.renderDetail(), "No subjects yet") {
		t.Fatalf("detail = %q", m.renderDetail())
	}
	if m.Filtering() {
		t.Fatalf("filter should be closed")
	}
}
