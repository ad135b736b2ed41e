package domain

import (
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	exam := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name    string
		goal    Goal
		wantErr bool
	}{
		{name: "plain", goal: Goal{ID: "g1", Title: "Finish chapter 5"}},
		{name: "missing title", goal: Goal{ID: "g1", Title: "  "}, wantErr: true},
		{name: "exam without date", goal: Goal{ID: "g1", Title: "Finals", IsExam: true}, wantErr: true},
		{name: "exam with bad time", goal: Goal{ID: "g1", Title: "Finals", IsExam: true, ExamDate: &exam, ExamTime: "25:00"}, wantErr: true},
		{name: "exam", goal: Goal{ID: "g1", Title: "Finals", IsExam: true, ExamDate: &exam, ExamTime: "09:30"}},
		{name: "negative hours", goal: Goal{ID: "g1", Title: "Read", StudyHoursTarget: -1}, wantErr: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.goal.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestToggleStampsCompletion(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	g := Goal{ID: "g1", Title: "Revise"}.Toggle(now)
	if !g.Completed || g.CompletedAt == nil || !g.CompletedAt.Equal(now) {
		t.Fatalf("expected completion stamp, got %+v", g)
	}
	g = g.Toggle(now.Add(time.Hour))
	if g.Completed || g.CompletedAt != nil {
		t.Fatalf("expected completion cleared, got %+v", g)
	}
}

func TestFilterApply(t *testing.T) {
	t.Parallel()
	early := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	late := early.AddDate(0, 1, 0)
	goals := []Goal{
		{ID: "a", Title: "a"},
		{ID: "b", Title: "b", Completed: true},
		{ID: "c", Title: "c", IsExam: true, ExamDate: &late},
		{ID: "d", Title: "d", IsExam: true, ExamDate: &early, Completed: true},
	}
	cases := []struct {
		filter Filter
		want   []string
	}{
		{FilterAll, []string{"a", "b", "c", "d"}},
		{FilterActive, []string{"a", "c"}},
		{FilterCompleted, []string{"b", "d"}},
		{FilterExams, []string{"d", "c"}},
	}
	for _, tc := range cases {
		got := tc.filter.Apply(goals)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: got %d goals, want %d", tc.filter, len(got), len(tc.want))
		}
		for i := range got {
			if got[i].ID != tc.want[i] {
				t.Fatalf("%s: position %d is %s, want %s", tc.filter, i, got[i].ID, tc.want[i])
			}
		}
	}
	if _, err := ParseFilter("someday"); err == nil {
		t.Fatalf("expected unknown filter error")
	}
	if f, err := ParseFilter(""); err != nil || f != FilterAll {
		t.Fatalf("empty filter should mean all, got %q %v", f, err)
	}
}

func TestSubjectsDeduplicates(t *testing.T) {
	t.Parallel()
	g := Goal{SubjectID: "math", SubjectIDs: []string{"math", "chem", ""}}
	got := g.Subjects()
	if len(got) != 2 || got[0] != "math" || got[1] != "chem" {
		t.Fatalf("unexpected subjects %v", got)
	}
}

func TestFilterExamsSortsUndatedLast(t *testing.T) {
	t.Parallel()
	date := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	goals := []Goal{
		{ID: "undated", Title: "Oral", IsExam: true},
		{ID: "dated", Title: "Finals", IsExam: true, ExamDate: &date},
		{ID: "undated-2", Title: "Lab", IsExam: true},
	}
	got := FilterExams.Apply(goals)
	want := []string{"dated", "undated", "undated-2"}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("position %d is %s, want %s", i, got[i].ID, want[i])
		}
	}
}
