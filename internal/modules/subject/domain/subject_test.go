package domain_test

import (
	"testing"

	"studyplan/internal/modules/subject/domain"
)

func ptr[T any](v T) *T { return &v }

func TestSubjectValidate(t *testing.T) {
	t.Parallel()
	base := domain.Subject{ID: "s-1", Name: "Maths", Color: "#3b82f6", Difficulty: 3, Priority: 3, TargetHoursPerWeek: 5}
	if err := base.Validate(); err != nil {
		t.Fatalf("subject should be valid: %v", err)
	}
	cases := map[string]domain.Subject{}
	missingName := base
	missingName.Name = " "
	cases["missing name"] = missingName
	badColor := base
	badColor.Color = "blue"
	cases["bad color"] = badColor
	badDifficulty := base
	badDifficulty.Difficulty = 6
	cases["difficulty"] = badDifficulty
	badPriority := base
	badPriority.Priority = 0
	cases["priority"] = badPriority
	negativeWeek := base
	negativeWeek.TargetHoursPerWeek = -1
	cases["weekly target"] = negativeWeek
	negativeDay := base
	negativeDay.TargetHoursPerDay = ptr(-0.5)
	cases["daily target"] = negativeDay
	for name, subject := range cases {
		if err := subject.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestDailyTargetFallsBackToWeeklyShare(t *testing.T) {
	t.Parallel()
	s := domain.Subject{TargetHoursPerWeek: 7}
	if got := s.DailyTarget(); got != 1 {
		t.Fatalf("expected 1h per day, got %.2f", got)
	}
	s.TargetHoursPerDay = ptr(2.5)
	if got := s.DailyTarget(); got != 2.5 {
		t.Fatalf("expected explicit daily target, got %.2f", got)
	}
}

func TestApplyPatch(t *testing.T) {
	t.Parallel()
	s := domain.Subject{ID: "s-1", Name: "Maths", Color: "#3b82f6", Difficulty: 3, Priority: 3, TargetHoursPerWeek: 5, TargetHoursPerDay: ptr(1.0)}
	updated := s.Apply(domain.Patch{Name: ptr("  Algebra "), Priority: ptr(5)})
	if updated.Name != "Algebra" || updated.Priority != 5 || updated.Difficulty != 3 {
		t.Fatalf("unexpected patched subject: %+v", updated)
	}
	cleared := s.Apply(domain.Patch{ClearDailyTarget: true})
	if cleared.TargetHoursPerDay != nil {
		t.Fatalf("daily target should be cleared")
	}
	if s.TargetHoursPerDay == nil {
		t.Fatalf("apply must not mutate the receiver")
	}
}
