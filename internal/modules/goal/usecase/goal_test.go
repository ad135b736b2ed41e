package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	goalout "studyplan/internal/modules/goal/adapter/out"
	"studyplan/internal/modules/goal/dto"
	goalin "studyplan/internal/modules/goal/port/in"
	"studyplan/internal/modules/goal/service"
	"studyplan/internal/modules/goal/usecase"
	"studyplan/internal/platform/clock"
	apperrors "studyplan/internal/platform/errors"
	"studyplan/internal/platform/kvstore"
)

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return "goal-" + strconv.Itoa(s.n)
}

var now = time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)

func newInteractor(t *testing.T) goalin.Usecase {
	t.Helper()
	store, err := kvstore.Open(filepath.Join(t.TempDir(), ".studyplan", "studyplan.db"))
	if err != nil {
		t.Fatalf("open kv store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	svc := service.NewGoalService(clock.Fixed(now), &seqID{}, goalout.NewKVGoalStore(store, nil))
	return usecase.NewInteractor(svc)
}

func TestAddToggleDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newInteractor(t)

	if _, err := uc.AddGoal(ctx, dto.AddGoalInput{Title: " "}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	goal, err := uc.AddGoal(ctx, dto.AddGoalInput{Title: "Complete Chapter 5", SubjectID: "math"})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if goal.ID != "goal-1" || goal.Completed {
		t.Fatalf("unexpected goal: %+v", goal)
	}

	toggled, err := uc.ToggleGoal(ctx, goal.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.Completed || toggled.CompletedAt == nil || !toggled.CompletedAt.Equal(now) {
		t.Fatalf("expected completed goal, got %+v", toggled)
	}
	if _, err := uc.ToggleGoal(ctx, "missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	completed, err := uc.ListGoals(ctx, "completed")
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(completed) != 1 {
		t.Fatalf("expected one completed goal, got %d", len(completed))
	}

	if err := uc.DeleteGoal(ctx, goal.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.DeleteGoal(ctx, goal.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestExamsAndFilters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newInteractor(t)

	if _, err := uc.AddGoal(ctx, dto.AddGoalInput{Title: "Finals", IsExam: true}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("exam without date should fail, got %v", err)
	}
	examDate := now.AddDate(0, 2, 0)
	exam, err := uc.AddGoal(ctx, dto.AddGoalInput{
		Title:        "Chemistry final",
		SubjectIDs:   []string{"chem", "math"},
		IsExam:       true,
		ExamDate:     &examDate,
		ExamTime:     "09:30",
		ExamLocation: "Hall B",
	})
	if err != nil {
		t.Fatalf("add exam: %v", err)
	}
	if _, err := uc.AddGoal(ctx, dto.AddGoalInput{Title: "Read notes"}); err != nil {
		t.Fatalf("add goal: %v", err)
	}

	exams, err := uc.ListGoals(ctx, "exams")
	if err != nil {
		t.Fatalf("list exams: %v", err)
	}
	if len(exams) != 1 || exams[0].ID != exam.ID || exams[0].ExamLocation != "Hall B" {
		t.Fatalf("unexpected exams: %+v", exams)
	}
	active, err := uc.ListGoals(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(active))
	}
	if _, err := uc.ListGoals(ctx, "later"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid filter, got %v", err)
	}
}
