package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"testing"

	subjectout "studyplan/internal/modules/subject/adapter/out"
	"studyplan/internal/modules/subject/dto"
	subjectin "studyplan/internal/modules/subject/port/in"
	"studyplan/internal/modules/subject/service"
	"studyplan/internal/modules/subject/usecase"
	apperrors "studyplan/internal/platform/errors"
	"studyplan/internal/platform/kvstore"
)

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return "subj-" + strconv.Itoa(s.n)
}

func ptr[T any](v T) *T { return &v }

func newInteractor(t *testing.T) subjectin.Usecase {
	t.Helper()
	store, err := kvstore.Open(filepath.Join(t.TempDir(), ".studyplan", "studyplan.db"))
	if err != nil {
		t.Fatalf("open kv store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return usecase.NewInteractor(service.NewSubjectService(&seqID{}, subjectout.NewKVSubjectStore(store, nil)))
}

func TestAddAppliesDefaultsAndRoundTrips(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newInteractor(t)

	added, err := uc.AddSubject(ctx, dto.AddSubjectInput{Name: "  Mathematics "})
	if err != nil {
		t.Fatalf("add subject: %v", err)
	}
	if added.ID != "subj-1" || added.Name != "Mathematics" {
		t.Fatalf("unexpected subject: %+v", added)
	}
	if added.Color != "#3b82f6" || added.Difficulty != 3 || added.Priority != 3 || added.TargetHoursPerWeek != 5 {
		t.Fatalf("defaults not applied: %+v", added)
	}

	got, err := uc.GetSubject(ctx, added.ID)
	if err != nil {
		t.Fatalf("get subject: %v", err)
	}
	if got.Name != "Mathematics" || got.Color != added.Color {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t)
	for name, input := range map[string]dto.AddSubjectInput{
		"empty name": {Name: ""},
		"bad color":  {Name: "Chem", Color: "red"},
		"difficulty": {Name: "Chem", Difficulty: 9},
		"target":     {Name: "Chem", TargetHoursPerWeek: ptr(-2.0)},
	} {
		if _, err := uc.AddSubject(context.Background(), input); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("%s: expected invalid input, got %v", name, err)
		}
	}
	list, err := uc.ListSubjects(context.Background())
	if err != nil || len(list) != 0 {
		t.Fatalf("invalid subjects must not be stored: %+v %v", list, err)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newInteractor(t)
	first, err := uc.AddSubject(ctx, dto.AddSubjectInput{Name: "Physics"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := uc.AddSubject(ctx, dto.AddSubjectInput{Name: "History", Color: "#ef4444"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, err := uc.UpdateSubject(ctx, dto.UpdateSubjectInput{ID: first.ID, TargetHoursPerDay: ptr(2.0), Priority: ptr(5)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.DailyTarget != 2 || updated.Priority != 5 || updated.Name != "Physics" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if _, err := uc.UpdateSubject(ctx, dto.UpdateSubjectInput{ID: first.ID, Difficulty: ptr(0)}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("invalid update should fail, got %v", err)
	}
	if _, err := uc.UpdateSubject(ctx, dto.UpdateSubjectInput{ID: "missing", Name: ptr("x")}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := uc.DeleteSubject(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.DeleteSubject(ctx, first.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("second delete should report not found, got %v", err)
	}
	list, err := uc.ListSubjects(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != second.ID {
		t.Fatalf("expected only %s to remain, got %+v", second.ID, list)
	}
}
