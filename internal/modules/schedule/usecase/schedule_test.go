package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"testing"

	scheduleout "studyplan/internal/modules/schedule/adapter/out"
	"studyplan/internal/modules/schedule/dto"
	schedulein "studyplan/internal/modules/schedule/port/in"
	"studyplan/internal/modules/schedule/service"
	"studyplan/internal/modules/schedule/usecase"
	apperrors "studyplan/internal/platform/errors"
	"studyplan/internal/platform/kvstore"
)

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return "slot-" + strconv.Itoa(s.n)
}

func newInteractor(t *testing.T) schedulein.Usecase {
	t.Helper()
	store, err := kvstore.Open(filepath.Join(t.TempDir(), ".studyplan", "studyplan.db"))
	if err != nil {
		t.Fatalf("open kv store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return usecase.NewInteractor(service.NewScheduleService(&seqID{}, scheduleout.NewKVSlotStore(store, nil)), nil)
}

func TestAddListToggleDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newInteractor(t)

	inputs := []dto.AddSlotInput{
		{SubjectID: "chem", DayOfWeek: 3, StartTime: "14:00", EndTime: "15:00"},
		{SubjectID: "math", DayOfWeek: 1, StartTime: "16:00", EndTime: "17:30"},
		{SubjectID: "math", DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
	}
	for _, in := range inputs {
		slot, err := uc.AddSlot(ctx, in)
		if err != nil {
			t.Fatalf("add slot: %v", err)
		}
		if !slot.IsActive {
			t.Fatalf("new slots start active: %+v", slot)
		}
	}
	if _, err := uc.AddSlot(ctx, dto.AddSlotInput{SubjectID: "math", DayOfWeek: 1, StartTime: "10:00", EndTime: "09:00"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	all, err := uc.ListSlots(ctx, dto.ListSlotsInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	order := []string{"slot-3", "slot-2", "slot-1"}
	for i, slot := range all {
		if slot.ID != order[i] {
			t.Fatalf("position %d: got %s want %s", i, slot.ID, order[i])
		}
	}
	if all[0].Day != "Monday" {
		t.Fatalf("unexpected day label %q", all[0].Day)
	}

	monday := 1
	onMonday, err := uc.ListSlots(ctx, dto.ListSlotsInput{Day: &monday})
	if err != nil {
		t.Fatalf("list monday: %v", err)
	}
	if len(onMonday) != 2 {
		t.Fatalf("expected 2 monday slots, got %d", len(onMonday))
	}

	toggled, err := uc.ToggleSlot(ctx, "slot-1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if toggled.IsActive {
		t.Fatalf("toggle should deactivate")
	}
	if err := uc.DeleteSlot(ctx, "slot-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.ToggleSlot(ctx, "slot-1"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	bad := 9
	if _, err := uc.ListSlots(ctx, dto.ListSlotsInput{Day: &bad}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid day, got %v", err)
	}
}
