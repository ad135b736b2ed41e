package service

import (
	"context"
	"fmt"
	"strings"

	"studyplan/internal/modules/schedule/domain"
	scheduleout "studyplan/internal/modules/schedule/port/out"
	apperrors "studyplan/internal/platform/errors"
	"studyplan/internal/platform/id"
)

type ScheduleService struct {
	idGen id.Generator
	store scheduleout.SlotStore
}

func NewScheduleService(idGen id.Generator, store scheduleout.SlotStore) *ScheduleService {
	return &ScheduleService{idGen: idGen, store: store}
}

func (s *ScheduleService) Add(ctx context.Context, slot domain.Slot) (domain.Slot, error) {
	slot.ID = s.idGen.New()
	slot.SubjectID = strings.TrimSpace(slot.SubjectID)
	slot.StartTime = strings.TrimSpace(slot.StartTime)
	slot.EndTime = strings.TrimSpace(slot.EndTime)
	slot.IsActive = true
	if err := slot.Validate(); err != nil {
		return domain.Slot{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	slots, err := s.store.Load(ctx)
	if err != nil {
		return domain.Slot{}, err
	}
	if err := s.store.Save(ctx, append(slots, slot)); err != nil {
		return domain.Slot{}, err
	}
	return slot, nil
}

func (s *ScheduleService) Toggle(ctx context.Context, id string) (domain.Slot, error) {
	slots, err := s.store.Load(ctx)
	if err != nil {
		return domain.Slot{}, err
	}
	for i := range slots {
		if slots[i].ID != id {
			continue
		}
		slots[i].IsActive = !slots[i].IsActive
		if err := s.store.Save(ctx, slots); err != nil {
			return domain.Slot{}, err
		}
		return slots[i], nil
	}
	return domain.Slot{}, fmt.Errorf("slot %s: %w", id, apperrors.ErrNotFound)
}

func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	slots, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	kept := slots[:0]
	for _, slot := range slots {
		if slot.ID != id {
			kept = append(kept, slot)
		}
	}
	if len(kept) == len(slots) {
		return fmt.Errorf("slot %s: %w", id, apperrors.ErrNotFound)
	}
	return s.store.Save(ctx, kept)
}

// List returns slots in day and start order, optionally for one day only.
func (s *ScheduleService) List(ctx context.Context, day *int) ([]domain.Slot, error) {
	slots, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Slot, 0, len(slots))
	for _, slot := range slots {
		if day == nil || slot.DayOfWeek == *day {
			out = append(out, slot)
		}
	}
	domain.Sort(out)
	return out, nil
}
