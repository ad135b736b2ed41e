package service

import (
	"context"
	"fmt"
	"strings"

	"studyplan/internal/modules/goal/domain"
	goalout "studyplan/internal/modules/goal/port/out"
	"studyplan/internal/platform/clock"
	apperrors "studyplan/internal/platform/errors"
	"studyplan/internal/platform/id"
)

type GoalService struct {
	clock clock.Clock
	idGen id.Generator
	store goalout.GoalStore
}

func NewGoalService(clock clock.Clock, idGen id.Generator, store goalout.GoalStore) *GoalService {
	return &GoalService{clock: clock, idGen: idGen, store: store}
}

func (s *GoalService) Add(ctx context.Context, goal domain.Goal) (domain.Goal, error) {
	goal.ID = s.idGen.New()
	goal.Title = strings.TrimSpace(goal.Title)
	goal.SubjectID = strings.TrimSpace(goal.SubjectID)
	goal.Completed = false
	goal.CompletedAt = nil
	if err := goal.Validate(); err != nil {
		return domain.Goal{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	goals, err := s.store.Load(ctx)
	if err != nil {
		return domain.Goal{}, err
	}
	if err := s.store.Save(ctx, append(goals, goal)); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

func (s *GoalService) Toggle(ctx context.Context, id string) (domain.Goal, error) {
	goals, err := s.store.Load(ctx)
	if err != nil {
		return domain.Goal{}, err
	}
	for i, goal := range goals {
		if goal.ID != id {
			continue
		}
		goals[i] = goal.Toggle(s.clock.Now())
		if err := s.store.Save(ctx, goals); err != nil {
			return domain.Goal{}, err
		}
		return goals[i], nil
	}
	return domain.Goal{}, fmt.Errorf("goal %s: %w", id, apperrors.ErrNotFound)
}

func (s *GoalService) Delete(ctx context.Context, id string) error {
	goals, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	kept := goals[:0]
	for _, goal := range goals {
		if goal.ID != id {
			kept = append(kept, goal)
		}
	}
	if len(kept) == len(goals) {
		return fmt.Errorf("goal %s: %w", id, apperrors.ErrNotFound)
	}
	return s.store.Save(ctx, kept)
}

func (s *GoalService) List(ctx context.Context, filter domain.Filter) ([]domain.Goal, error) {
	goals, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(goals), nil
}
