package service

import (
	"context"
	"fmt"
	"strings"

	"studyplan/internal/modules/subject/domain"
	subjectout "studyplan/internal/modules/subject/port/out"
	apperrors "studyplan/internal/platform/errors"
	"studyplan/internal/platform/id"
)

type SubjectService struct {
	idGen id.Generator
	store subjectout.SubjectStore
}

func NewSubjectService(idGen id.Generator, store subjectout.SubjectStore) *SubjectService {
	return &SubjectService{idGen: idGen, store: store}
}

func (s *SubjectService) Add(ctx context.Context, subject domain.Subject) (domain.Subject, error) {
	subject.ID = s.idGen.New()
	subject.Name = strings.TrimSpace(subject.Name)
	if subject.Color == "" {
		subject.Color = domain.Palette[0]
	}
	if subject.Difficulty == 0 {
		subject.Difficulty = domain.DefaultDifficulty
	}
	if subject.Priority == 0 {
		subject.Priority = domain.DefaultPriority
	}
	if err := subject.Validate(); err != nil {
		return domain.Subject{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	subjects, err := s.store.Load(ctx)
	if err != nil {
		return domain.Subject{}, err
	}
	if err := s.store.Save(ctx, append(subjects, subject)); err != nil {
		return domain.Subject{}, err
	}
	return subject, nil
}

func (s *SubjectService) Update(ctx context.Context, id string, patch domain.Patch) (domain.Subject, error) {
	subjects, err := s.store.Load(ctx)
	if err != nil {
		return domain.Subject{}, err
	}
	for i, existing := range subjects {
		if existing.ID != id {
			continue
		}
		updated := existing.Apply(patch)
		if err := updated.Validate(); err != nil {
			return domain.Subject{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
		subjects[i] = updated
		if err := s.store.Save(ctx, subjects); err != nil {
			return domain.Subject{}, err
		}
		return updated, nil
	}
	return domain.Subject{}, fmt.Errorf("subject %s: %w", id, apperrors.ErrNotFound)
}

func (s *SubjectService) Delete(ctx context.Context, id string) error {
	subjects, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	kept := subjects[:0]
	for _, subject := range subjects {
		if subject.ID != id {
			kept = append(kept, subject)
		}
	}
	if len(kept) == len(subjects) {
		return fmt.Errorf("subject %s: %w", id, apperrors.ErrNotFound)
	}
	return s.store.Save(ctx, kept)
}

func (s *SubjectService) List(ctx context.Context) ([]domain.Subject, error) {
	return s.store.Load(ctx)
}

func (s *SubjectService) Get(ctx context.Context, id string) (domain.Subject, error) {
	subjects, err := s.store.Load(ctx)
	if err != nil {
		return domain.Subject{}, err
	}
	subject, ok := domain.Find(subjects, id)
	if !ok {
		return domain.Subject{}, fmt.Errorf("subject %s: %w", id, apperrors.ErrNotFound)
	}
	return subject, nil
}
