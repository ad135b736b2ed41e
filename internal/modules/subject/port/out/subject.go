package out

import (
	"context"

	"studyplan/internal/modules/subject/domain"
)

// SubjectStore persists the whole subject array at once.
type SubjectStore interface {
	Load(ctx context.Context) ([]domain.Subject, error)
	Save(ctx context.Context, subjects []domain.Subject) error
}
