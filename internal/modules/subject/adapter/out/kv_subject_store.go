package out

import (
	"go.uber.org/zap"

	"studyplan/internal/modules/subject/domain"
	subjectout "studyplan/internal/modules/subject/port/out"
	"studyplan/internal/platform/kvstore"
)

func NewKVSubjectStore(store *kvstore.Store, logger *zap.Logger) subjectout.SubjectStore {
	return kvstore.NewCollection[domain.Subject](store, kvstore.KeySubjects, logger)
}
