package out

import (
	"go.uber.org/zap"

	"studyplan/internal/modules/goal/domain"
	goalout "studyplan/internal/modules/goal/port/out"
	"studyplan/internal/platform/kvstore"
)

func NewKVGoalStore(store *kvstore.Store, logger *zap.Logger) goalout.GoalStore {
	return kvstore.NewCollection[domain.Goal](store, kvstore.KeyGoals, logger)
}
