package out

import (
	"go.uber.org/zap"

	"studyplan/internal/modules/schedule/domain"
	scheduleout "studyplan/internal/modules/schedule/port/out"
	"studyplan/internal/platform/kvstore"
)

func NewKVSlotStore(store *kvstore.Store, logger *zap.Logger) scheduleout.SlotStore {
	return kvstore.NewCollection[domain.Slot](store, kvstore.KeySchedule, logger)
}
