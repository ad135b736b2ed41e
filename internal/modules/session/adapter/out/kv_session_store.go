package out

import (
	"go.uber.org/zap"

	"studyplan/internal/modules/session/domain"
	sessionout "studyplan/internal/modules/session/port/out"
	"studyplan/internal/platform/kvstore"
)

func NewKVSessionStore(store *kvstore.Store, logger *zap.Logger) sessionout.SessionStore {
	return kvstore.NewCollection[domain.Session](store, kvstore.KeySessions, logger)
}
