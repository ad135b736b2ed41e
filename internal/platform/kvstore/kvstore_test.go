package kvstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"studyplan/internal/platform/kvstore"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func openStore(t *testing.T) *kvstore.Store {
	t.Helper()
	store, err := kvstore.Open(filepath.Join(t.TempDir(), ".studyplan", "studyplan.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCollectionRoundTripAndMissingKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	coll := kvstore.NewCollection[record](openStore(t), kvstore.KeySubjects, nil)

	items, err := coll.Load(ctx)
	if err != nil {
		t.Fatalf("load missing key: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("missing key must load as empty non-nil slice, got %#v", items)
	}

	if err := coll.Save(ctx, []record{{ID: "a", Name: "Maths"}, {ID: "b", Name: "Physics"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := coll.Save(ctx, []record{{ID: "b", Name: "Physics"}}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	items, err = coll.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 1 || items[0].ID != "b" {
		t.Fatalf("save must replace the whole array, got %+v", items)
	}
}

func TestCollectionReadsCorruptValueAsEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openStore(t)
	if err := store.Set(ctx, kvstore.KeyGoals, []byte("{not json")); err != nil {
		t.Fatalf("set: %v", err)
	}
	items, err := kvstore.NewCollection[record](store, kvstore.KeyGoals, nil).Load(ctx)
	if err != nil {
		t.Fatalf("corrupt value should not error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty slice, got %+v", items)
	}
}

func TestClearAllRemovesOnlyPlannerKeys(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openStore(t)
	for _, key := range append([]string{"theme"}, kvstore.PlannerKeys...) {
		if err := store.Set(ctx, key, []byte("[]")); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}
	if err := store.ClearAll(ctx); err != nil {
		t.Fatalf("clear all: %v", err)
	}
	keys, err := store.Keys(ctx)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != "theme" {
		t.Fatalf("expected only foreign key to remain, got %v", keys)
	}
	if _, ok, err := store.Get(ctx, kvstore.KeySessions); err != nil || ok {
		t.Fatalf("sessions key should be gone, ok=%t err=%v", ok, err)
	}
}
