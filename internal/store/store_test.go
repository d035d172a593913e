package store_test

import (
	"context"
	"testing"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/database"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/migrations"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/store"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestKV(t *testing.T, namespace string) *store.KV {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.Run(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return store.New(db, namespace)
}

func TestSaveAndLoad(t *testing.T) {
	kv := newTestKV(t, "games")
	ctx := context.Background()

	if err := kv.Save(ctx, "abc", doc{Name: "first", Count: 3}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var got doc
	found, err := kv.Load(ctx, "abc", &got)
	if err != nil || !found {
		t.Fatalf("Load = %v, %v", found, err)
	}
	if got.Name != "first" || got.Count != 3 {
		t.Errorf("loaded %+v", got)
	}

	// Upsert: last write wins.
	if err := kv.Save(ctx, "abc", doc{Name: "second", Count: 4}); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	found, err = kv.Load(ctx, "abc", &got)
	if err != nil || !found {
		t.Fatalf("second Load = %v, %v", found, err)
	}
	if got.Name != "second" {
		t.Errorf("loaded %+v after upsert", got)
	}
}

func TestLoadMissing(t *testing.T) {
	kv := newTestKV(t, "games")

	var got doc
	found, err := kv.Load(context.Background(), "nope", &got)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Fatal("Load reported data for a missing key")
	}
}

func TestNamespacesAreIsolated(t *testing.T) {
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	if err := migrations.Run(db); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	a := store.New(db, "a")
	b := store.New(db, "b")

	if err := a.Save(ctx, "k", doc{Name: "in-a"}); err != nil {
		t.Fatal(err)
	}

	var got doc
	found, err := b.Load(ctx, "k", &got)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("key leaked across namespaces")
	}
}

func TestDelete(t *testing.T) {
	kv := newTestKV(t, "games")
	ctx := context.Background()

	kv.Save(ctx, "abc", doc{Name: "x"})
	if err := kv.Delete(ctx, "abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	var got doc
	if found, _ := kv.Load(ctx, "abc", &got); found {
		t.Fatal("key survived deletion")
	}

	// Deleting a missing key is a no-op.
	if err := kv.Delete(ctx, "abc"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}

func TestKeys(t *testing.T) {
	kv := newTestKV(t, "games")
	ctx := context.Background()

	for _, k := range []string{"c", "a", "b"} {
		if err := kv.Save(ctx, k, doc{Name: k}); err != nil {
			t.Fatal(err)
		}
	}

	keys, err := kv.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("Keys = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys = %v, want %v", keys, want)
		}
	}
}

func TestCorruptDataLoadsAsAbsent(t *testing.T) {
	kv := newTestKV(t, "games")
	ctx := context.Background()

	// A stored document that doesn't unmarshal into the destination type.
	if err := kv.Save(ctx, "abc", []int{1, 2, 3}); err != nil {
		t.Fatal(err)
	}

	var got doc
	found, err := kv.Load(ctx, "abc", &got)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Fatal("corrupt document reported as found")
	}
}
