package docstore_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jmorales/ciclofit/internal/docstore"
	"github.com/jmorales/ciclofit/internal/errors"
	"github.com/jmorales/ciclofit/internal/testhelpers"
)

func newTestStore(t *testing.T) *docstore.SQLite {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	store, err := docstore.NewSQLite(t.Context(), ":memory:", logger)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Failed to close store: %v", err)
		}
	})
	return store
}

func decode(t *testing.T, raw json.RawMessage) map[string]any {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Failed to unmarshal document: %v", err)
	}
	return doc
}

func TestSQLite_CloseStopsBackgroundWork(t *testing.T) {
	t.Parallel()

	// The store is created and closed inside a subtest whose log writer
	// rejects writes after the subtest ends. Close must therefore leave no
	// goroutine behind that could still log through it.
	t.Run("open and close", func(t *testing.T) {
		logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
		store, err := docstore.NewSQLite(t.Context(), ":memory:", logger)
		if err != nil {
			t.Fatalf("Failed to open store: %v", err)
		}
		if err := store.Set(t.Context(), "users/a/profile", map[string]any{"name": "Ana"}, false); err != nil {
			t.Fatalf("Failed to set document: %v", err)
		}
		if err := store.Close(); err != nil {
			t.Fatalf("Failed to close store: %v", err)
		}
	})
}

func TestSQLite_SetGet(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()

	if err := store.Set(ctx, "users/a/profile", map[string]any{"name": "Ana", "level": "intermedio"}, false); err != nil {
		t.Fatalf("Failed to set document: %v", err)
	}

	raw, err := store.Get(ctx, "users/a/profile")
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}
	want := map[string]any{"name": "Ana", "level": "intermedio"}
	if diff := cmp.Diff(want, decode(t, raw)); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLite_GetMissing(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	_, err := store.Get(t.Context(), "users/a/missing")
	if !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLite_SetMerge(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()

	if err := store.Set(ctx, "users/a/profile", map[string]any{"name": "Ana", "level": "intermedio"}, false); err != nil {
		t.Fatalf("Failed to set document: %v", err)
	}
	if err := store.Set(ctx, "users/a/profile", map[string]any{"level": "avanzado"}, true); err != nil {
		t.Fatalf("Failed to merge document: %v", err)
	}

	raw, err := store.Get(ctx, "users/a/profile")
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}
	want := map[string]any{"name": "Ana", "level": "avanzado"}
	if diff := cmp.Diff(want, decode(t, raw)); diff != "" {
		t.Errorf("merged document mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLite_SetMergeMissingCreates(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()

	if err := store.Set(ctx, "users/a/profile", map[string]any{"name": "Ana"}, true); err != nil {
		t.Fatalf("Failed to merge into missing document: %v", err)
	}
	if _, err := store.Get(ctx, "users/a/profile"); err != nil {
		t.Errorf("expected document to exist after merge, got %v", err)
	}
}

func TestSQLite_Update(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()

	if err := store.Set(ctx, "users/a/cycle", map[string]any{"status": "active", "completed": float64(3)}, false); err != nil {
		t.Fatalf("Failed to set document: %v", err)
	}
	if err := store.Update(ctx, "users/a/cycle", map[string]any{"status": "expired"}); err != nil {
		t.Fatalf("Failed to update document: %v", err)
	}

	raw, err := store.Get(ctx, "users/a/cycle")
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}
	want := map[string]any{"status": "expired", "completed": float64(3)}
	if diff := cmp.Diff(want, decode(t, raw)); diff != "" {
		t.Errorf("updated document mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLite_UpdateMissing(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	err := store.Update(t.Context(), "users/a/missing", map[string]any{"status": "expired"})
	if !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLite_AddAndQuery(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()

	dates := []string{"2026-08-01", "2026-08-15", "2026-08-07"}
	ids := make(map[string]bool, len(dates))
	for _, date := range dates {
		id, err := store.Add(ctx, "users/a/sessions", map[string]any{"date": date})
		if err != nil {
			t.Fatalf("Failed to add document: %v", err)
		}
		if id == "" || ids[id] {
			t.Fatalf("expected unique non-empty ID, got %q", id)
		}
		ids[id] = true
	}

	docs, err := store.Query(ctx, "users/a/sessions", docstore.QueryOptions{OrderBy: "date", Descending: true})
	if err != nil {
		t.Fatalf("Failed to query collection: %v", err)
	}
	var got []string
	for _, doc := range docs {
		got = append(got, decode(t, doc.Data)["date"].(string))
		if !ids[doc.ID] {
			t.Errorf("query returned unknown document ID %q", doc.ID)
		}
	}
	want := []string{"2026-08-15", "2026-08-07", "2026-08-01"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("query order mismatch (-want +got):\n%s", diff)
	}

	limited, err := store.Query(ctx, "users/a/sessions", docstore.QueryOptions{OrderBy: "date", Descending: true, Limit: 2})
	if err != nil {
		t.Fatalf("Failed to query with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 documents, got %d", len(limited))
	}
}

func TestSQLite_QueryInvalidOrderBy(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	_, err := store.Query(t.Context(), "users/a/sessions", docstore.QueryOptions{OrderBy: "date'); DROP TABLE documents; --"})
	if err == nil {
		t.Error("expected error for invalid order-by field")
	}
}

func TestSQLite_EmptyCollection(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	docs, err := store.Query(t.Context(), "users/a/sessions", docstore.QueryOptions{})
	if err != nil {
		t.Fatalf("Failed to query empty collection: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %d", len(docs))
	}
}
