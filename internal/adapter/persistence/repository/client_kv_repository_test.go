package repository

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
	"github.com/santluz/Oficina-sub000/internal/infrastructure/storage"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newClientRepoForTest(store storage.KVStore, ids ...string) *ClientKVRepository {
	repo := NewClientKVRepository(store)
	repo.now = fixedClock
	next := 0
	repo.newID = func() string {
		id := ids[next]
		next++
		return id
	}
	return repo
}

func TestClientKVRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := newClientRepoForTest(storage.NewMemoryStore(), "c-1", "c-2")

	first, err := repo.Create(ctx, entities.Client{SessionID: entities.LocalSessionID, Name: "Maria"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != "c-1" {
		t.Fatalf("expected id c-1, got %q", first.ID)
	}
	if !first.CreatedAt.Equal(fixedClock()) {
		t.Fatalf("expected pinned creation time, got %v", first.CreatedAt)
	}

	second, err := repo.Create(ctx, entities.Client{SessionID: entities.LocalSessionID, Name: "Jorge"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(items))
	}
	// Newest first.
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("expected newest-first order, got %q then %q", items[0].ID, items[1].ID)
	}
}

func TestClientKVRepository_ListEmpty(t *testing.T) {
	repo := NewClientKVRepository(storage.NewMemoryStore())

	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty collection, got %d items", len(items))
	}
}

func TestClientKVRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := newClientRepoForTest(storage.NewMemoryStore(), "c-1")

	created, err := repo.Create(ctx, entities.Client{Name: "Maria", Phone: "11 99999-0000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("round trip", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, created) {
			t.Fatalf("expected %+v, got %+v", created, got)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "nope")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero value for missing id, got %+v", got)
		}
	})
}

func TestClientKVRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := newClientRepoForTest(storage.NewMemoryStore(), "c-1")

	if _, err := repo.Create(ctx, entities.Client{Name: "Maria", Phone: "11 99999-0000", Email: "maria@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("merges only provided fields", func(t *testing.T) {
		phone := "11 88888-0000"
		updated, found, err := repo.Update(ctx, "c-1", entities.ClientPatch{Phone: &phone})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Fatalf("expected client to be found")
		}
		if updated.Phone != phone {
			t.Fatalf("expected phone updated, got %q", updated.Phone)
		}
		if updated.Name != "Maria" || updated.Email != "maria@example.com" {
			t.Fatalf("expected untouched fields preserved, got %+v", updated)
		}
	})

	t.Run("missing id leaves collection unchanged", func(t *testing.T) {
		before, _ := repo.List(ctx)
		name := "Outro"
		_, found, err := repo.Update(ctx, "nope", entities.ClientPatch{Name: &name})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Fatalf("expected not found")
		}
		after, _ := repo.List(ctx)
		if !reflect.DeepEqual(before, after) {
			t.Fatalf("expected collection unchanged")
		}
	})
}

func TestClientKVRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newClientRepoForTest(storage.NewMemoryStore(), "c-1", "c-2")

	if _, err := repo.Create(ctx, entities.Client{Name: "Maria"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Create(ctx, entities.Client{Name: "Jorge"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.Delete(ctx, "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatalf("expected deletion to report found")
	}

	items, _ := repo.List(ctx)
	if len(items) != 1 || items[0].ID != "c-2" {
		t.Fatalf("expected only c-2 to remain, got %+v", items)
	}

	found, err = repo.Delete(ctx, "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatalf("expected second delete to report not found")
	}
}

func TestClientKVRepository_MalformedCollection(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	if err := store.Set(ctx, keyClients, []byte("{not an array")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo := NewClientKVRepository(store)
	if _, err := repo.List(ctx); err == nil {
		t.Fatalf("expected decode error for malformed collection")
	}

	// The malformed value stays in place rather than being overwritten.
	if _, err := repo.Create(ctx, entities.Client{Name: "Maria"}); err == nil {
		t.Fatalf("expected create to fail on malformed collection")
	}
	raw, found, _ := store.Get(ctx, keyClients)
	if !found || string(raw) != "{not an array" {
		t.Fatalf("expected stored value untouched, got %q", raw)
	}
}
