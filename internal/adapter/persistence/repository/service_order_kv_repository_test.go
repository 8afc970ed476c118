package repository

import (
	"context"
	"reflect"
	"testing"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
	"github.com/santluz/Oficina-sub000/internal/infrastructure/storage"
)

func newOrderRepoForTest(store storage.KVStore) *ServiceOrderKVRepository {
	repo := NewServiceOrderKVRepository(store)
	repo.now = fixedClock
	return repo
}

func TestServiceOrderKVRepository_SequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := newOrderRepoForTest(storage.NewMemoryStore())

	first, err := repo.Create(ctx, entities.ServiceOrder{ClientID: "c-1", VehicleID: "v-1", Status: entities.OrderStatusOrcamentoPendente})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != "0001" {
		t.Fatalf("expected first order id 0001, got %q", first.ID)
	}

	second, err := repo.Create(ctx, entities.ServiceOrder{ClientID: "c-1", VehicleID: "v-1", Status: entities.OrderStatusOrcamentoPendente})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != "0002" {
		t.Fatalf("expected second order id 0002, got %q", second.ID)
	}
}

func TestServiceOrderKVRepository_IDDerivedFromWholeCollection(t *testing.T) {
	ctx := context.Background()
	repo := newOrderRepoForTest(storage.NewMemoryStore())

	for i := 0; i < 3; i++ {
		if _, err := repo.Create(ctx, entities.ServiceOrder{ClientID: "c-1", VehicleID: "v-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Delete the newest; the next id still advances past the historical max.
	if found, err := repo.Delete(ctx, "0003"); err != nil || !found {
		t.Fatalf("expected 0003 deleted, found=%v err=%v", found, err)
	}
	next, err := repo.Create(ctx, entities.ServiceOrder{ClientID: "c-1", VehicleID: "v-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.ID != "0003" {
		t.Fatalf("expected id 0003 after max shrank, got %q", next.ID)
	}
}

func TestServiceOrderKVRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newOrderRepoForTest(storage.NewMemoryStore())

	created, err := repo.Create(ctx, entities.ServiceOrder{
		SessionID: entities.LocalSessionID,
		ClientID:  "c-1",
		VehicleID: "v-1",
		Status:    entities.OrderStatusOrcamentoPendente,
		Items: []entities.ServiceOrderItem{
			{ID: "i-1", ServiceID: "s-1", ServiceName: "Troca de óleo", Quantity: 3, UnitPrice: 25.50, Subtotal: 76.50},
		},
		Total: 76.50,
		Notes: "cliente aguarda na loja",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, created) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", created, got)
	}
}

func TestServiceOrderKVRepository_UpdateStatusOnly(t *testing.T) {
	ctx := context.Background()
	repo := newOrderRepoForTest(storage.NewMemoryStore())

	created, err := repo.Create(ctx, entities.ServiceOrder{
		ClientID:  "c-1",
		VehicleID: "v-1",
		Status:    entities.OrderStatusOrcamentoPendente,
		Items:     []entities.ServiceOrderItem{{ID: "i-1", Quantity: 1, UnitPrice: 10, Subtotal: 10}},
		Total:     10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status := entities.OrderStatusEmAndamento
	updated, found, err := repo.Update(ctx, created.ID, entities.ServiceOrderPatch{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatalf("expected order to be found")
	}
	if updated.Status != entities.OrderStatusEmAndamento {
		t.Fatalf("expected status em_andamento, got %q", updated.Status)
	}
	if len(updated.Items) != 1 || updated.Total != 10 {
		t.Fatalf("expected items and total untouched, got %+v", updated)
	}
}

func TestServiceOrderKVRepository_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	repo := newOrderRepoForTest(storage.NewMemoryStore())

	status := entities.OrderStatusConcluida
	_, found, err := repo.Update(ctx, "0042", entities.ServiceOrderPatch{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatalf("expected not found")
	}
}
