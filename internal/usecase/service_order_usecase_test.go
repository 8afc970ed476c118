package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
	mock_interfaces "github.com/santluz/Oficina-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestServiceOrderUseCase_Create_Validations(t *testing.T) {
	t.Run("missing client reference", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil)
		_, err := uc.Create(context.Background(), entities.ServiceOrder{VehicleID: "v-1"})
		if !errors.Is(err, ErrInvalidOrderClient) {
			t.Fatalf("expected ErrInvalidOrderClient, got %v", err)
		}
	})

	t.Run("missing vehicle reference", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil)
		_, err := uc.Create(context.Background(), entities.ServiceOrder{ClientID: "c-1"})
		if !errors.Is(err, ErrInvalidOrderVehicle) {
			t.Fatalf("expected ErrInvalidOrderVehicle, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil)
		_, err := uc.Create(context.Background(), entities.ServiceOrder{ClientID: "c-1", VehicleID: "v-1", Status: "finalizada"})
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})
}

func TestServiceOrderUseCase_Create_NormalizesItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	uc := NewServiceOrderUseCase(repo)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
			o.ID = "0001"
			return o, nil
		})

	created, err := uc.Create(context.Background(), entities.ServiceOrder{
		ClientID:  "c-1",
		VehicleID: "v-1",
		Items: []entities.ServiceOrderItem{
			{ServiceID: "s-1", ServiceName: "Troca de óleo", Quantity: 3, UnitPrice: 25.50},
			{ServiceID: "s-2", ServiceName: "Filtro de ar", Quantity: 0, UnitPrice: -5, Subtotal: 999},
		},
		// Caller-supplied total is ignored and recomputed from the items.
		Total: 123.45,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Status != entities.OrderStatusOrcamentoPendente {
		t.Fatalf("expected default status orcamento_pendente, got %q", created.Status)
	}
	if created.SessionID != entities.LocalSessionID {
		t.Fatalf("expected session id %q, got %q", entities.LocalSessionID, created.SessionID)
	}

	if created.Items[0].Subtotal != 76.50 {
		t.Fatalf("expected subtotal 76.50, got %v", created.Items[0].Subtotal)
	}
	// Quantity clamped to 1, negative price to 0.
	if created.Items[1].Quantity != 1 || created.Items[1].UnitPrice != 0 || created.Items[1].Subtotal != 0 {
		t.Fatalf("expected clamped item, got %+v", created.Items[1])
	}
	for _, it := range created.Items {
		if it.ID == "" {
			t.Fatalf("expected generated item id")
		}
	}

	if created.Total != 76.50 {
		t.Fatalf("expected total 76.50, got %v", created.Total)
	}
}

func TestServiceOrderUseCase_Update(t *testing.T) {
	t.Run("blank client patch", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil)
		blank := " "
		_, err := uc.Update(context.Background(), "0001", entities.ServiceOrderPatch{ClientID: &blank})
		if !errors.Is(err, ErrInvalidOrderClient) {
			t.Fatalf("expected ErrInvalidOrderClient, got %v", err)
		}
	})

	t.Run("items patch recomputes total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		repo.EXPECT().
			Update(gomock.Any(), "0001", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, patch entities.ServiceOrderPatch) (entities.ServiceOrder, bool, error) {
				if patch.Items == nil || patch.Total == nil {
					t.Fatalf("expected items and total patched together")
				}
				if *patch.Total != 86.50 {
					t.Fatalf("expected recomputed total 86.50, got %v", *patch.Total)
				}
				o := entities.ServiceOrder{ID: "0001", Items: *patch.Items, Total: *patch.Total}
				return o, true, nil
			})

		updated, err := uc.Update(context.Background(), "0001", entities.ServiceOrderPatch{
			Items: &[]entities.ServiceOrderItem{
				{ID: "i-1", Quantity: 3, UnitPrice: 25.50},
				{ID: "i-2", Quantity: 1, UnitPrice: 10},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Total != 86.50 {
			t.Fatalf("expected total 86.50, got %v", updated.Total)
		}
	})

	t.Run("bare total patch is dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		total := 999.0
		repo.EXPECT().
			Update(gomock.Any(), "0001", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, patch entities.ServiceOrderPatch) (entities.ServiceOrder, bool, error) {
				if patch.Total != nil {
					t.Fatalf("expected total patch to be dropped without items, got %v", *patch.Total)
				}
				return entities.ServiceOrder{ID: "0001", Total: 76.50}, true, nil
			})

		updated, err := uc.Update(context.Background(), "0001", entities.ServiceOrderPatch{Total: &total})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Total != 76.50 {
			t.Fatalf("expected stored total preserved, got %v", updated.Total)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		notes := "retorno"
		repo.EXPECT().Update(gomock.Any(), "0042", gomock.Any()).Return(entities.ServiceOrder{}, false, nil)

		_, err := uc.Update(context.Background(), "0042", entities.ServiceOrderPatch{Notes: &notes})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestServiceOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil)
		_, err := uc.UpdateStatus(context.Background(), "0001", "finalizada")
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("valid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		repo.EXPECT().
			Update(gomock.Any(), "0001", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, patch entities.ServiceOrderPatch) (entities.ServiceOrder, bool, error) {
				if patch.Status == nil || *patch.Status != entities.OrderStatusConcluida {
					t.Fatalf("expected status patch concluida, got %+v", patch.Status)
				}
				return entities.ServiceOrder{ID: "0001", Status: *patch.Status}, true, nil
			})

		updated, err := uc.UpdateStatus(context.Background(), "0001", entities.OrderStatusConcluida)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.OrderStatusConcluida {
			t.Fatalf("expected concluida, got %q", updated.Status)
		}
	})
}

func TestServiceOrderUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "0042").Return(false, nil)

		if err := uc.Delete(context.Background(), "0042"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}
