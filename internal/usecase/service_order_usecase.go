package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
	"github.com/santluz/Oficina-sub000/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound       = errors.New("service order not found")
	ErrInvalidOrderID      = errors.New("invalid service order id")
	ErrInvalidOrderClient  = errors.New("invalid order client reference")
	ErrInvalidOrderVehicle = errors.New("invalid order vehicle reference")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
)

// IServiceOrderUseCase exposes service order operations.
//
// Item subtotals and orcamento_total are recomputed here on every create and
// update, so a caller-supplied total can never drift from the items. Status
// changes are unrestricted: there is no transition table.

type IServiceOrderUseCase interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Update(ctx context.Context, id string, patch entities.ServiceOrderPatch) (entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
}

type ServiceOrderUseCase struct {
	repo interfaces.IServiceOrderRepository
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(repo interfaces.IServiceOrderRepository) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	o.ClientID = strings.TrimSpace(o.ClientID)
	if o.ClientID == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderClient
	}
	o.VehicleID = strings.TrimSpace(o.VehicleID)
	if o.VehicleID == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderVehicle
	}
	if o.Status == "" {
		o.Status = entities.OrderStatusOrcamentoPendente
	}
	if !o.Status.Valid() {
		return entities.ServiceOrder{}, ErrInvalidOrderStatus
	}

	o.Items = normalizeItems(o.Items)
	o.Total = entities.OrderTotal(o.Items)
	o.SessionID = entities.LocalSessionID
	return u.repo.Create(ctx, o)
}

func (u *ServiceOrderUseCase) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.repo.List(ctx)
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) Update(ctx context.Context, id string, patch entities.ServiceOrderPatch) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	if patch.ClientID != nil && strings.TrimSpace(*patch.ClientID) == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderClient
	}
	if patch.VehicleID != nil && strings.TrimSpace(*patch.VehicleID) == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderVehicle
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return entities.ServiceOrder{}, ErrInvalidOrderStatus
	}
	if patch.Items != nil {
		items := normalizeItems(*patch.Items)
		total := entities.OrderTotal(items)
		patch.Items = &items
		patch.Total = &total
	} else {
		// Total always follows the items; a bare total patch is ignored.
		patch.Total = nil
	}

	updated, found, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if !found {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *ServiceOrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.ServiceOrder, error) {
	if !status.Valid() {
		return entities.ServiceOrder{}, ErrInvalidOrderStatus
	}
	return u.Update(ctx, id, entities.ServiceOrderPatch{Status: &status})
}

func (u *ServiceOrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrOrderNotFound
	}
	return nil
}

// normalizeItems assigns missing item ids, clamps the free-form numeric
// fields (quantity below 1 becomes 1, negative unit price becomes 0) and
// recomputes every subtotal.
func normalizeItems(items []entities.ServiceOrderItem) []entities.ServiceOrderItem {
	out := make([]entities.ServiceOrderItem, len(items))
	for i, it := range items {
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		if it.UnitPrice < 0 {
			it.UnitPrice = 0
		}
		it.RecomputeSubtotal()
		out[i] = it
	}
	return out
}
