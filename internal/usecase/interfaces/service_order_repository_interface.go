package interfaces

import (
	"context"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
)

// IServiceOrderRepository abstracts persistence for service orders.
//
// Create assigns the sequential zero-padded order id; the caller must leave
// ID empty.

type IServiceOrderRepository interface {
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Update(ctx context.Context, id string, patch entities.ServiceOrderPatch) (entities.ServiceOrder, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
