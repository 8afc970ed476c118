package interfaces

import (
	"context"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
)

// IServiceRepository abstracts persistence for the service catalog.

type IServiceRepository interface {
	List(ctx context.Context) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	Update(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
