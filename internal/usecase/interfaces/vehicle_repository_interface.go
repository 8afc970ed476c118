package interfaces

import (
	"context"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
)

// IVehicleRepository abstracts persistence for the vehicles collection.

type IVehicleRepository interface {
	List(ctx context.Context) ([]entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Update(ctx context.Context, id string, patch entities.VehiclePatch) (entities.Vehicle, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
