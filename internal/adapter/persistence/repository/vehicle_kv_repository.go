package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
	"github.com/santluz/Oficina-sub000/internal/infrastructure/storage"
	"github.com/santluz/Oficina-sub000/internal/usecase/interfaces"
)

// VehicleKVRepository persists Vehicle records under the oficina_veiculos key.
type VehicleKVRepository struct {
	col   collection[entities.Vehicle]
	newID func() string
	now   func() time.Time
}

var _ interfaces.IVehicleRepository = (*VehicleKVRepository)(nil)

func NewVehicleKVRepository(store storage.KVStore) *VehicleKVRepository {
	return &VehicleKVRepository{
		col:   collection[entities.Vehicle]{store: store, key: keyVehicles},
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *VehicleKVRepository) List(ctx context.Context) ([]entities.Vehicle, error) {
	return r.col.load(ctx)
}

func (r *VehicleKVRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	items, err := r.col.load(ctx)
	if err != nil {
		return entities.Vehicle{}, err
	}
	for _, v := range items {
		if v.ID == id {
			return v, nil
		}
	}
	return entities.Vehicle{}, nil
}

func (r *VehicleKVRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	items, err := r.col.load(ctx)
	if err != nil {
		return entities.Vehicle{}, err
	}

	v.ID = r.newID()
	v.CreatedAt = r.now()
	items = append([]entities.Vehicle{v}, items...)

	if err := r.col.save(ctx, items); err != nil {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleKVRepository) Update(ctx context.Context, id string, patch entities.VehiclePatch) (entities.Vehicle, bool, error) {
	items, err := r.col.load(ctx)
	if err != nil {
		return entities.Vehicle{}, false, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		patch.Apply(&items[i])
		if err := r.col.save(ctx, items); err != nil {
			return entities.Vehicle{}, false, err
		}
		return items[i], true, nil
	}
	return entities.Vehicle{}, false, nil
}

func (r *VehicleKVRepository) Delete(ctx context.Context, id string) (bool, error) {
	items, err := r.col.load(ctx)
	if err != nil {
		return false, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items = append(items[:i], items[i+1:]...)
		if err := r.col.save(ctx, items); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
