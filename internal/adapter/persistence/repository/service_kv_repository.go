package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
	"github.com/santluz/Oficina-sub000/internal/infrastructure/storage"
	"github.com/santluz/Oficina-sub000/internal/usecase/interfaces"
)

// ServiceKVRepository persists catalog Service records under the
// oficina_servicos key.
type ServiceKVRepository struct {
	col   collection[entities.Service]
	newID func() string
	now   func() time.Time
}

var _ interfaces.IServiceRepository = (*ServiceKVRepository)(nil)

func NewServiceKVRepository(store storage.KVStore) *ServiceKVRepository {
	return &ServiceKVRepository{
		col:   collection[entities.Service]{store: store, key: keyServices},
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *ServiceKVRepository) List(ctx context.Context) ([]entities.Service, error) {
	return r.col.load(ctx)
}

func (r *ServiceKVRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	items, err := r.col.load(ctx)
	if err != nil {
		return entities.Service{}, err
	}
	for _, s := range items {
		if s.ID == id {
			return s, nil
		}
	}
	return entities.Service{}, nil
}

func (r *ServiceKVRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	items, err := r.col.load(ctx)
	if err != nil {
		return entities.Service{}, err
	}

	s.ID = r.newID()
	s.CreatedAt = r.now()
	items = append([]entities.Service{s}, items...)

	if err := r.col.save(ctx, items); err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceKVRepository) Update(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, bool, error) {
	items, err := r.col.load(ctx)
	if err != nil {
		return entities.Service{}, false, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		patch.Apply(&items[i])
		if err := r.col.save(ctx, items); err != nil {
			return entities.Service{}, false, err
		}
		return items[i], true, nil
	}
	return entities.Service{}, false, nil
}

func (r *ServiceKVRepository) Delete(ctx context.Context, id string) (bool, error) {
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
