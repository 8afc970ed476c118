package repository

import (
	"context"
	"time"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
	"github.com/santluz/Oficina-sub000/internal/infrastructure/storage"
	"github.com/santluz/Oficina-sub000/internal/usecase/interfaces"
)

// ServiceOrderKVRepository persists ServiceOrder records under the
// oficina_ordens_servico key.
//
// Unlike the other collections, order ids are sequential zero-padded numbers
// derived from the ids already present at create time. The max is taken over
// the whole collection, not the head, so deleting the newest order never
// reissues its number within a session of sequential writes.
type ServiceOrderKVRepository struct {
	col collection[entities.ServiceOrder]
	now func() time.Time
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderKVRepository)(nil)

func NewServiceOrderKVRepository(store storage.KVStore) *ServiceOrderKVRepository {
	return &ServiceOrderKVRepository{
		col: collection[entities.ServiceOrder]{store: store, key: keyOrders},
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *ServiceOrderKVRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return r.col.load(ctx)
}

func (r *ServiceOrderKVRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	items, err := r.col.load(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	for _, o := range items {
		if o.ID == id {
			return o, nil
		}
	}
	return entities.ServiceOrder{}, nil
}

func (r *ServiceOrderKVRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	items, err := r.col.load(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	ids := make([]string, len(items))
	for i, existing := range items {
		ids[i] = existing.ID
	}
	o.ID = entities.NextOrderNumber(ids)
	o.CreatedAt = r.now()
	items = append([]entities.ServiceOrder{o}, items...)

	if err := r.col.save(ctx, items); err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderKVRepository) Update(ctx context.Context, id string, patch entities.ServiceOrderPatch) (entities.ServiceOrder, bool, error) {
	items, err := r.col.load(ctx)
	if err != nil {
		return entities.ServiceOrder{}, false, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		patch.Apply(&items[i])
		if err := r.col.save(ctx, items); err != nil {
			return entities.ServiceOrder{}, false, err
		}
		return items[i], true, nil
	}
	return entities.ServiceOrder{}, false, nil
}

func (r *ServiceOrderKVRepository) Delete(ctx context.Context, id string) (bool, error) {
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
