package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
	"github.com/santluz/Oficina-sub000/internal/infrastructure/storage"
	"github.com/santluz/Oficina-sub000/internal/usecase/interfaces"
)

// ClientKVRepository persists Client records under the oficina_clientes key.
//
// Create prepends, so List returns most-recently-added first. No uniqueness
// is checked on any business field.
type ClientKVRepository struct {
	col   collection[entities.Client]
	newID func() string
	now   func() time.Time
}

var _ interfaces.IClientRepository = (*ClientKVRepository)(nil)

func NewClientKVRepository(store storage.KVStore) *ClientKVRepository {
	return &ClientKVRepository{
		col:   collection[entities.Client]{store: store, key: keyClients},
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *ClientKVRepository) List(ctx context.Context) ([]entities.Client, error) {
	return r.col.load(ctx)
}

func (r *ClientKVRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	items, err := r.col.load(ctx)
	if err != nil {
		return entities.Client{}, err
	}
	for _, c := range items {
		if c.ID == id {
			return c, nil
		}
	}
	return entities.Client{}, nil
}

func (r *ClientKVRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	items, err := r.col.load(ctx)
	if err != nil {
		return entities.Client{}, err
	}

	c.ID = r.newID()
	c.CreatedAt = r.now()
	items = append([]entities.Client{c}, items...)

	if err := r.col.save(ctx, items); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientKVRepository) Update(ctx context.Context, id string, patch entities.ClientPatch) (entities.Client, bool, error) {
	items, err := r.col.load(ctx)
	if err != nil {
		return entities.Client{}, false, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		patch.Apply(&items[i])
		if err := r.col.save(ctx, items); err != nil {
			return entities.Client{}, false, err
		}
		return items[i], true, nil
	}
	return entities.Client{}, false, nil
}

func (r *ClientKVRepository) Delete(ctx context.Context, id string) (bool, error) {
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
