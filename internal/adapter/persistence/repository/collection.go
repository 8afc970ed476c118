// Package repository implements the record store: one repository per
// collection, each bound to a fixed storage key holding a JSON array. Every
// operation is a whole-collection read-modify-write round trip; the caller is
// assumed to be the only writer (last write wins).
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/santluz/Oficina-sub000/internal/infrastructure/storage"
)

// Storage keys, one per collection plus the session marker. These names are
// the persisted contract and must not change between releases.
const (
	keyClients  = "oficina_clientes"
	keyVehicles = "oficina_veiculos"
	keyServices = "oficina_servicos"
	keyOrders   = "oficina_ordens_servico"
	keySession  = "oficina_sessao"
)

// collection binds one record type to one storage key.
type collection[T any] struct {
	store storage.KVStore
	key   string
}

// load decodes the persisted array. An absent key yields an empty slice; a
// malformed value is an error, never silently repaired or overwritten.
func (c collection[T]) load(ctx context.Context) ([]T, error) {
	raw, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !found {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", c.key, err)
	}
	return items, nil
}

func (c collection[T]) save(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", c.key, err)
	}
	return c.store.Set(ctx, c.key, raw)
}
