package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
	"github.com/santluz/Oficina-sub000/internal/infrastructure/storage"
	"github.com/santluz/Oficina-sub000/internal/usecase/interfaces"
)

// SessionKVRepository persists the single session marker under the
// oficina_sessao key as a JSON object {id, email, name}.
type SessionKVRepository struct {
	store storage.KVStore
}

var _ interfaces.ISessionRepository = (*SessionKVRepository)(nil)

func NewSessionKVRepository(store storage.KVStore) *SessionKVRepository {
	return &SessionKVRepository{store: store}
}

func (r *SessionKVRepository) Save(ctx context.Context, s entities.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.store.Set(ctx, keySession, raw)
}

func (r *SessionKVRepository) Get(ctx context.Context) (entities.Session, bool, error) {
	raw, found, err := r.store.Get(ctx, keySession)
	if err != nil {
		return entities.Session{}, false, err
	}
	if !found {
		return entities.Session{}, false, nil
	}

	var s entities.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return entities.Session{}, false, fmt.Errorf("decode session: %w", err)
	}
	return s, true, nil
}

func (r *SessionKVRepository) Clear(ctx context.Context) error {
	return r.store.Remove(ctx, keySession)
}
