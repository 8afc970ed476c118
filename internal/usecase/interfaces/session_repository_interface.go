package interfaces

import (
	"context"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
)

// ISessionRepository abstracts persistence for the single session marker.

type ISessionRepository interface {
	Save(ctx context.Context, s entities.Session) error
	Get(ctx context.Context) (entities.Session, bool, error)
	Clear(ctx context.Context) error
}
