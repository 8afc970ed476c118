package interfaces

import (
	"context"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
)

// IClientRepository abstracts persistence for the clients collection.
//
// GetByID returns a zero-value Client (empty ID) when the record is missing.
// Update and Delete report found=false instead of erroring on a missing id;
// the collection is left untouched in that case.

type IClientRepository interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, id string, patch entities.ClientPatch) (entities.Client, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
