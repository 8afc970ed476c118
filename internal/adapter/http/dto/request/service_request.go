package request

import "github.com/santluz/Oficina-sub000/internal/domain/entities"

type CreateServiceRequest struct {
	Name        string  `json:"nome" binding:"required"`
	Description string  `json:"descricao"`
	BasePrice   float64 `json:"preco_base"`
}

func (r CreateServiceRequest) ToEntity() entities.Service {
	return entities.Service{
		Name:        r.Name,
		Description: r.Description,
		BasePrice:   r.BasePrice,
	}
}

// UpdateServiceRequest is a partial update: absent fields stay untouched.
type UpdateServiceRequest struct {
	Name        *string  `json:"nome"`
	Description *string  `json:"descricao"`
	BasePrice   *float64 `json:"preco_base"`
}

func (r UpdateServiceRequest) ToPatch() entities.ServicePatch {
	return entities.ServicePatch{
		Name:        r.Name,
		Description: r.Description,
		BasePrice:   r.BasePrice,
	}
}
