package response

import (
	"time"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
)

type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome"`
	Description string    `json:"descricao,omitempty"`
	BasePrice   float64   `json:"preco_base"`
	CreatedAt   time.Time `json:"criado_em"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		BasePrice:   s.BasePrice,
		CreatedAt:   s.CreatedAt,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(services))
	for i, s := range services {
		out[i] = FromService(s)
	}
	return out
}
