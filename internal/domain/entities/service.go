package entities

import "time"

// Service is a catalog entry for a workshop service.
//
// BasePrice is a suggestion copied into order items at selection time; order
// items keep their own denormalized snapshot and never read back from the
// catalog.

type Service struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"sessao_id"`
	Name        string    `json:"nome"`
	Description string    `json:"descricao,omitempty"`
	BasePrice   float64   `json:"preco_base,omitempty"`
	CreatedAt   time.Time `json:"criado_em"`
}

// ServicePatch carries a partial update; nil fields are left untouched.
type ServicePatch struct {
	Name        *string
	Description *string
	BasePrice   *float64
}

func (p ServicePatch) Apply(s *Service) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.BasePrice != nil {
		s.BasePrice = *p.BasePrice
	}
}
