package request

import "github.com/santluz/Oficina-sub000/internal/domain/entities"

type CreateClientRequest struct {
	Name    string `json:"nome" binding:"required"`
	Phone   string `json:"telefone"`
	Email   string `json:"email"`
	Address string `json:"endereco"`
}

func (r CreateClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
	}
}

// UpdateClientRequest is a partial update: absent fields stay untouched.
type UpdateClientRequest struct {
	Name    *string `json:"nome"`
	Phone   *string `json:"telefone"`
	Email   *string `json:"email"`
	Address *string `json:"endereco"`
}

func (r UpdateClientRequest) ToPatch() entities.ClientPatch {
	return entities.ClientPatch{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
	}
}
