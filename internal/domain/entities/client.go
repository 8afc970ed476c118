package entities

import "time"

// Client is a workshop customer record.
//
// Persisted contract:
//   - JSON element of the `oficina_clientes` array.
//   - Only `nome` is required; contact fields are free-form and optional.
//   - No uniqueness is enforced on any business field (duplicate names are
//     allowed).

type Client struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessao_id"`
	Name      string    `json:"nome"`
	Phone     string    `json:"telefone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"endereco,omitempty"`
	CreatedAt time.Time `json:"criado_em"`
}

// ClientPatch carries a partial update; nil fields are left untouched.
type ClientPatch struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

// Apply shallow-merges the patch into c.
func (p ClientPatch) Apply(c *Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
}
