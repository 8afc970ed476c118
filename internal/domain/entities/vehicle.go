package entities

import "time"

// Vehicle is a customer vehicle record.
//
// ClientID is a plain reference; the owning client is not required to exist
// and deleting a client does not cascade here. Dangling references are
// tolerated by every reader.

type Vehicle struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessao_id"`
	ClientID  string    `json:"cliente_id"`
	Plate     string    `json:"placa"`
	Make      string    `json:"marca"`
	Model     string    `json:"modelo"`
	Year      string    `json:"ano,omitempty"`
	Chassis   string    `json:"chassi,omitempty"`
	CreatedAt time.Time `json:"criado_em"`
}

// VehiclePatch carries a partial update; nil fields are left untouched.
type VehiclePatch struct {
	ClientID *string
	Plate    *string
	Make     *string
	Model    *string
	Year     *string
	Chassis  *string
}

func (p VehiclePatch) Apply(v *Vehicle) {
	if p.ClientID != nil {
		v.ClientID = *p.ClientID
	}
	if p.Plate != nil {
		v.Plate = *p.Plate
	}
	if p.Make != nil {
		v.Make = *p.Make
	}
	if p.Model != nil {
		v.Model = *p.Model
	}
	if p.Year != nil {
		v.Year = *p.Year
	}
	if p.Chassis != nil {
		v.Chassis = *p.Chassis
	}
}
