package response

import (
	"time"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
)

type VehicleResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"cliente_id"`
	Plate     string    `json:"placa"`
	Make      string    `json:"marca"`
	Model     string    `json:"modelo"`
	Year      string    `json:"ano,omitempty"`
	Chassis   string    `json:"chassi,omitempty"`
	CreatedAt time.Time `json:"criado_em"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:        v.ID,
		ClientID:  v.ClientID,
		Plate:     v.Plate,
		Make:      v.Make,
		Model:     v.Model,
		Year:      v.Year,
		Chassis:   v.Chassis,
		CreatedAt: v.CreatedAt,
	}
}

func FromVehicles(vehicles []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		out[i] = FromVehicle(v)
	}
	return out
}
