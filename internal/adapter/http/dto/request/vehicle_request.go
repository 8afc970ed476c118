package request

import "github.com/santluz/Oficina-sub000/internal/domain/entities"

type CreateVehicleRequest struct {
	ClientID string `json:"cliente_id"`
	Plate    string `json:"placa" binding:"required"`
	Make     string `json:"marca"`
	Model    string `json:"modelo"`
	Year     string `json:"ano"`
	Chassis  string `json:"chassi"`
}

func (r CreateVehicleRequest) ToEntity() entities.Vehicle {
	return entities.Vehicle{
		ClientID: r.ClientID,
		Plate:    r.Plate,
		Make:     r.Make,
		Model:    r.Model,
		Year:     r.Year,
		Chassis:  r.Chassis,
	}
}

// UpdateVehicleRequest is a partial update: absent fields stay untouched.
type UpdateVehicleRequest struct {
	ClientID *string `json:"cliente_id"`
	Plate    *string `json:"placa"`
	Make     *string `json:"marca"`
	Model    *string `json:"modelo"`
	Year     *string `json:"ano"`
	Chassis  *string `json:"chassi"`
}

func (r UpdateVehicleRequest) ToPatch() entities.VehiclePatch {
	return entities.VehiclePatch{
		ClientID: r.ClientID,
		Plate:    r.Plate,
		Make:     r.Make,
		Model:    r.Model,
		Year:     r.Year,
		Chassis:  r.Chassis,
	}
}
