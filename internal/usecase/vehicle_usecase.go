package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
	"github.com/santluz/Oficina-sub000/internal/usecase/interfaces"
)

var (
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrInvalidVehicleID    = errors.New("invalid vehicle id")
	ErrInvalidVehiclePlate = errors.New("invalid vehicle plate")
)

// IVehicleUseCase exposes vehicle record-keeping operations.
//
// The client reference is stored as given; its existence is never checked.

type IVehicleUseCase interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	Update(ctx context.Context, id string, patch entities.VehiclePatch) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type VehicleUseCase struct {
	repo interfaces.IVehicleRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

func (u *VehicleUseCase) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.Plate = strings.TrimSpace(v.Plate)
	if v.Plate == "" {
		return entities.Vehicle{}, ErrInvalidVehiclePlate
	}
	v.SessionID = entities.LocalSessionID
	return u.repo.Create(ctx, v)
}

func (u *VehicleUseCase) List(ctx context.Context) ([]entities.Vehicle, error) {
	return u.repo.List(ctx)
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) Update(ctx context.Context, id string, patch entities.VehiclePatch) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	if patch.Plate != nil && strings.TrimSpace(*patch.Plate) == "" {
		return entities.Vehicle{}, ErrInvalidVehiclePlate
	}

	updated, found, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if !found {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return updated, nil
}

func (u *VehicleUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidVehicleID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrVehicleNotFound
	}
	return nil
}
