package usecase

import (
	"context"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
	"github.com/santluz/Oficina-sub000/internal/usecase/interfaces"
)

// DashboardSummary is the derived reporting view over the four collections.
//
// Revenue partition:
//   - realized: sum of totals of completed orders
//   - pending: sum of totals of pending-quote and in-progress orders
//
// Cancelled orders count toward neither bucket.
type DashboardSummary struct {
	ClientCount     int
	VehicleCount    int
	ServiceCount    int
	OrderCount      int
	OpenOrders      int
	OrdersByStatus  map[entities.OrderStatus]int
	RealizedRevenue float64
	PendingRevenue  float64
}

// IDashboardUseCase derives the dashboard aggregates.

type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

type DashboardUseCase struct {
	clients  interfaces.IClientRepository
	vehicles interfaces.IVehicleRepository
	services interfaces.IServiceRepository
	orders   interfaces.IServiceOrderRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	clients interfaces.IClientRepository,
	vehicles interfaces.IVehicleRepository,
	services interfaces.IServiceRepository,
	orders interfaces.IServiceOrderRepository,
) *DashboardUseCase {
	return &DashboardUseCase{clients: clients, vehicles: vehicles, services: services, orders: orders}
}

func (u *DashboardUseCase) Summary(ctx context.Context) (DashboardSummary, error) {
	clients, err := u.clients.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	vehicles, err := u.vehicles.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	services, err := u.services.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	orders, err := u.orders.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	s := DashboardSummary{
		ClientCount:    len(clients),
		VehicleCount:   len(vehicles),
		ServiceCount:   len(services),
		OrderCount:     len(orders),
		OrdersByStatus: make(map[entities.OrderStatus]int),
	}
	for _, o := range orders {
		s.OrdersByStatus[o.Status]++
		if o.Status.Open() {
			s.OpenOrders++
		}
		switch o.Status {
		case entities.OrderStatusConcluida:
			s.RealizedRevenue += o.Total
		case entities.OrderStatusOrcamentoPendente, entities.OrderStatusEmAndamento:
			s.PendingRevenue += o.Total
		}
	}
	return s, nil
}
