package response

import "github.com/santluz/Oficina-sub000/internal/usecase"

type DashboardResponse struct {
	ClientCount     int            `json:"total_clientes"`
	VehicleCount    int            `json:"total_veiculos"`
	ServiceCount    int            `json:"total_servicos"`
	OrderCount      int            `json:"total_ordens"`
	OpenOrders      int            `json:"ordens_abertas"`
	OrdersByStatus  map[string]int `json:"ordens_por_status"`
	RealizedRevenue float64        `json:"receita_realizada"`
	PendingRevenue  float64        `json:"receita_pendente"`
}

func FromDashboardSummary(s usecase.DashboardSummary) DashboardResponse {
	byStatus := make(map[string]int, len(s.OrdersByStatus))
	for status, n := range s.OrdersByStatus {
		byStatus[string(status)] = n
	}
	return DashboardResponse{
		ClientCount:     s.ClientCount,
		VehicleCount:    s.VehicleCount,
		ServiceCount:    s.ServiceCount,
		OrderCount:      s.OrderCount,
		OpenOrders:      s.OpenOrders,
		OrdersByStatus:  byStatus,
		RealizedRevenue: s.RealizedRevenue,
		PendingRevenue:  s.PendingRevenue,
	}
}
