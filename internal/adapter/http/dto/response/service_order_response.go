package response

import (
	"time"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
)

type OrderItemResponse struct {
	ID          string  `json:"id"`
	ServiceID   string  `json:"servico_id"`
	ServiceName string  `json:"nome_servico"`
	Quantity    int     `json:"quantidade"`
	UnitPrice   float64 `json:"valor_unitario"`
	Subtotal    float64 `json:"subtotal"`
}

type ServiceOrderResponse struct {
	ID           string              `json:"id"`
	ClientID     string              `json:"cliente_id"`
	VehicleID    string              `json:"veiculo_id"`
	EntryDate    string              `json:"data_entrada"`
	ExpectedExit string              `json:"previsao_saida,omitempty"`
	Status       string              `json:"status"`
	Notes        string              `json:"observacoes,omitempty"`
	Items        []OrderItemResponse `json:"itens"`
	Total        float64             `json:"orcamento_total"`
	CreatedAt    time.Time           `json:"criado_em"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ID:          it.ID,
			ServiceID:   it.ServiceID,
			ServiceName: it.ServiceName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		}
	}
	return ServiceOrderResponse{
		ID:           o.ID,
		ClientID:     o.ClientID,
		VehicleID:    o.VehicleID,
		EntryDate:    o.EntryDate,
		ExpectedExit: o.ExpectedExit,
		Status:       string(o.Status),
		Notes:        o.Notes,
		Items:        items,
		Total:        o.Total,
		CreatedAt:    o.CreatedAt,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, len(orders))
	for i, o := range orders {
		out[i] = FromServiceOrder(o)
	}
	return out
}
