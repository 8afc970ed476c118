package request

import "github.com/santluz/Oficina-sub000/internal/domain/entities"

// OrderItemRequest carries a line item. Subtotals are never accepted from the
// client; the use case recomputes them from quantity and unit price.
type OrderItemRequest struct {
	ID          string  `json:"id"`
	ServiceID   string  `json:"servico_id"`
	ServiceName string  `json:"nome_servico"`
	Quantity    int     `json:"quantidade"`
	UnitPrice   float64 `json:"valor_unitario"`
}

func (r OrderItemRequest) toEntity() entities.ServiceOrderItem {
	return entities.ServiceOrderItem{
		ID:          r.ID,
		ServiceID:   r.ServiceID,
		ServiceName: r.ServiceName,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
	}
}

type CreateServiceOrderRequest struct {
	ClientID     string             `json:"cliente_id" binding:"required"`
	VehicleID    string             `json:"veiculo_id" binding:"required"`
	EntryDate    string             `json:"data_entrada"`
	ExpectedExit string             `json:"previsao_saida"`
	Status       string             `json:"status"`
	Notes        string             `json:"observacoes"`
	Items        []OrderItemRequest `json:"itens"`
}

func (r CreateServiceOrderRequest) ToEntity() entities.ServiceOrder {
	items := make([]entities.ServiceOrderItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = it.toEntity()
	}
	return entities.ServiceOrder{
		ClientID:     r.ClientID,
		VehicleID:    r.VehicleID,
		EntryDate:    r.EntryDate,
		ExpectedExit: r.ExpectedExit,
		Status:       entities.OrderStatus(r.Status),
		Notes:        r.Notes,
		Items:        items,
	}
}

// UpdateServiceOrderRequest is a partial update: absent fields stay
// untouched. A present `itens` replaces the whole item list.
type UpdateServiceOrderRequest struct {
	ClientID     *string             `json:"cliente_id"`
	VehicleID    *string             `json:"veiculo_id"`
	EntryDate    *string             `json:"data_entrada"`
	ExpectedExit *string             `json:"previsao_saida"`
	Status       *string             `json:"status"`
	Notes        *string             `json:"observacoes"`
	Items        *[]OrderItemRequest `json:"itens"`
}

func (r UpdateServiceOrderRequest) ToPatch() entities.ServiceOrderPatch {
	p := entities.ServiceOrderPatch{
		ClientID:     r.ClientID,
		VehicleID:    r.VehicleID,
		EntryDate:    r.EntryDate,
		ExpectedExit: r.ExpectedExit,
		Notes:        r.Notes,
	}
	if r.Status != nil {
		status := entities.OrderStatus(*r.Status)
		p.Status = &status
	}
	if r.Items != nil {
		items := make([]entities.ServiceOrderItem, len(*r.Items))
		for i, it := range *r.Items {
			items[i] = it.toEntity()
		}
		p.Items = &items
	}
	return p
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
