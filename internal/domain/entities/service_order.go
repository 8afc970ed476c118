package entities

import (
	"fmt"
	"strconv"
	"time"
)

// OrderStatus is the current stage of a service order.
//
// There is no transition table: any status may be set at any time through the
// status endpoint. The dashboard only partitions orders by the current value.

type OrderStatus string

const (
	OrderStatusOrcamentoPendente OrderStatus = "orcamento_pendente"
	OrderStatusEmAndamento       OrderStatus = "em_andamento"
	OrderStatusConcluida         OrderStatus = "concluida"
	OrderStatusCancelada         OrderStatus = "cancelada"
)

// Valid reports whether s is one of the known status values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusOrcamentoPendente, OrderStatusEmAndamento, OrderStatusConcluida, OrderStatusCancelada:
		return true
	}
	return false
}

// Open reports whether the order still demands work (neither completed nor
// cancelled).
func (s OrderStatus) Open() bool {
	return s != OrderStatusConcluida && s != OrderStatusCancelada
}

// ServiceOrderItem is a line entry referencing a catalog service.
//
// ServiceName and UnitPrice are snapshots taken when the item was added;
// later catalog edits do not touch existing orders.

type ServiceOrderItem struct {
	ID          string  `json:"id"`
	ServiceID   string  `json:"servico_id"`
	ServiceName string  `json:"nome_servico"`
	Quantity    int     `json:"quantidade"`
	UnitPrice   float64 `json:"valor_unitario"`
	Subtotal    float64 `json:"subtotal"`
}

// RecomputeSubtotal sets Subtotal = Quantity × UnitPrice.
func (i *ServiceOrderItem) RecomputeSubtotal() {
	i.Subtotal = float64(i.Quantity) * i.UnitPrice
}

// ServiceOrder is a workshop service order (ordem de serviço).
//
// ID is a sequential zero-padded number assigned by the repository at create
// time. Total (orcamento_total) is the sum of item subtotals and is
// recomputed by the use case on every create/update.

type ServiceOrder struct {
	ID           string             `json:"id"`
	SessionID    string             `json:"sessao_id"`
	ClientID     string             `json:"cliente_id"`
	VehicleID    string             `json:"veiculo_id"`
	EntryDate    string             `json:"data_entrada"`
	ExpectedExit string             `json:"previsao_saida,omitempty"`
	Status       OrderStatus        `json:"status"`
	Notes        string             `json:"observacoes,omitempty"`
	Items        []ServiceOrderItem `json:"itens"`
	Total        float64            `json:"orcamento_total"`
	CreatedAt    time.Time          `json:"criado_em"`
}

// ServiceOrderPatch carries a partial update; nil fields are left untouched.
// A non-nil Items replaces the whole item list.
type ServiceOrderPatch struct {
	ClientID     *string
	VehicleID    *string
	EntryDate    *string
	ExpectedExit *string
	Status       *OrderStatus
	Notes        *string
	Items        *[]ServiceOrderItem
	Total        *float64
}

func (p ServiceOrderPatch) Apply(o *ServiceOrder) {
	if p.ClientID != nil {
		o.ClientID = *p.ClientID
	}
	if p.VehicleID != nil {
		o.VehicleID = *p.VehicleID
	}
	if p.EntryDate != nil {
		o.EntryDate = *p.EntryDate
	}
	if p.ExpectedExit != nil {
		o.ExpectedExit = *p.ExpectedExit
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
	if p.Items != nil {
		o.Items = *p.Items
	}
	if p.Total != nil {
		o.Total = *p.Total
	}
}

// OrderTotal sums the item subtotals.
func OrderTotal(items []ServiceOrderItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Subtotal
	}
	return total
}

// NextOrderNumber derives the next sequential order id from the ids already
// in use: 1 + the highest numeric id, zero-padded to 4 digits. Ids that do
// not parse as numbers contribute nothing to the maximum.
func NextOrderNumber(existing []string) string {
	max := 0
	for _, id := range existing {
		if n, err := strconv.Atoi(id); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%04d", max+1)
}
