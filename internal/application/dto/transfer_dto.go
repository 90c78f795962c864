package dto

// ExistLineEditDTO edición de una línea existente del lote de reconciliación.
type ExistLineEditDTO struct {
	ID               int64 `json:"id"`
	Quantity         int   `json:"quantity"`
	QuantityReceived int   `json:"quantity_received"`
}

// NewLineEditDTO línea nueva del lote. QuantityReceived ausente = 0.
type NewLineEditDTO struct {
	PID              int64 `json:"pid"`
	Quantity         int   `json:"quantity"`
	QuantityReceived *int  `json:"quantity_received"`
}

// DeleteLineRefDTO referencia a una línea a eliminar (soft delete).
type DeleteLineRefDTO struct {
	ID int64 `json:"id"`
}

// LineBatchDTO lote de edición de líneas en tres grupos, ya validado en el
// borde de la petición antes de llegar al núcleo.
type LineBatchDTO struct {
	ExistLines  []ExistLineEditDTO `json:"exist-lines"`
	NewLines    []NewLineEditDTO   `json:"new-lines"`
	DeleteLines []DeleteLineRefDTO `json:"delete-lines"`
}

// UpdateOrderLinesRequest cuerpo de actualización de líneas de una orden.
type UpdateOrderLinesRequest struct {
	RequestedDeliveryDate *string      `json:"requested_delivery_date"` // formato 2006-01-02
	TransferOrderLines    LineBatchDTO `json:"transfer_order_lines"`
}

// CancelOrderRequest cuerpo de cancelación de una orden.
type CancelOrderRequest struct {
	Message string `json:"message"`
}

// CheckLineItemRequest consulta de previsualización de una línea nueva por
// número de artículo.
type CheckLineItemRequest struct {
	ItemNo   string `json:"item_no"`
	Quantity int    `json:"quantity"`
}

// TransferLineDTO línea para la pestaña de detalles, con la previsualización
// de asignación de stock (reservado/restante).
type TransferLineDTO struct {
	ID                 int64  `json:"id"`
	PID                int64  `json:"pid"`
	OrderNo            string `json:"order_no"`
	LineNo             int    `json:"line_no"`
	ItemNo             string `json:"item_no"`
	Name               string `json:"name"`
	ManufacturerItemNo string `json:"manufacturer_item_no"`
	QuantityInitial    int    `json:"quantity_initial"`
	Quantity           int    `json:"quantity"`
	QuantityReceived   int    `json:"quantity_received"`
	QuantityDispatched int    `json:"quantity_dispatched"`
	IsDispatched       bool   `json:"is_dispatched"`
	IsTransit          bool   `json:"is_transit"`
	Unit               string `json:"unit"`
	CreatedAt          string `json:"created_at,omitempty"`
	QuantityReserved   int    `json:"quantity_reserved"`
	QuantityRemaining  int    `json:"quantity_remaining"`
}

// OrderDetailsResponse orden con sus líneas para la pestaña de detalles.
type OrderDetailsResponse struct {
	ID                    int64             `json:"id"`
	OrderNo               string            `json:"order_no"`
	Step                  string            `json:"step"`
	FromStorageID         int64             `json:"from_storage_id"`
	ToStorageID           int64             `json:"to_storage_id"`
	RequestedDeliveryDate *string           `json:"requested_delivery_date"`
	Lines                 []TransferLineDTO `json:"lines"`
}

// StockAllocationDTO previsualización de asignación de stock para una cantidad.
type StockAllocationDTO struct {
	Reserved  int `json:"reserved"`
	Remaining int `json:"remaining"`
}
