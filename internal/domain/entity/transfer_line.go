package entity

import "time"

// DefaultUnit unidad por defecto de las líneas de traslado.
const DefaultUnit = "Piece"

// LineNoStride incremento del número de línea. El salto grande evita
// colisiones con números importados del ERP y deja espacio para
// inserciones manuales de sistemas posteriores.
const LineNoStride = 10000

// TransferLine línea de una orden de traslado (pertenece a exactamente una orden).
// QuantityInitial refleja la cantidad inmediatamente anterior a la última
// reconciliación; nunca se muta cuando un aumento se divide en línea nueva.
type TransferLine struct {
	ID                 int64
	OrderID            int64
	OrderNo            string
	PID                int64
	ItemNo             string
	Name               string
	ManufacturerItemNo string
	Unit               string
	LineNo             int
	Quantity           int
	QuantityInitial    int
	QuantityReceived   int
	QuantityDispatched int
	IsTransit          bool
	CreatedAt          time.Time
	DeletedAt          *time.Time // marca de soft delete
}

// IsDispatched indica si la línea tiene cantidad despachada.
func (l *TransferLine) IsDispatched() bool {
	return l.QuantityDispatched > 0
}

// IsReceived indica si la línea está completamente recibida.
func (l *TransferLine) IsReceived() bool {
	return l.QuantityReceived >= l.Quantity
}

// IsDeleted indica si la línea fue soft-deleted.
func (l *TransferLine) IsDeleted() bool {
	return l.DeletedAt != nil
}
