package transfer

import "github.com/jhoicas/Traslados-api/internal/domain/entity"

// PresentLine instantánea de presentación de una línea, tal como se adjunta
// al contexto del mensaje de auditoría al cancelar una orden.
func PresentLine(line *entity.TransferLine) map[string]any {
	var createdAt any
	if !line.CreatedAt.IsZero() {
		createdAt = line.CreatedAt.Format("2006-01-02 15:04:05")
	}
	return map[string]any{
		"id":                   line.ID,
		"pid":                  line.PID,
		"order_no":             line.OrderNo,
		"line_no":              line.LineNo,
		"item_no":              line.ItemNo,
		"name":                 line.Name,
		"manufacturer_item_no": line.ManufacturerItemNo,
		"quantity_initial":     line.QuantityInitial,
		"quantity":             line.Quantity,
		"quantity_received":    line.QuantityReceived,
		"quantity_dispatched":  line.QuantityDispatched,
		"is_dispatched":        line.IsDispatched(),
		"is_transit":           line.IsTransit,
		"unit":                 line.Unit,
		"created_at":           createdAt,
	}
}
