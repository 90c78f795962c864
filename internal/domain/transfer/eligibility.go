package transfer

import "github.com/jhoicas/Traslados-api/internal/domain/entity"

// IsEditable decide si una orden admite edición de líneas: existe, no fue
// despachada y no tiene todas sus líneas recibidas. Predicado puro sobre el
// snapshot de la orden; no consulta colaboradores externos.
func IsEditable(order *entity.TransferOrder) bool {
	if order == nil {
		return false
	}
	if order.IsDispatched() {
		return false
	}
	if order.AreAllLinesReceived() {
		return false
	}
	return true
}
