package transfer

import (
	"fmt"

	"github.com/jhoicas/Traslados-api/internal/domain/entity"
)

// OrderValidator validación estructural de una orden de traslado, distinta
// del predicado IsEditable: revisa consistencia a nivel de campos y
// asociaciones requeridas antes de una cancelación.
type OrderValidator struct {
	order *entity.TransferOrder
	errs  []string
}

// NewOrderValidator construye el validador para la orden dada.
func NewOrderValidator(order *entity.TransferOrder) *OrderValidator {
	return &OrderValidator{order: order}
}

// Fails ejecuta las validaciones y reporta si alguna falló.
func (v *OrderValidator) Fails() bool {
	v.errs = nil

	if v.order.OrderNo == "" {
		v.errs = append(v.errs, "Transfer order number is missing.")
	}
	if v.order.FromStorageID == 0 || v.order.ToStorageID == 0 {
		v.errs = append(v.errs, "Transfer order storages are missing.")
	} else if v.order.FromStorageID == v.order.ToStorageID {
		v.errs = append(v.errs, "Transfer order storages must differ.")
	}
	if v.order.Step.IsTerminal() {
		v.errs = append(v.errs, "Transfer order is already completed or canceled.")
	}
	for _, line := range v.order.ActiveLines() {
		if line.PID == 0 {
			v.errs = append(v.errs, fmt.Sprintf("Transfer order line %d is missing a product reference.", line.LineNo))
		}
	}

	return len(v.errs) > 0
}

// Errors mensajes de la última ejecución de Fails.
func (v *OrderValidator) Errors() []string {
	return v.errs
}
