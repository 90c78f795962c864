package repository

import (
	"time"

	"github.com/jhoicas/Traslados-api/internal/domain/entity"
)

// TransferOrderRepository define el puerto de persistencia para TransferOrder (DIP).
// GetByID y GetByOrderNo cargan la orden con todas sus líneas, incluidas las
// soft-deleted (necesarias para el cálculo de line_no); devuelven nil sin
// error cuando la orden no existe.
type TransferOrderRepository interface {
	GetByID(id int64) (*entity.TransferOrder, error)
	GetByOrderNo(orderNo string) (*entity.TransferOrder, error)
	UpdateStep(id int64, step entity.TransferStep) error
	UpdateRequestedDeliveryDate(id int64, date *time.Time) error
}
