package repository

import "github.com/jhoicas/Traslados-api/internal/domain/entity"

// TransferLineRepository define el puerto de persistencia para TransferLine (DIP).
// Las líneas solo se destruyen por soft delete; MaxLineNo incluye las
// eliminadas para que los números de línea nunca se reutilicen.
type TransferLineRepository interface {
	GetByID(id int64) (*entity.TransferLine, error)
	Create(line *entity.TransferLine) error
	Update(id int64, quantity, quantityReceived, quantityInitial int) error
	SoftDelete(ids []int64) error
	ListByOrder(orderID int64, includeDeleted bool) ([]*entity.TransferLine, error)
	MaxLineNo(orderID int64) (int, error)
}
