package repository

import "github.com/jhoicas/Traslados-api/internal/domain/entity"

// StockQueueRepository define el puerto de solo lectura sobre la cola de
// reservas de stock saliente. La cola pertenece al sistema de asignación
// externo; este núcleo nunca la escribe.
type StockQueueRepository interface {
	// LatestByProductAndStorage devuelve la entrada más reciente por posición
	// para (producto, bodega); nil sin error cuando no hay entradas.
	LatestByProductAndStorage(productID, storageID int64) (*entity.StockQueueEntry, error)
}
