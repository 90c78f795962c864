package entity

import "time"

// StockQueueEntry entrada de la cola FIFO de reservas de stock saliente
// (por producto y bodega). Es propiedad del sistema de asignación externo:
// este núcleo solo la lee; escribirla desincronizaría reservas ya
// comprometidas aguas arriba.
type StockQueueEntry struct {
	ID                int64
	ProductID         int64
	StorageID         int64
	Position          int64
	QuantityReserved  int
	QuantityRemaining int
	CreatedAt         time.Time
}
