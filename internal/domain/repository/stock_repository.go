package repository

// StockRepository define el puerto de consulta de stock vivo por producto y
// bodega. Se usa como respaldo cuando no hay entrada en la cola de reservas.
type StockRepository interface {
	GetStock(productID, storageID int64) (int, error)
}
