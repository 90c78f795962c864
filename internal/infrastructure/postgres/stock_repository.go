package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Traslados-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo consulta de stock vivo por producto y bodega. Respaldo del
// cálculo de asignación cuando la cola de reservas no tiene entrada.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetStock cantidad disponible en la bodega; 0 si no hay fila.
func (r *StockRepo) GetStock(productID, storageID int64) (int, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)::int
		FROM stock WHERE product_id = $1 AND storage_id = $2`
	var quantity int
	err := r.q.QueryRow(context.Background(), query, productID, storageID).Scan(&quantity)
	if err != nil {
		return 0, fmt.Errorf("get stock: %w", err)
	}
	return quantity, nil
}
