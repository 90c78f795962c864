package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Traslados-api/internal/domain/entity"
	"github.com/jhoicas/Traslados-api/internal/domain/repository"
)

var _ repository.StockQueueRepository = (*StockQueueRepo)(nil)

// StockQueueRepo lectura de la cola FIFO de reservas de stock saliente.
// La tabla pertenece al sistema de asignación externo: aquí no hay escrituras.
type StockQueueRepo struct {
	q Querier
}

// NewStockQueueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockQueueRepository(q Querier) *StockQueueRepo {
	return &StockQueueRepo{q: q}
}

// LatestByProductAndStorage entrada más reciente por posición para
// (producto, bodega); nil sin error cuando la cola no tiene entradas.
func (r *StockQueueRepo) LatestByProductAndStorage(productID, storageID int64) (*entity.StockQueueEntry, error) {
	query := `
		SELECT id, product_id, storage_id, position, quantity_reserved, quantity_remaining, created_at
		FROM outgoing_stock_queue
		WHERE product_id = $1 AND storage_id = $2
		ORDER BY position DESC
		LIMIT 1`
	var e entity.StockQueueEntry
	err := r.q.QueryRow(context.Background(), query, productID, storageID).Scan(
		&e.ID, &e.ProductID, &e.StorageID, &e.Position, &e.QuantityReserved, &e.QuantityRemaining, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock queue entry: %w", err)
	}
	return &e, nil
}
