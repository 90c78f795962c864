package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Traslados-api/internal/domain/entity"
	"github.com/jhoicas/Traslados-api/internal/domain/repository"
)

var _ repository.TransferOrderRepository = (*TransferOrderRepo)(nil)

// TransferOrderRepo implementación de TransferOrderRepository sobre
// PostgreSQL (usable con pool o tx).
type TransferOrderRepo struct {
	q Querier
}

// NewTransferOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferOrderRepository(q Querier) *TransferOrderRepo {
	return &TransferOrderRepo{q: q}
}

const transferOrderColumns = `id, order_no, from_storage_id, to_storage_id, step, requested_delivery_date, created_at, updated_at`

// GetByID carga la orden con todas sus líneas (incluidas soft-deleted).
// Devuelve nil sin error cuando no existe.
func (r *TransferOrderRepo) GetByID(id int64) (*entity.TransferOrder, error) {
	query := `SELECT ` + transferOrderColumns + ` FROM transfer_orders WHERE id = $1`
	return r.getOne(query, id)
}

// GetByOrderNo carga la orden por su número legible.
func (r *TransferOrderRepo) GetByOrderNo(orderNo string) (*entity.TransferOrder, error) {
	query := `SELECT ` + transferOrderColumns + ` FROM transfer_orders WHERE order_no = $1`
	return r.getOne(query, orderNo)
}

func (r *TransferOrderRepo) getOne(query string, arg any) (*entity.TransferOrder, error) {
	var o entity.TransferOrder
	var step int
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&o.ID, &o.OrderNo, &o.FromStorageID, &o.ToStorageID, &step,
		&o.RequestedDeliveryDate, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer order: %w", err)
	}
	o.Step = entity.TransferStep(step)

	lines, err := queryLines(r.q, `SELECT `+transferLineColumns+` FROM transfer_lines WHERE order_id = $1 ORDER BY line_no`, o.ID)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

// UpdateStep transiciona el paso del ciclo de vida de la orden.
func (r *TransferOrderRepo) UpdateStep(id int64, step entity.TransferStep) error {
	query := `UPDATE transfer_orders SET step = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, int(step))
	if err != nil {
		return fmt.Errorf("update transfer order step: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update transfer order step: order %d not found", id)
	}
	return nil
}

// UpdateRequestedDeliveryDate fija (o limpia) la fecha de entrega solicitada.
func (r *TransferOrderRepo) UpdateRequestedDeliveryDate(id int64, date *time.Time) error {
	query := `UPDATE transfer_orders SET requested_delivery_date = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, date)
	if err != nil {
		return fmt.Errorf("update requested delivery date: %w", err)
	}
	return nil
}
