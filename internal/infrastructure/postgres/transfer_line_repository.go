package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Traslados-api/internal/domain/entity"
	"github.com/jhoicas/Traslados-api/internal/domain/repository"
)

var _ repository.TransferLineRepository = (*TransferLineRepo)(nil)

// TransferLineRepo implementación de TransferLineRepository sobre PostgreSQL
// (usable con pool o tx). El borrado siempre es soft delete vía deleted_at.
type TransferLineRepo struct {
	q Querier
}

// NewTransferLineRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferLineRepository(q Querier) *TransferLineRepo {
	return &TransferLineRepo{q: q}
}

const transferLineColumns = `id, order_id, order_no, pid, item_no, name, manufacturer_item_no, unit,
	line_no, quantity, quantity_initial, quantity_received, quantity_dispatched, is_transit, created_at, deleted_at`

// GetByID obtiene una línea por id (también si está soft-deleted); nil sin
// error cuando no existe.
func (r *TransferLineRepo) GetByID(id int64) (*entity.TransferLine, error) {
	query := `SELECT ` + transferLineColumns + ` FROM transfer_lines WHERE id = $1`
	rows, err := r.q.Query(context.Background(), query, id)
	if err != nil {
		return nil, fmt.Errorf("get transfer line: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanLine(rows)
}

// Create inserta la línea y asigna su id.
func (r *TransferLineRepo) Create(line *entity.TransferLine) error {
	query := `
		INSERT INTO transfer_lines (order_id, order_no, pid, item_no, name, manufacturer_item_no, unit,
			line_no, quantity, quantity_initial, quantity_received, quantity_dispatched, is_transit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		line.OrderID, line.OrderNo, line.PID, line.ItemNo, line.Name, line.ManufacturerItemNo, line.Unit,
		line.LineNo, line.Quantity, line.QuantityInitial, line.QuantityReceived, line.QuantityDispatched,
		line.IsTransit, line.CreatedAt,
	).Scan(&line.ID)
	if err != nil {
		return fmt.Errorf("create transfer line: %w", err)
	}
	return nil
}

// Update actualiza cantidad, cantidad recibida y la base quantity_initial de
// una línea (única mutación en sitio permitida por la reconciliación).
func (r *TransferLineRepo) Update(id int64, quantity, quantityReceived, quantityInitial int) error {
	query := `
		UPDATE transfer_lines
		SET quantity = $2, quantity_received = $3, quantity_initial = $4
		WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query, id, quantity, quantityReceived, quantityInitial)
	if err != nil {
		return fmt.Errorf("update transfer line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update transfer line: line %d not found", id)
	}
	return nil
}

// SoftDelete marca como eliminadas las líneas indicadas.
func (r *TransferLineRepo) SoftDelete(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE transfer_lines SET deleted_at = now() WHERE id = ANY($1) AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, ids)
	if err != nil {
		return fmt.Errorf("soft delete transfer lines: %w", err)
	}
	return nil
}

// ListByOrder lista las líneas de una orden ordenadas por line_no.
func (r *TransferLineRepo) ListByOrder(orderID int64, includeDeleted bool) ([]*entity.TransferLine, error) {
	query := `SELECT ` + transferLineColumns + ` FROM transfer_lines WHERE order_id = $1`
	if !includeDeleted {
		query += ` AND deleted_at IS NULL`
	}
	query += ` ORDER BY line_no`
	return queryLines(r.q, query, orderID)
}

// MaxLineNo máximo line_no de la orden incluyendo líneas soft-deleted; 0 si
// la orden no tiene líneas.
func (r *TransferLineRepo) MaxLineNo(orderID int64) (int, error) {
	query := `SELECT COALESCE(MAX(line_no), 0) FROM transfer_lines WHERE order_id = $1`
	var max int
	err := r.q.QueryRow(context.Background(), query, orderID).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max line no: %w", err)
	}
	return max, nil
}

func queryLines(q Querier, query string, args ...any) ([]*entity.TransferLine, error) {
	rows, err := q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transfer lines: %w", err)
	}
	defer rows.Close()

	var lines []*entity.TransferLine
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func scanLine(rows pgx.Rows) (*entity.TransferLine, error) {
	var l entity.TransferLine
	err := rows.Scan(
		&l.ID, &l.OrderID, &l.OrderNo, &l.PID, &l.ItemNo, &l.Name, &l.ManufacturerItemNo, &l.Unit,
		&l.LineNo, &l.Quantity, &l.QuantityInitial, &l.QuantityReceived, &l.QuantityDispatched,
		&l.IsTransit, &l.CreatedAt, &l.DeletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan transfer line: %w", err)
	}
	return &l, nil
}
