package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Traslados-api/internal/domain/entity"
	"github.com/jhoicas/Traslados-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de solo lectura del catálogo de productos
// sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `pid, item_no, name, manufacturer_item_no, unit, price, cost, created_at`

// GetByPID obtiene un producto por id interno; nil sin error si no existe.
func (r *ProductRepo) GetByPID(pid int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE pid = $1`
	return r.getOne(query, pid)
}

// GetByItemNo obtiene un producto por número externo de artículo (artno).
func (r *ProductRepo) GetByItemNo(itemNo string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE item_no = $1`
	return r.getOne(query, itemNo)
}

func (r *ProductRepo) getOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.PID, &p.ItemNo, &p.Name, &p.ManufacturerItemNo, &p.Unit, &p.Price, &p.Cost, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
