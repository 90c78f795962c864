package repository

import "github.com/jhoicas/Traslados-api/internal/domain/entity"

// ProductRepository define el puerto de lectura del catálogo de productos (DIP).
// Resuelve por id interno (pid) o por número externo de artículo (artno).
// Devuelve nil sin error cuando el producto no existe.
type ProductRepository interface {
	GetByPID(pid int64) (*entity.Product, error)
	GetByItemNo(itemNo string) (*entity.Product, error)
}
