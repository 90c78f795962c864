package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product metadatos de producto del catálogo (colaborador de solo lectura).
// ItemNo es el número externo del artículo (artno); PID el id interno.
type Product struct {
	PID                int64
	ItemNo             string
	Name               string
	ManufacturerItemNo string
	Unit               string
	Price              decimal.Decimal // precio de venta
	Cost               decimal.Decimal // costo promedio ponderado
	CreatedAt          time.Time
}
