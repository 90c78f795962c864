package transfer

import (
	"time"

	"github.com/jhoicas/Traslados-api/internal/domain"
	"github.com/jhoicas/Traslados-api/internal/domain/entity"
	"github.com/jhoicas/Traslados-api/internal/domain/repository"
)

// buildLineWithProductInfo construye una línea nueva resolviendo los
// metadatos del producto en el catálogo. No persiste.
func buildLineWithProductInfo(
	productRepo repository.ProductRepository,
	order *entity.TransferOrder,
	pid int64,
	quantity, quantityReceived, quantityInitial, lineNo int,
	now time.Time,
) (*entity.TransferLine, error) {
	product, err := productRepo.GetByPID(pid)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	return &entity.TransferLine{
		OrderID:            order.ID,
		OrderNo:            order.OrderNo,
		PID:                product.PID,
		ItemNo:             product.ItemNo,
		Name:               product.Name,
		ManufacturerItemNo: product.ManufacturerItemNo,
		Unit:               entity.DefaultUnit,
		LineNo:             lineNo,
		Quantity:           quantity,
		QuantityInitial:    quantityInitial,
		QuantityReceived:   quantityReceived,
		CreatedAt:          now,
	}, nil
}
