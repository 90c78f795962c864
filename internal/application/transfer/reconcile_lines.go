package transfer

import (
	"context"
	"time"

	"github.com/jhoicas/Traslados-api/internal/application/dto"
	"github.com/jhoicas/Traslados-api/internal/domain"
	"github.com/jhoicas/Traslados-api/internal/domain/entity"
	"github.com/jhoicas/Traslados-api/internal/domain/repository"
	"github.com/jhoicas/Traslados-api/internal/domain/transfer"
)

// ReconcileLinesUseCase aplica un lote de edición de líneas (update/insert/
// delete) a una orden de traslado en tres fases dentro de una transacción.
//
// Regla de seguridad de la cola de reservas: un aumento de cantidad nunca
// muta la línea existente; el delta se inserta como línea nueva para que el
// sistema de asignación reserve el aumento por separado, sin invalidar la
// reserva ya comprometida de la línea original.
type ReconcileLinesUseCase struct {
	txRunner    TxRunner
	orderRepo   repository.TransferOrderRepository
	productRepo repository.ProductRepository
}

// NewReconcileLinesUseCase construye el caso de uso.
func NewReconcileLinesUseCase(
	txRunner TxRunner,
	orderRepo repository.TransferOrderRepository,
	productRepo repository.ProductRepository,
) *ReconcileLinesUseCase {
	return &ReconcileLinesUseCase{
		txRunner:    txRunner,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// ReconcileLines aplica el lote completo y devuelve cuántas líneas activas
// quedan. El caso de uso no decide la cancelación implícita: si devuelve 0,
// el caller debe tratarlo como solicitud de cancelación.
//
// Fases, todas dentro de la misma transacción:
//  1. updates: baja o igual cantidad actualiza en sitio fijando
//     quantity_initial al valor previo; un aumento difiere el delta a la
//     fase de inserción como línea nueva.
//  2. inserts: líneas nuevas explícitas más los deltas diferidos, con
//     metadatos del catálogo y line_no = máximo (incluyendo eliminadas) + 10000.
//  3. deletes: soft delete del lote de eliminación.
func (uc *ReconcileLinesUseCase) ReconcileLines(
	ctx context.Context,
	orderID int64,
	batch dto.LineBatchDTO,
	requestedDeliveryDate *time.Time,
) (int, error) {
	if err := validateBatchQuantities(batch); err != nil {
		return 0, err
	}

	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return 0, err
	}
	if order == nil {
		return 0, domain.ErrNotFound
	}
	if !transfer.IsEditable(order) {
		return 0, domain.ErrPreconditionFailed
	}

	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.TransferOrderRepository,
		lineRepo repository.TransferLineRepository,
		productRepo repository.ProductRepository,
		_ repository.AuditLogRepository,
	) error {
		// Fase 1: actualizaciones, difiriendo aumentos como inserciones.
		var deferred []dto.NewLineEditDTO
		for _, edit := range batch.ExistLines {
			line := order.FindLine(edit.ID)
			if line == nil {
				return domain.ErrNotFound
			}
			if edit.Quantity > line.Quantity {
				delta := edit.Quantity - line.Quantity
				received := 0
				deferred = append(deferred, dto.NewLineEditDTO{
					PID:              line.PID,
					Quantity:         delta,
					QuantityReceived: &received,
				})
				continue
			}
			if err := lineRepo.Update(line.ID, edit.Quantity, edit.QuantityReceived, line.Quantity); err != nil {
				return err
			}
		}

		// Fase 2: inserciones (explícitas primero, deltas diferidos después).
		inserts := make([]dto.NewLineEditDTO, 0, len(batch.NewLines)+len(deferred))
		inserts = append(inserts, batch.NewLines...)
		inserts = append(inserts, deferred...)
		nextNo := order.MaxLineNo()
		now := time.Now()
		for _, item := range inserts {
			received := 0
			if item.QuantityReceived != nil {
				received = *item.QuantityReceived
			}
			nextNo += entity.LineNoStride
			line, err := buildLineWithProductInfo(productRepo, order, item.PID, item.Quantity, received, 0, nextNo, now)
			if err != nil {
				return err
			}
			if err := lineRepo.Create(line); err != nil {
				return err
			}
		}

		// Fase 3: eliminaciones (soft delete).
		ids := make([]int64, 0, len(batch.DeleteLines))
		for _, ref := range batch.DeleteLines {
			if order.FindAnyLine(ref.ID) == nil {
				return domain.ErrNotFound
			}
			ids = append(ids, ref.ID)
		}
		if len(ids) > 0 {
			if err := lineRepo.SoftDelete(ids); err != nil {
				return err
			}
		}

		if requestedDeliveryDate != nil {
			if err := orderRepo.UpdateRequestedDeliveryDate(order.ID, requestedDeliveryDate); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	updated, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return 0, err
	}
	if updated == nil {
		return 0, domain.ErrNotFound
	}
	return len(updated.ActiveLines()), nil
}

// BuildLineItem previsualiza una línea nueva resolviendo el producto por
// número de artículo externo. No persiste; la inserción real pasa por el
// lote de reconciliación.
func (uc *ReconcileLinesUseCase) BuildLineItem(orderID int64, itemNo string, quantity int) (*entity.TransferLine, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByItemNo(itemNo)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return buildLineWithProductInfo(
		uc.productRepo, order, product.PID,
		quantity, 0, 0,
		order.MaxLineNo()+entity.LineNoStride, time.Now(),
	)
}

// validateBatchQuantities rechaza cantidades negativas en cualquier grupo
// del lote antes de tocar la orden.
func validateBatchQuantities(batch dto.LineBatchDTO) error {
	for _, edit := range batch.ExistLines {
		if edit.Quantity < 0 || edit.QuantityReceived < 0 {
			return domain.ErrInvalidInput
		}
	}
	for _, item := range batch.NewLines {
		if item.Quantity < 0 {
			return domain.ErrInvalidInput
		}
		if item.QuantityReceived != nil && *item.QuantityReceived < 0 {
			return domain.ErrInvalidInput
		}
	}
	return nil
}
