package transfer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Traslados-api/internal/domain/entity"
	"github.com/jhoicas/Traslados-api/internal/domain/repository"
	"github.com/jhoicas/Traslados-api/internal/domain/transfer"
	"github.com/jhoicas/Traslados-api/pkg/logger"
)

// Etiquetas del mensaje de auditoría de cancelación.
var cancelAuditLabels = []string{"TO", "CANCEL_TO"}

// CancelOrderUseCase cancela una orden de traslado como unidad atómica:
// soft delete de todas las líneas, transición del paso a CANCEL y escritura
// del mensaje de auditoría confirman juntos o no confirman. Tras el commit
// se publica el evento "orden actualizada" con las líneas ya vacías.
type CancelOrderUseCase struct {
	txRunner  TxRunner
	orderRepo repository.TransferOrderRepository
	events    OrderEventPublisher
	log       *logger.Logger
}

// NewCancelOrderUseCase construye el caso de uso.
func NewCancelOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.TransferOrderRepository,
	events OrderEventPublisher,
	log *logger.Logger,
) *CancelOrderUseCase {
	return &CancelOrderUseCase{
		txRunner:  txRunner,
		orderRepo: orderRepo,
		events:    events,
		log:       log,
	}
}

// CancelOrder cancela la orden y devuelve un ActionResult: los fallos de
// negocio esperados (orden inexistente, validación estructural) vuelven como
// mensajes en el resultado; un fallo inesperado revierte la transacción, se
// reporta al log y el caller solo recibe un mensaje genérico.
func (uc *CancelOrderUseCase) CancelOrder(ctx context.Context, id int64, message string, actor *entity.Account) *transfer.ActionResult {
	result := transfer.NewActionResult(false)

	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		uc.log.Error().Err(err).Int64("order_id", id).Msg("cargar orden de traslado para cancelar")
		result.SetErrors([]string{"Transfer order missing."})
		return result
	}
	if order == nil {
		result.SetErrors([]string{"Transfer order missing."})
		return result
	}

	validator := transfer.NewOrderValidator(order)
	if validator.Fails() {
		result.SetErrors(validator.Errors())
		return result
	}

	userName, userEmail, userID := actorInfo(actor)

	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.TransferOrderRepository,
		lineRepo repository.TransferLineRepository,
		_ repository.ProductRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		active := order.ActiveLines()
		snapshots := make([]map[string]any, 0, len(active))
		ids := make([]int64, 0, len(active))
		for _, line := range active {
			snapshots = append(snapshots, transfer.PresentLine(line))
			ids = append(ids, line.ID)
		}
		if len(ids) > 0 {
			if err := lineRepo.SoftDelete(ids); err != nil {
				return err
			}
		}
		if err := orderRepo.UpdateStep(order.ID, entity.StepCancel); err != nil {
			return err
		}

		audit := &entity.AuditMessage{
			ID:       uuid.NewString(),
			Severity: entity.SeverityInfo,
			Text:     "The order has been canceled. " + message,
			Labels:   cancelAuditLabels,
			Entities: []entity.EntityRef{{Type: "transfer_order", ID: order.ID}},
			Context: map[string]any{
				"user":  userName,
				"email": userEmail,
				"uid":   userID,
				"lines": snapshots,
			},
			CreatedAt: time.Now(),
		}
		return auditRepo.Create(audit)
	})
	if err != nil {
		uc.log.Error().Err(err).Int64("order_id", id).Msg("cancelación de orden de traslado")
		result.SetErrors([]string{"An error occurred while canceling an order."})
		return result
	}

	// Recarga la orden (líneas ya vacías) y publica el evento. El commit ya
	// ocurrió: un fallo aquí se reporta y el resultado queda en fallo, pero
	// la cancelación persiste.
	updated, err := uc.orderRepo.GetByID(id)
	if err == nil && updated != nil {
		err = uc.events.PublishOrderUpdated(ctx, updated)
	}
	if err != nil {
		uc.log.Error().Err(err).Int64("order_id", id).Msg("publicar evento de orden actualizada")
		result.SetErrors([]string{"An error occurred while canceling an order."})
		return result
	}

	result.SetSuccess(true)
	return result
}

// actorInfo datos del actor para el contexto de auditoría; centinela de
// usuario del sistema cuando no hay actor.
func actorInfo(actor *entity.Account) (name, email string, id int64) {
	if actor == nil {
		return "", "", entity.SystemUserID
	}
	return actor.Name, actor.Email, actor.ID
}
