package transfer

import (
	"context"

	"github.com/jhoicas/Traslados-api/internal/domain/entity"
	"github.com/jhoicas/Traslados-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del lote de
// reconciliación y de la cancelación: o todo confirma, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.TransferOrderRepository,
		lineRepo repository.TransferLineRepository,
		productRepo repository.ProductRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}

// OrderEventPublisher publica el evento de dominio "orden actualizada" hacia
// los sistemas dependientes. La escritura de auditoría siempre ocurre antes
// de la publicación.
type OrderEventPublisher interface {
	PublishOrderUpdated(ctx context.Context, order *entity.TransferOrder) error
}
