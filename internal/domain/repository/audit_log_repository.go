package repository

import "github.com/jhoicas/Traslados-api/internal/domain/entity"

// AuditLogRepository define el puerto de escritura hacia el sumidero de
// auditoría del sistema legado de órdenes (driver legacy_order).
type AuditLogRepository interface {
	Create(msg *entity.AuditMessage) error
}
