package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Traslados-api/internal/domain/entity"
	"github.com/jhoicas/Traslados-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo escribe mensajes de auditoría en la tabla del sistema legado
// de órdenes (driver legacy_order). Participa de la transacción del caller
// para que la auditoría confirme junto con la mutación que describe.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create inserta el mensaje con etiquetas, entidades y contexto como JSONB.
func (r *AuditLogRepo) Create(msg *entity.AuditMessage) error {
	entities, err := json.Marshal(msg.Entities)
	if err != nil {
		return fmt.Errorf("marshal audit entities: %w", err)
	}
	auditContext, err := json.Marshal(msg.Context)
	if err != nil {
		return fmt.Errorf("marshal audit context: %w", err)
	}
	query := `
		INSERT INTO legacy_order_log (id, severity, message, labels, entities, context, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(context.Background(), query,
		msg.ID, msg.Severity, msg.Text, msg.Labels, entities, auditContext, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create audit message: %w", err)
	}
	return nil
}
