package entity

import "time"

// Severidades de mensajes de auditoría.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// EntityRef referencia a una entidad adjunta a un mensaje de auditoría.
type EntityRef struct {
	Type string `json:"type"`
	ID   int64  `json:"id"`
}

// AuditMessage mensaje estructurado para el sumidero de auditoría del
// sistema legado de órdenes (severidad, texto, etiquetas, entidades
// referenciadas y contexto libre).
type AuditMessage struct {
	ID        string
	Severity  string
	Text      string
	Labels    []string
	Entities  []EntityRef
	Context   map[string]any
	CreatedAt time.Time
}
