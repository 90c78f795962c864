package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrPreconditionFailed = errors.New("la orden no admite cambios en su estado actual")
	ErrConflict           = errors.New("conflicto con el estado actual")
)
