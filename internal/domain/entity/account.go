package entity

// SystemUserID centinela para acciones sin usuario (procesos del sistema).
const SystemUserID int64 = 0

// Account cuenta del usuario que ejecuta una acción (para auditoría).
type Account struct {
	ID    int64
	Name  string
	Email string
}
