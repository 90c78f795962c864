package transfer

// ActionResult resultado de una acción de negocio: éxito o fallo más una
// lista ordenada de mensajes legibles. Los fallos esperados de negocio se
// devuelven aquí, no como error de control de flujo.
type ActionResult struct {
	success bool
	errors  []string
}

// NewActionResult construye el resultado con el estado inicial dado.
func NewActionResult(success bool) *ActionResult {
	return &ActionResult{success: success}
}

// SetSuccess marca el resultado como exitoso o fallido.
func (r *ActionResult) SetSuccess(success bool) {
	r.success = success
}

// SetErrors reemplaza la lista de mensajes de error.
func (r *ActionResult) SetErrors(msgs []string) {
	r.errors = msgs
}

// AddError agrega un mensaje de error al final.
func (r *ActionResult) AddError(msg string) {
	r.errors = append(r.errors, msg)
}

// IsSuccess indica si la acción terminó bien.
func (r *ActionResult) IsSuccess() bool {
	return r.success
}

// Errors mensajes de error en orden de inserción.
func (r *ActionResult) Errors() []string {
	return r.errors
}
