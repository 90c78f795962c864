package entity

import "time"

// TransferStep paso del ciclo de vida de una orden de traslado.
// Solo avanza hacia adelante; CANCEL es terminal y se permite desde
// cualquier estado no terminal.
type TransferStep int

const (
	StepOpen       TransferStep = 0
	StepDispatched TransferStep = 1
	StepReceived   TransferStep = 2
	StepCancel     TransferStep = 99
)

// String nombre legible del paso.
func (s TransferStep) String() string {
	switch s {
	case StepOpen:
		return "OPEN"
	case StepDispatched:
		return "DISPATCHED"
	case StepReceived:
		return "RECEIVED"
	case StepCancel:
		return "CANCEL"
	default:
		return "UNKNOWN"
	}
}

// IsTerminal indica si el paso es terminal (RECEIVED o CANCEL).
func (s TransferStep) IsTerminal() bool {
	return s == StepReceived || s == StepCancel
}

// CanTransitionTo valida la transición de paso: solo hacia adelante,
// excepto CANCEL que se permite desde cualquier estado no terminal.
func (s TransferStep) CanTransitionTo(next TransferStep) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StepCancel {
		return true
	}
	return next > s
}

// TransferOrder orden de traslado de stock entre dos bodegas (raíz del agregado).
// Lines incluye también las líneas soft-deleted cuando se carga completa;
// usar ActiveLines para la vista de negocio.
type TransferOrder struct {
	ID                    int64
	OrderNo               string // número legible, inmutable una vez asignado
	FromStorageID         int64
	ToStorageID           int64
	Step                  TransferStep
	RequestedDeliveryDate *time.Time
	Lines                 []*TransferLine
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ActiveLines devuelve las líneas no eliminadas.
func (o *TransferOrder) ActiveLines() []*TransferLine {
	active := make([]*TransferLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		if !l.IsDeleted() {
			active = append(active, l)
		}
	}
	return active
}

// FindLine busca una línea activa por id; nil si no pertenece a la orden.
func (o *TransferOrder) FindLine(id int64) *TransferLine {
	for _, l := range o.Lines {
		if l.ID == id && !l.IsDeleted() {
			return l
		}
	}
	return nil
}

// FindAnyLine busca una línea por id incluyendo las eliminadas.
func (o *TransferOrder) FindAnyLine(id int64) *TransferLine {
	for _, l := range o.Lines {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// IsDispatched indica si la orden ya fue despachada: por paso del ciclo
// o porque alguna línea activa tiene cantidad despachada.
func (o *TransferOrder) IsDispatched() bool {
	if o.Step == StepDispatched || o.Step == StepReceived {
		return true
	}
	for _, l := range o.ActiveLines() {
		if l.IsDispatched() {
			return true
		}
	}
	return false
}

// AreAllLinesReceived indica si todas las líneas activas están completamente
// recibidas. Una orden sin líneas activas no cuenta como recibida.
func (o *TransferOrder) AreAllLinesReceived() bool {
	active := o.ActiveLines()
	if len(active) == 0 {
		return false
	}
	for _, l := range active {
		if !l.IsReceived() {
			return false
		}
	}
	return true
}

// MaxLineNo máximo line_no de la orden, incluyendo líneas soft-deleted.
// Las eliminadas cuentan para no reutilizar números de línea.
func (o *TransferOrder) MaxLineNo() int {
	max := 0
	for _, l := range o.Lines {
		if l.LineNo > max {
			max = l.LineNo
		}
	}
	return max
}
