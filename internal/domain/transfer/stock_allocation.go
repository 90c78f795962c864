package transfer

// StockAllocation cantidades reservada y restante para una línea frente al
// stock disponible.
type StockAllocation struct {
	Reserved  int
	Remaining int
}

// AllocateStock reparte stock para una cantidad solicitada (servicio de dominio).
// Reserva tanto como haya disponible, nunca negativo, nunca más de lo pedido.
// Remaining puede quedar negativo cuando falta stock.
func AllocateStock(available, requested int) StockAllocation {
	alloc := StockAllocation{Remaining: available - requested}
	if alloc.Remaining >= 0 {
		alloc.Reserved = requested
		return alloc
	}
	if available > 0 {
		alloc.Reserved = available
	}
	return alloc
}
