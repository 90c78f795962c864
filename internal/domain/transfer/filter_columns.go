package transfer

// Columnas de línea permitidas para filtrar y ordenar en la pestaña de
// detalles. Cualquier otra columna se rechaza como entrada inválida.
var lineFilterColumns = map[string]struct{}{
	"order_no":             {},
	"item_no":              {},
	"name":                 {},
	"manufacturer_item_no": {},
	"unit":                 {},
}

var lineSortColumns = map[string]struct{}{
	"id":         {},
	"line_no":    {},
	"item_no":    {},
	"name":       {},
	"quantity":   {},
	"created_at": {},
}

// IsLineFilterColumn indica si la columna está en la lista blanca de filtrado.
func IsLineFilterColumn(column string) bool {
	_, ok := lineFilterColumns[column]
	return ok
}

// IsLineSortColumn indica si la columna está en la lista blanca de ordenamiento.
func IsLineSortColumn(column string) bool {
	_, ok := lineSortColumns[column]
	return ok
}
