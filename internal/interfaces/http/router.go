package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Traslados-api/internal/application/transfer"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReconcileUC  *transfer.ReconcileLinesUseCase
	CancelUC     *transfer.CancelOrderUseCase
	DetailsUC    *transfer.OrderDetailsUseCase
	AllocationUC *transfer.StockAllocationUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token; el actor alimenta la auditoría)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	orders := protected.Group("/transfer-orders")
	handler := NewTransferOrderHandler(deps.ReconcileUC, deps.CancelUC, deps.DetailsUC, deps.AllocationUC)
	orders.Get("/stock-preview", handler.StockPreview)
	orders.Get("/:id/details", handler.GetDetails)
	orders.Put("/:id/lines", handler.UpdateLines)
	orders.Post("/:id/lines/check", handler.CheckLineItem)
	orders.Post("/:id/cancel", handler.Cancel)
}
