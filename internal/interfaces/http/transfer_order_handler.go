package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Traslados-api/internal/application/dto"
	"github.com/jhoicas/Traslados-api/internal/application/transfer"
	"github.com/jhoicas/Traslados-api/internal/domain"
)

// TransferOrderHandler maneja las peticiones HTTP de órdenes de traslado.
// La validación de campos ocurre aquí, en el borde; los casos de uso reciben
// lotes ya tipados.
type TransferOrderHandler struct {
	reconcileUC  *transfer.ReconcileLinesUseCase
	cancelUC     *transfer.CancelOrderUseCase
	detailsUC    *transfer.OrderDetailsUseCase
	allocationUC *transfer.StockAllocationUseCase
}

// NewTransferOrderHandler construye el handler.
func NewTransferOrderHandler(
	reconcileUC *transfer.ReconcileLinesUseCase,
	cancelUC *transfer.CancelOrderUseCase,
	detailsUC *transfer.OrderDetailsUseCase,
	allocationUC *transfer.StockAllocationUseCase,
) *TransferOrderHandler {
	return &TransferOrderHandler{
		reconcileUC:  reconcileUC,
		cancelUC:     cancelUC,
		detailsUC:    detailsUC,
		allocationUC: allocationUC,
	}
}

// UpdateLines aplica el lote de edición de líneas. Si tras el lote la orden
// queda sin líneas activas, dispara la cancelación implícita.
func (h *TransferOrderHandler) UpdateLines(c *fiber.Ctx) error {
	orderID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.UpdateOrderLinesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	var requestedDate *time.Time
	if in.RequestedDeliveryDate != nil && *in.RequestedDeliveryDate != "" {
		parsed, err := time.Parse("2006-01-02", *in.RequestedDeliveryDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "requested_delivery_date inválida"})
		}
		requestedDate = &parsed
	}

	activeLines, err := h.reconcileUC.ReconcileLines(c.Context(), orderID, in.TransferOrderLines, requestedDate)
	if err != nil {
		return mapDomainError(c, err)
	}

	// Una orden abierta sin líneas no debe existir: el vaciado total se trata
	// como solicitud de cancelación.
	if activeLines == 0 {
		result := h.cancelUC.CancelOrder(c.Context(), orderID, "All lines removed.", GetAccount(c))
		if !result.IsSuccess() {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"success": false,
				"errors":  result.Errors(),
			})
		}
		return c.JSON(fiber.Map{"active_lines": 0, "canceled": true})
	}
	return c.JSON(fiber.Map{"active_lines": activeLines, "canceled": false})
}

// Cancel cancela la orden con el mensaje y el actor autenticado.
func (h *TransferOrderHandler) Cancel(c *fiber.Ctx) error {
	orderID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.CancelOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result := h.cancelUC.CancelOrder(c.Context(), orderID, in.Message, GetAccount(c))
	if !result.IsSuccess() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"errors":  result.Errors(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetDetails pestaña de detalles: líneas filtradas/ordenadas con la
// previsualización de asignación de stock.
func (h *TransferOrderHandler) GetDetails(c *fiber.Ctx) error {
	orderID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	details, err := h.detailsUC.GetOrderDetails(
		orderID,
		c.Query("filter_column"),
		c.Query("filter_value"),
		c.Query("sort_by", "id"),
		c.Query("sort_method", "asc"),
	)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(details)
}

// CheckLineItem previsualiza una línea nueva por número de artículo, sin
// persistir nada.
func (h *TransferOrderHandler) CheckLineItem(c *fiber.Ctx) error {
	orderID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.CheckLineItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	line, err := h.reconcileUC.BuildLineItem(orderID, in.ItemNo, in.Quantity)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"pid":      line.PID,
		"item_no":  line.ItemNo,
		"name":     line.Name,
		"unit":     line.Unit,
		"line_no":  line.LineNo,
		"quantity": line.Quantity,
	})
}

// StockPreview previsualización de asignación de stock para una cantidad
// solicitada contra (producto, bodega). Mejor esfuerzo, no garantía.
func (h *TransferOrderHandler) StockPreview(c *fiber.Ctx) error {
	pid, err := strconv.ParseInt(c.Query("pid"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pid inválido"})
	}
	storageID, err := strconv.ParseInt(c.Query("storage_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "storage_id inválido"})
	}
	quantity, err := strconv.Atoi(c.Query("quantity", "0"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity inválida"})
	}

	alloc, err := h.allocationUC.CalculateLineStock(quantity, pid, storageID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.StockAllocationDTO{Reserved: alloc.Reserved, Remaining: alloc.Remaining})
}

// mapDomainError traduce errores de dominio a estados HTTP.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrPreconditionFailed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PRECONDITION", Message: "This TransferOrder cannot be changed."})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
