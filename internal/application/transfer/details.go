package transfer

import (
	"sort"
	"strings"

	"github.com/jhoicas/Traslados-api/internal/application/dto"
	"github.com/jhoicas/Traslados-api/internal/domain"
	"github.com/jhoicas/Traslados-api/internal/domain/entity"
	"github.com/jhoicas/Traslados-api/internal/domain/repository"
	"github.com/jhoicas/Traslados-api/internal/domain/transfer"
)

// OrderDetailsUseCase arma la pestaña de detalles de una orden: líneas
// activas filtradas y ordenadas, cada una con su previsualización de
// asignación de stock (de la cola de reservas si hay entrada, calculada si no).
type OrderDetailsUseCase struct {
	orderRepo repository.TransferOrderRepository
	queueRepo repository.StockQueueRepository
	stockRepo repository.StockRepository
}

// NewOrderDetailsUseCase construye el caso de uso.
func NewOrderDetailsUseCase(
	orderRepo repository.TransferOrderRepository,
	queueRepo repository.StockQueueRepository,
	stockRepo repository.StockRepository,
) *OrderDetailsUseCase {
	return &OrderDetailsUseCase{orderRepo: orderRepo, queueRepo: queueRepo, stockRepo: stockRepo}
}

// GetOrderDetails carga la orden con líneas filtradas/ordenadas. Columnas de
// filtro y orden fuera de la lista blanca se rechazan como entrada inválida.
func (uc *OrderDetailsUseCase) GetOrderDetails(id int64, filterColumn, filterValue, sortBy, sortMethod string) (*dto.OrderDetailsResponse, error) {
	if sortBy == "" {
		sortBy = "id"
	}
	if sortMethod == "" {
		sortMethod = "asc"
	}
	if !transfer.IsLineSortColumn(sortBy) {
		return nil, domain.ErrInvalidInput
	}
	if sortMethod != "asc" && sortMethod != "desc" {
		return nil, domain.ErrInvalidInput
	}
	if filterColumn != "" && !transfer.IsLineFilterColumn(filterColumn) {
		return nil, domain.ErrInvalidInput
	}

	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	lines := order.ActiveLines()
	if filterColumn != "" && filterValue != "" {
		filtered := lines[:0:0]
		needle := strings.ToLower(filterValue)
		for _, l := range lines {
			if strings.Contains(strings.ToLower(lineColumnValue(l, filterColumn)), needle) {
				filtered = append(filtered, l)
			}
		}
		lines = filtered
	}
	sortLines(lines, sortBy, sortMethod == "desc")

	resp := &dto.OrderDetailsResponse{
		ID:            order.ID,
		OrderNo:       order.OrderNo,
		Step:          order.Step.String(),
		FromStorageID: order.FromStorageID,
		ToStorageID:   order.ToStorageID,
		Lines:         make([]dto.TransferLineDTO, 0, len(lines)),
	}
	if order.RequestedDeliveryDate != nil {
		date := order.RequestedDeliveryDate.Format("2006-01-02")
		resp.RequestedDeliveryDate = &date
	}

	for _, line := range lines {
		alloc, err := uc.lineAllocation(line, order.FromStorageID)
		if err != nil {
			return nil, err
		}
		item := dto.TransferLineDTO{
			ID:                 line.ID,
			PID:                line.PID,
			OrderNo:            line.OrderNo,
			LineNo:             line.LineNo,
			ItemNo:             line.ItemNo,
			Name:               line.Name,
			ManufacturerItemNo: line.ManufacturerItemNo,
			QuantityInitial:    line.QuantityInitial,
			Quantity:           line.Quantity,
			QuantityReceived:   line.QuantityReceived,
			QuantityDispatched: line.QuantityDispatched,
			IsDispatched:       line.IsDispatched(),
			IsTransit:          line.IsTransit,
			Unit:               line.Unit,
			QuantityReserved:   alloc.Reserved,
			QuantityRemaining:  alloc.Remaining,
		}
		if !line.CreatedAt.IsZero() {
			item.CreatedAt = line.CreatedAt.Format("2006-01-02 15:04:05")
		}
		resp.Lines = append(resp.Lines, item)
	}
	return resp, nil
}

// lineAllocation toma reservado/restante de la entrada viva de la cola de
// reservas si existe para la línea; si no, los calcula al vuelo contra el
// stock vivo de la bodega de origen.
func (uc *OrderDetailsUseCase) lineAllocation(line *entity.TransferLine, fromStorageID int64) (transfer.StockAllocation, error) {
	entry, err := uc.queueRepo.LatestByProductAndStorage(line.PID, fromStorageID)
	if err != nil {
		return transfer.StockAllocation{}, err
	}
	if entry != nil {
		return transfer.StockAllocation{
			Reserved:  entry.QuantityReserved,
			Remaining: entry.QuantityRemaining,
		}, nil
	}
	stock, err := uc.stockRepo.GetStock(line.PID, fromStorageID)
	if err != nil {
		return transfer.StockAllocation{}, err
	}
	return transfer.AllocateStock(stock, line.Quantity), nil
}

func lineColumnValue(line *entity.TransferLine, column string) string {
	switch column {
	case "order_no":
		return line.OrderNo
	case "item_no":
		return line.ItemNo
	case "name":
		return line.Name
	case "manufacturer_item_no":
		return line.ManufacturerItemNo
	case "unit":
		return line.Unit
	default:
		return ""
	}
}

func sortLines(lines []*entity.TransferLine, column string, desc bool) {
	less := func(a, b *entity.TransferLine) bool {
		switch column {
		case "line_no":
			return a.LineNo < b.LineNo
		case "item_no":
			return a.ItemNo < b.ItemNo
		case "name":
			return a.Name < b.Name
		case "quantity":
			return a.Quantity < b.Quantity
		case "created_at":
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return a.ID < b.ID
		}
	}
	sort.SliceStable(lines, func(i, j int) bool {
		if desc {
			return less(lines[j], lines[i])
		}
		return less(lines[i], lines[j])
	})
}
