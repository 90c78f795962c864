package transfer

import (
	"github.com/jhoicas/Traslados-api/internal/domain"
	"github.com/jhoicas/Traslados-api/internal/domain/repository"
	"github.com/jhoicas/Traslados-api/internal/domain/transfer"
)

// StockAllocationUseCase calcula la previsualización de asignación de stock
// para una cantidad solicitada. Solo lectura e idempotente; los números son
// un mejor esfuerzo frente a reservas concurrentes hechas en otro lado,
// nunca una garantía.
type StockAllocationUseCase struct {
	queueRepo repository.StockQueueRepository
	stockRepo repository.StockRepository
}

// NewStockAllocationUseCase construye el caso de uso.
func NewStockAllocationUseCase(
	queueRepo repository.StockQueueRepository,
	stockRepo repository.StockRepository,
) *StockAllocationUseCase {
	return &StockAllocationUseCase{queueRepo: queueRepo, stockRepo: stockRepo}
}

// CalculateLineStock usa como disponible el quantity_remaining de la entrada
// más reciente de la cola de reservas para (producto, bodega); si no hay
// entrada, cae al stock vivo.
func (uc *StockAllocationUseCase) CalculateLineStock(quantity int, productID, storageID int64) (transfer.StockAllocation, error) {
	if quantity < 0 {
		return transfer.StockAllocation{}, domain.ErrInvalidInput
	}

	entry, err := uc.queueRepo.LatestByProductAndStorage(productID, storageID)
	if err != nil {
		return transfer.StockAllocation{}, err
	}

	available := 0
	if entry != nil {
		available = entry.QuantityRemaining
	} else {
		available, err = uc.stockRepo.GetStock(productID, storageID)
		if err != nil {
			return transfer.StockAllocation{}, err
		}
	}

	return transfer.AllocateStock(available, quantity), nil
}
