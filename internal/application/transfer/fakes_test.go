package transfer_test

import (
	"context"
	"time"

	"github.com/jhoicas/Traslados-api/internal/domain/entity"
	"github.com/jhoicas/Traslados-api/internal/domain/repository"
	"github.com/jhoicas/Traslados-api/pkg/logger"
)

// memStore almacén en memoria compartido por los repositorios fake. Los
// campos fail* permiten inyectar fallos para probar el rollback.
type memStore struct {
	orders     map[int64]*entity.TransferOrder
	products   map[int64]*entity.Product
	audits     []*entity.AuditMessage
	nextLineID int64

	failCreateLine error
	failAudit      error
	failUpdateStep error
}

func newMemStore() *memStore {
	return &memStore{
		orders:     make(map[int64]*entity.TransferOrder),
		products:   make(map[int64]*entity.Product),
		nextLineID: 1000,
	}
}

func cloneLine(l *entity.TransferLine) *entity.TransferLine {
	c := *l
	if l.DeletedAt != nil {
		t := *l.DeletedAt
		c.DeletedAt = &t
	}
	return &c
}

func cloneOrder(o *entity.TransferOrder) *entity.TransferOrder {
	c := *o
	c.Lines = make([]*entity.TransferLine, len(o.Lines))
	for i, l := range o.Lines {
		c.Lines[i] = cloneLine(l)
	}
	if o.RequestedDeliveryDate != nil {
		t := *o.RequestedDeliveryDate
		c.RequestedDeliveryDate = &t
	}
	return &c
}

// snapshot copia profunda del estado mutable, para restaurar en rollback.
func (s *memStore) snapshot() map[int64]*entity.TransferOrder {
	backup := make(map[int64]*entity.TransferOrder, len(s.orders))
	for id, o := range s.orders {
		backup[id] = cloneOrder(o)
	}
	return backup
}

func (s *memStore) findLine(id int64) *entity.TransferLine {
	for _, o := range s.orders {
		for _, l := range o.Lines {
			if l.ID == id {
				return l
			}
		}
	}
	return nil
}

// ── Repositorio de órdenes ──────────────────────────────────────────────

type memOrderRepo struct{ store *memStore }

func (r *memOrderRepo) GetByID(id int64) (*entity.TransferOrder, error) {
	o, ok := r.store.orders[id]
	if !ok {
		return nil, nil
	}
	return cloneOrder(o), nil
}

func (r *memOrderRepo) GetByOrderNo(orderNo string) (*entity.TransferOrder, error) {
	for _, o := range r.store.orders {
		if o.OrderNo == orderNo {
			return cloneOrder(o), nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) UpdateStep(id int64, step entity.TransferStep) error {
	if r.store.failUpdateStep != nil {
		return r.store.failUpdateStep
	}
	o, ok := r.store.orders[id]
	if !ok {
		return errNotStored
	}
	o.Step = step
	return nil
}

func (r *memOrderRepo) UpdateRequestedDeliveryDate(id int64, date *time.Time) error {
	o, ok := r.store.orders[id]
	if !ok {
		return errNotStored
	}
	o.RequestedDeliveryDate = date
	return nil
}

// ── Repositorio de líneas ───────────────────────────────────────────────

type memLineRepo struct{ store *memStore }

func (r *memLineRepo) GetByID(id int64) (*entity.TransferLine, error) {
	l := r.store.findLine(id)
	if l == nil {
		return nil, nil
	}
	return cloneLine(l), nil
}

func (r *memLineRepo) Create(line *entity.TransferLine) error {
	if r.store.failCreateLine != nil {
		return r.store.failCreateLine
	}
	o, ok := r.store.orders[line.OrderID]
	if !ok {
		return errNotStored
	}
	r.store.nextLineID++
	line.ID = r.store.nextLineID
	o.Lines = append(o.Lines, cloneLine(line))
	return nil
}

func (r *memLineRepo) Update(id int64, quantity, quantityReceived, quantityInitial int) error {
	l := r.store.findLine(id)
	if l == nil || l.IsDeleted() {
		return errNotStored
	}
	l.Quantity = quantity
	l.QuantityReceived = quantityReceived
	l.QuantityInitial = quantityInitial
	return nil
}

func (r *memLineRepo) SoftDelete(ids []int64) error {
	now := time.Now()
	for _, id := range ids {
		if l := r.store.findLine(id); l != nil && !l.IsDeleted() {
			deletedAt := now
			l.DeletedAt = &deletedAt
		}
	}
	return nil
}

func (r *memLineRepo) ListByOrder(orderID int64, includeDeleted bool) ([]*entity.TransferLine, error) {
	o, ok := r.store.orders[orderID]
	if !ok {
		return nil, nil
	}
	var lines []*entity.TransferLine
	for _, l := range o.Lines {
		if !includeDeleted && l.IsDeleted() {
			continue
		}
		lines = append(lines, cloneLine(l))
	}
	return lines, nil
}

func (r *memLineRepo) MaxLineNo(orderID int64) (int, error) {
	o, ok := r.store.orders[orderID]
	if !ok {
		return 0, nil
	}
	return o.MaxLineNo(), nil
}

// ── Catálogo de productos ───────────────────────────────────────────────

type memProductRepo struct{ store *memStore }

func (r *memProductRepo) GetByPID(pid int64) (*entity.Product, error) {
	p, ok := r.store.products[pid]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *memProductRepo) GetByItemNo(itemNo string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.ItemNo == itemNo {
			return p, nil
		}
	}
	return nil, nil
}

// ── Auditoría ───────────────────────────────────────────────────────────

type memAuditRepo struct{ store *memStore }

func (r *memAuditRepo) Create(msg *entity.AuditMessage) error {
	if r.store.failAudit != nil {
		return r.store.failAudit
	}
	r.store.audits = append(r.store.audits, msg)
	return nil
}

// ── Cola de reservas y stock vivo ───────────────────────────────────────

type stockKey struct{ productID, storageID int64 }

type memQueueRepo struct {
	entries map[stockKey]*entity.StockQueueEntry
}

func (r *memQueueRepo) LatestByProductAndStorage(productID, storageID int64) (*entity.StockQueueEntry, error) {
	if r.entries == nil {
		return nil, nil
	}
	return r.entries[stockKey{productID, storageID}], nil
}

type memStockRepo struct {
	stock map[stockKey]int
}

func (r *memStockRepo) GetStock(productID, storageID int64) (int, error) {
	return r.stock[stockKey{productID, storageID}], nil
}

// ── TxRunner y publicador de eventos ────────────────────────────────────

// memTxRunner simula la transacción: clona el almacén antes de ejecutar y
// lo restaura si la función devuelve error.
type memTxRunner struct{ store *memStore }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.TransferOrderRepository,
	lineRepo repository.TransferLineRepository,
	productRepo repository.ProductRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	backup := r.store.snapshot()
	auditBackup := len(r.store.audits)

	err := fn(
		&memOrderRepo{store: r.store},
		&memLineRepo{store: r.store},
		&memProductRepo{store: r.store},
		&memAuditRepo{store: r.store},
	)
	if err != nil {
		r.store.orders = backup
		r.store.audits = r.store.audits[:auditBackup]
		return err
	}
	return nil
}

type memEventPublisher struct {
	published []*entity.TransferOrder
	err       error
}

func (p *memEventPublisher) PublishOrderUpdated(_ context.Context, order *entity.TransferOrder) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, order)
	return nil
}

var errNotStored = errString("registro no encontrado en el almacén fake")

type errString string

func (e errString) Error() string { return string(e) }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}
