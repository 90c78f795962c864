package transfer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apptransfer "github.com/jhoicas/Traslados-api/internal/application/transfer"
	"github.com/jhoicas/Traslados-api/internal/domain/entity"
)

func seedCancelStore() (*memStore, *memEventPublisher, *apptransfer.CancelOrderUseCase) {
	store := newMemStore()
	store.orders[1] = &entity.TransferOrder{
		ID:            1,
		OrderNo:       "TO-1001",
		FromStorageID: 10,
		ToStorageID:   20,
		Step:          entity.StepOpen,
		Lines: []*entity.TransferLine{
			{ID: 10, OrderID: 1, OrderNo: "TO-1001", PID: 500, LineNo: 10000, Quantity: 5},
			{ID: 11, OrderID: 1, OrderNo: "TO-1001", PID: 501, LineNo: 20000, Quantity: 3},
		},
	}

	events := &memEventPublisher{}
	uc := apptransfer.NewCancelOrderUseCase(
		&memTxRunner{store: store},
		&memOrderRepo{store: store},
		events,
		testLogger(),
	)
	return store, events, uc
}

func testActor() *entity.Account {
	return &entity.Account{ID: 42, Name: "Ana Torres", Email: "ana@example.com"}
}

// Cancelación feliz: líneas soft-deleted, paso CANCEL, un mensaje de
// auditoría con las instantáneas de las líneas y un evento publicado con
// la orden ya vacía.
func TestCancelOrder_Exito(t *testing.T) {
	store, events, uc := seedCancelStore()

	result := uc.CancelOrder(context.Background(), 1, "Requested by customer.", testActor())

	require.True(t, result.IsSuccess(), "errores: %v", result.Errors())
	assert.Empty(t, result.Errors())

	order := store.orders[1]
	assert.Equal(t, entity.StepCancel, order.Step)
	assert.Empty(t, order.ActiveLines())
	assert.True(t, order.FindAnyLine(10).IsDeleted())
	assert.True(t, order.FindAnyLine(11).IsDeleted())

	// Un único mensaje de auditoría, con actor e instantáneas de ambas líneas.
	require.Len(t, store.audits, 1)
	audit := store.audits[0]
	assert.NotEmpty(t, audit.ID)
	assert.Equal(t, entity.SeverityInfo, audit.Severity)
	assert.Equal(t, "The order has been canceled. Requested by customer.", audit.Text)
	assert.Equal(t, []string{"TO", "CANCEL_TO"}, audit.Labels)
	require.Len(t, audit.Entities, 1)
	assert.Equal(t, "transfer_order", audit.Entities[0].Type)
	assert.Equal(t, int64(1), audit.Entities[0].ID)
	assert.Equal(t, "Ana Torres", audit.Context["user"])
	assert.Equal(t, "ana@example.com", audit.Context["email"])
	assert.Equal(t, int64(42), audit.Context["uid"])
	snapshots, ok := audit.Context["lines"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, snapshots, 2)
	assert.Equal(t, int64(10), snapshots[0]["id"])
	assert.Equal(t, 5, snapshots[0]["quantity"])

	// El evento se publica tras el commit, con la orden sin líneas activas.
	require.Len(t, events.published, 1)
	assert.Equal(t, entity.StepCancel, events.published[0].Step)
	assert.Empty(t, events.published[0].ActiveLines())
}

// Sin actor, el contexto de auditoría lleva el centinela de usuario del
// sistema.
func TestCancelOrder_SinActor(t *testing.T) {
	store, _, uc := seedCancelStore()

	result := uc.CancelOrder(context.Background(), 1, "Automated cleanup.", nil)

	require.True(t, result.IsSuccess())
	require.Len(t, store.audits, 1)
	assert.Equal(t, "", store.audits[0].Context["user"])
	assert.Equal(t, entity.SystemUserID, store.audits[0].Context["uid"])
}

func TestCancelOrder_OrdenInexistente(t *testing.T) {
	store, events, uc := seedCancelStore()

	result := uc.CancelOrder(context.Background(), 999, "x", testActor())

	assert.False(t, result.IsSuccess())
	assert.Equal(t, []string{"Transfer order missing."}, result.Errors())
	assert.Empty(t, store.audits)
	assert.Empty(t, events.published)
}

// Un paso terminal rechaza la cancelación vía validador estructural, sin
// auditoría ni evento y sin tocar la orden.
func TestCancelOrder_PasoTerminal(t *testing.T) {
	store, events, uc := seedCancelStore()
	store.orders[1].Step = entity.StepReceived

	result := uc.CancelOrder(context.Background(), 1, "x", testActor())

	assert.False(t, result.IsSuccess())
	assert.Contains(t, result.Errors(), "Transfer order is already completed or canceled.")
	assert.Empty(t, store.audits)
	assert.Empty(t, events.published)
	assert.Equal(t, entity.StepReceived, store.orders[1].Step)
	assert.Len(t, store.orders[1].ActiveLines(), 2)
}

// Un fallo dentro de la transacción revierte todo y el caller solo recibe
// el mensaje genérico.
func TestCancelOrder_FalloEnTransaccion(t *testing.T) {
	store, events, uc := seedCancelStore()
	store.failAudit = errString("sumidero de auditoría caído")

	result := uc.CancelOrder(context.Background(), 1, "x", testActor())

	assert.False(t, result.IsSuccess())
	assert.Equal(t, []string{"An error occurred while canceling an order."}, result.Errors())

	// Nada persistió.
	order := store.orders[1]
	assert.Equal(t, entity.StepOpen, order.Step)
	assert.Len(t, order.ActiveLines(), 2)
	assert.Empty(t, store.audits)
	assert.Empty(t, events.published)
}

// Si el evento falla tras el commit, la cancelación persiste pero el
// resultado queda en fallo.
func TestCancelOrder_FalloAlPublicarEvento(t *testing.T) {
	store, events, uc := seedCancelStore()
	events.err = errString("broker no disponible")

	result := uc.CancelOrder(context.Background(), 1, "x", testActor())

	assert.False(t, result.IsSuccess())
	assert.Equal(t, []string{"An error occurred while canceling an order."}, result.Errors())

	// El commit ya ocurrió: paso CANCEL y líneas eliminadas persisten.
	order := store.orders[1]
	assert.Equal(t, entity.StepCancel, order.Step)
	assert.Empty(t, order.ActiveLines())
	assert.Len(t, store.audits, 1)
}
