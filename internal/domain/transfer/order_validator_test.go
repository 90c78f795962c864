package transfer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Traslados-api/internal/domain/entity"
	"github.com/jhoicas/Traslados-api/internal/domain/transfer"
)

func validOrder() *entity.TransferOrder {
	return &entity.TransferOrder{
		ID:            7,
		OrderNo:       "TO-7",
		FromStorageID: 1,
		ToStorageID:   2,
		Step:          entity.StepOpen,
		Lines: []*entity.TransferLine{
			{ID: 70, LineNo: 10000, PID: 500, Quantity: 2},
		},
	}
}

func TestOrderValidator_OrdenValida(t *testing.T) {
	v := transfer.NewOrderValidator(validOrder())
	assert.False(t, v.Fails())
	assert.Empty(t, v.Errors())
}

func TestOrderValidator_SinNumeroDeOrden(t *testing.T) {
	order := validOrder()
	order.OrderNo = ""
	v := transfer.NewOrderValidator(order)

	require.True(t, v.Fails())
	assert.Contains(t, v.Errors(), "Transfer order number is missing.")
}

func TestOrderValidator_SinBodegas(t *testing.T) {
	order := validOrder()
	order.ToStorageID = 0
	v := transfer.NewOrderValidator(order)

	require.True(t, v.Fails())
	assert.Contains(t, v.Errors(), "Transfer order storages are missing.")
}

func TestOrderValidator_BodegasIguales(t *testing.T) {
	order := validOrder()
	order.ToStorageID = order.FromStorageID
	v := transfer.NewOrderValidator(order)

	require.True(t, v.Fails())
	assert.Contains(t, v.Errors(), "Transfer order storages must differ.")
}

// Los pasos terminales (RECEIVED y CANCEL) no admiten cancelación.
func TestOrderValidator_PasoTerminal(t *testing.T) {
	for _, step := range []entity.TransferStep{entity.StepReceived, entity.StepCancel} {
		order := validOrder()
		order.Step = step
		v := transfer.NewOrderValidator(order)

		require.True(t, v.Fails(), "paso %s debe fallar", step)
		assert.Contains(t, v.Errors(), "Transfer order is already completed or canceled.")
	}
}

func TestOrderValidator_LineaSinProducto(t *testing.T) {
	order := validOrder()
	order.Lines[0].PID = 0
	v := transfer.NewOrderValidator(order)

	require.True(t, v.Fails())
	assert.Contains(t, v.Errors(), "Transfer order line 10000 is missing a product reference.")
}

// Los errores se acumulan en orden de validación.
func TestOrderValidator_AcumulaErrores(t *testing.T) {
	order := validOrder()
	order.OrderNo = ""
	order.FromStorageID = 0
	v := transfer.NewOrderValidator(order)

	require.True(t, v.Fails())
	assert.Equal(t, []string{
		"Transfer order number is missing.",
		"Transfer order storages are missing.",
	}, v.Errors())
}
