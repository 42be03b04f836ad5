//go:build unit
// +build unit

package orders

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fiadoOrder(status string) *Order {
	order := &Order{
		ID:            "9b8a7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c03",
		TenantID:      "6f1e1d9a-7f48-4f44-9e6e-2f6a7a6b8c01",
		CustomerID:    "7c6d5e4f-3a2b-4c1d-9e8f-7a6b5c4d3e05",
		Status:        status,
		Origin:        OriginLoja,
		PaymentMethod: PaymentFiado,
		Items: []OrderItem{
			{ProductID: "3d2c1b0a-6e5f-4a3b-9c8d-7e6f5a4b3c02", SKU: "REF-2L-001", Name: "Refrigerante Cola 2L", Quantity: 2, UnitPrice: 899},
			{ProductID: "4e3d2c1b-7f6a-4b5c-8d9e-0a1b2c3d4e09", SKU: "ARROZ-5KG-001", Name: "Arroz Branco 5kg", Quantity: 1, UnitPrice: 2590},
		},
	}
	order.ComputeTotals()
	return order
}

func TestPlanTransition_ConfirmConsumesStockAndPostsDebit(t *testing.T) {
	order := fiadoOrder(StatusPendente)

	plan, err := PlanTransition(order, StatusConfirmado)
	require.NoError(t, err)
	require.False(t, plan.Empty())

	require.Equal(t, []StockDelta{
		{ProductID: order.Items[0].ProductID, Delta: -2},
		{ProductID: order.Items[1].ProductID, Delta: -1},
	}, plan.StockDeltas)

	require.NotNil(t, plan.Receivable)
	require.Equal(t, order.CustomerID, plan.Receivable.CustomerID)
	require.Equal(t, order.Total, plan.Receivable.Amount)
	require.False(t, plan.Receivable.Reversal)
}

func TestPlanTransition_ConfirmWithoutFiadoSkipsReceivable(t *testing.T) {
	order := fiadoOrder(StatusPendente)
	order.PaymentMethod = PaymentPix

	plan, err := PlanTransition(order, StatusConfirmado)
	require.NoError(t, err)

	require.Len(t, plan.StockDeltas, 2)
	require.Nil(t, plan.Receivable)
}

func TestPlanTransition_CancelConfirmedRestoresStockAndReverses(t *testing.T) {
	order := fiadoOrder(StatusConfirmado)

	plan, err := PlanTransition(order, StatusCancelado)
	require.NoError(t, err)

	require.Equal(t, []StockDelta{
		{ProductID: order.Items[0].ProductID, Delta: 2},
		{ProductID: order.Items[1].ProductID, Delta: 1},
	}, plan.StockDeltas)

	require.NotNil(t, plan.Receivable)
	require.True(t, plan.Receivable.Reversal)
	require.Equal(t, order.Total, plan.Receivable.Amount)
}

func TestPlanTransition_CancelPendingMovesNothing(t *testing.T) {
	order := fiadoOrder(StatusPendente)

	plan, err := PlanTransition(order, StatusCancelado)
	require.NoError(t, err)
	require.True(t, plan.Empty())
}

func TestPlanTransition_RejectsInvalidTransitions(t *testing.T) {
	order := fiadoOrder(StatusEntregue)

	_, err := PlanTransition(order, StatusCancelado)
	require.ErrorIs(t, err, ErrInvalidTransition)

	order.Status = StatusPendente
	_, err = PlanTransition(order, "enviado")
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestConfirmationPlan_PDVSale(t *testing.T) {
	order := fiadoOrder(StatusConfirmado)
	order.Origin = OriginPDV

	plan := ConfirmationPlan(order)

	require.Len(t, plan.StockDeltas, 2)
	require.Equal(t, -2, plan.StockDeltas[0].Delta)
	require.NotNil(t, plan.Receivable)
	require.Equal(t, order.Total, plan.Receivable.Amount)

	order.PaymentMethod = PaymentDinheiro
	plan = ConfirmationPlan(order)
	require.Nil(t, plan.Receivable)
}

func TestPostingPlan_Empty(t *testing.T) {
	var nilPlan *PostingPlan
	require.True(t, nilPlan.Empty())
	require.True(t, (&PostingPlan{}).Empty())
	require.False(t, (&PostingPlan{StockDeltas: []StockDelta{{ProductID: "p", Delta: 1}}}).Empty())
}
