package orders

import "errors"

// Domain errors surfaced by order services and repositories.
var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrOrderChanged          = errors.New("order changed concurrently")
	ErrFiadoRequiresCustomer = errors.New("fiado sale requires a customer")
)

// StockDelta is one signed stock movement applied to a product.
type StockDelta struct {
	ProductID string
	Delta     int
}

// ReceivablePosting is a pending entry on the customer credit ledger.
// Reversal marks an "estorno" of a previous fiado debit.
type ReceivablePosting struct {
	CustomerID string
	OrderID    string
	Amount     int64
	Reversal   bool
}

// PostingPlan describes the side effects a status transition must apply in
// the same transaction as the status write.
type PostingPlan struct {
	StockDeltas []StockDelta
	Receivable  *ReceivablePosting
}

// Empty reports whether the plan carries no postings.
func (p *PostingPlan) Empty() bool {
	return p == nil || (len(p.StockDeltas) == 0 && p.Receivable == nil)
}

// PlanTransition validates a status transition for the order and returns the
// posting plan it requires. The returned plan is empty for transitions that
// move no stock or money.
func PlanTransition(o *Order, next string) (*PostingPlan, error) {
	if !ValidStatus(next) {
		return nil, ErrInvalidTransition
	}
	if !CanTransition(o.Status, next) {
		return nil, ErrInvalidTransition
	}

	plan := &PostingPlan{}

	switch {
	case o.Status == StatusPendente && next == StatusConfirmado:
		plan.StockDeltas = consumeStock(o)
		if o.PaymentMethod == PaymentFiado {
			plan.Receivable = &ReceivablePosting{
				CustomerID: o.CustomerID,
				OrderID:    o.ID,
				Amount:     o.Total,
			}
		}
	case o.Status == StatusConfirmado && next == StatusCancelado:
		plan.StockDeltas = restoreStock(o)
		if o.PaymentMethod == PaymentFiado {
			plan.Receivable = &ReceivablePosting{
				CustomerID: o.CustomerID,
				OrderID:    o.ID,
				Amount:     o.Total,
				Reversal:   true,
			}
		}
	}

	return plan, nil
}

// ConfirmationPlan returns the postings for an order created directly in
// confirmed state, as the PDV does.
func ConfirmationPlan(o *Order) *PostingPlan {
	plan := &PostingPlan{StockDeltas: consumeStock(o)}
	if o.PaymentMethod == PaymentFiado {
		plan.Receivable = &ReceivablePosting{
			CustomerID: o.CustomerID,
			OrderID:    o.ID,
			Amount:     o.Total,
		}
	}
	return plan
}

func consumeStock(o *Order) []StockDelta {
	deltas := make([]StockDelta, 0, len(o.Items))
	for _, item := range o.Items {
		deltas = append(deltas, StockDelta{ProductID: item.ProductID, Delta: -item.Quantity})
	}
	return deltas
}

func restoreStock(o *Order) []StockDelta {
	deltas := make([]StockDelta, 0, len(o.Items))
	for _, item := range o.Items {
		deltas = append(deltas, StockDelta{ProductID: item.ProductID, Delta: item.Quantity})
	}
	return deltas
}
