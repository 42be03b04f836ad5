package orders

// Order status constants. An "orcamento" is a quote that has not yet been
// converted into a real sale.
const (
	StatusOrcamento  = "orcamento"
	StatusPendente   = "pendente"
	StatusConfirmado = "confirmado"
	StatusEntregue   = "entregue"
	StatusCancelado  = "cancelado"
)

// Order origin constants
const (
	OriginLoja = "loja"
	OriginPDV  = "pdv"
)

// Payment method constants
const (
	PaymentDinheiro = "dinheiro"
	PaymentCartao   = "cartao"
	PaymentPix      = "pix"
	PaymentFiado    = "fiado"
)

var allowedTransitions = map[string][]string{
	StatusOrcamento:  {StatusPendente, StatusCancelado},
	StatusPendente:   {StatusConfirmado, StatusCancelado},
	StatusConfirmado: {StatusEntregue, StatusCancelado},
	StatusEntregue:   {},
	StatusCancelado:  {},
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
