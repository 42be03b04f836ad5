package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/api/rest/middleware"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/customers"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/orders"
)

// PDVHandler defines the interface for point-of-sale operations
type PDVHandler interface {
	Sale(ctx *gin.Context)
}

type pdvHandler struct {
	quickSaleService orders.QuickSaleService
}

// NewPDVHandler creates a new PDVHandler
func NewPDVHandler(quickSaleService orders.QuickSaleService) PDVHandler {
	return &pdvHandler{
		quickSaleService: quickSaleService,
	}
}

// Sale handles the POST request to register an in-store sale
// @Summary Register a point-of-sale sale
// @Description Create an order directly in confirmed status. Stock consumption and any fiado debit commit atomically; any failure voids the whole sale.
// @Tags PDV
// @Accept json
// @Produce json
// @Param requestBody body QuickSaleRequest true "Sale data"
// @Success 201 {object} OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /pdv/sales [post]
func (handler *pdvHandler) Sale(ctx *gin.Context) {
	var request QuickSaleRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid sale data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	tenantID := middleware.TenantID(ctx)
	order, err := handler.quickSaleService.Sale(ctx, tenantID, request.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: "product not found"})
		case errors.Is(err, customers.ErrCustomerNotFound):
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: "customer not found"})
		case errors.Is(err, catalog.ErrInsufficientStock):
			ctx.JSON(http.StatusConflict, ErrorResponse{Message: "insufficient stock"})
		case errors.Is(err, customers.ErrCreditLimitExceeded):
			ctx.JSON(http.StatusConflict, ErrorResponse{Message: "credit limit exceeded"})
		case errors.Is(err, orders.ErrFiadoRequiresCustomer):
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "fiado sale requires a customer"})
		default:
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error registering sale: %v", err.Error())})
		}
		return
	}

	ctx.JSON(http.StatusCreated, newOrderResponse(order))
}
