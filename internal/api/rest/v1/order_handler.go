package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/api/rest/middleware"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/catalog"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/customers"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/orders"
)

// OrderHandler defines the interface for handling order lifecycle operations
type OrderHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	Cancel(ctx *gin.Context)
}

type orderHandler struct {
	orderService orders.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService orders.OrderService) OrderHandler {
	return &orderHandler{
		orderService: orderService,
	}
}

// List handles the GET request to list orders with optional query parameters
// @Summary List orders based on query parameters
// @Tags Order
// @Produce json
// @Param status query string false "Order status"
// @Param origin query string false "Order origin (loja/pdv)"
// @Param customerId query string false "Customer ID"
// @Param from query string false "Creation date lower bound (RFC3339)"
// @Param to query string false "Creation date upper bound (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} OrderResponse
// @Failure 400 {object} ErrorResponse
// @Router /orders [get]
func (handler *orderHandler) List(ctx *gin.Context) {
	tenantID := middleware.TenantID(ctx)
	query := orders.NewOrderQuery()

	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}

	if origin := ctx.Query("origin"); len(origin) > 0 {
		query.Origin = origin
	}

	if customerID := ctx.Query("customerId"); len(customerID) > 0 {
		query.CustomerID = customerID
	}

	if from := ctx.Query("from"); len(from) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, from)
		if err == nil {
			query.From = parsedTime
		}
	}

	if to := ctx.Query("to"); len(to) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, to)
		if err == nil {
			query.To = parsedTime
		}
	}

	query.Limit = queryInt(ctx, "limit", query.Limit)
	query.Offset = queryInt(ctx, "offset", query.Offset)

	orderList, err := handler.orderService.List(ctx, tenantID, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	var listResponse = []OrderResponse{}
	for _, order := range orderList {
		listResponse = append(listResponse, newOrderResponse(order))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve an order by ID
// @Summary Retrieve an order by ID
// @Tags Order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} OrderResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (handler *orderHandler) GetByID(ctx *gin.Context) {
	orderID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	order, err := handler.orderService.GetByID(ctx, tenantID, orderID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("order with id %s not found", orderID)})
		return
	}

	ctx.JSON(http.StatusOK, newOrderResponse(order))
}

// UpdateStatus handles the POST request to move an order through its lifecycle
// @Summary Update the status of an order
// @Description Move the order to the next status. Confirming a pending order consumes stock and posts any fiado debit in the same transaction.
// @Tags Order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param requestBody body UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} OrderResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /orders/{id}/status [post]
func (handler *orderHandler) UpdateStatus(ctx *gin.Context) {
	orderID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	var request UpdateOrderStatusRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid status data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	order, err := handler.orderService.UpdateStatus(ctx, tenantID, orderID, request.Status)
	if err != nil {
		respondTransitionError(ctx, orderID, err)
		return
	}

	ctx.JSON(http.StatusOK, newOrderResponse(order))
}

// Cancel handles the POST request to cancel an order
// @Summary Cancel an order
// @Description Cancel the order. Cancelling a confirmed order restores stock and reverses any fiado debit.
// @Tags Order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} OrderResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /orders/{id}/cancel [post]
func (handler *orderHandler) Cancel(ctx *gin.Context) {
	orderID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	order, err := handler.orderService.Cancel(ctx, tenantID, orderID)
	if err != nil {
		respondTransitionError(ctx, orderID, err)
		return
	}

	ctx.JSON(http.StatusOK, newOrderResponse(order))
}

func respondTransitionError(ctx *gin.Context, orderID string, err error) {
	switch {
	case errors.Is(err, orders.ErrOrderNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("order with id %s not found", orderID)})
	case errors.Is(err, orders.ErrInvalidTransition):
		ctx.JSON(http.StatusConflict, ErrorResponse{Message: "status transition not allowed"})
	case errors.Is(err, orders.ErrOrderChanged):
		ctx.JSON(http.StatusConflict, ErrorResponse{Message: "order changed concurrently, retry"})
	case errors.Is(err, catalog.ErrInsufficientStock):
		ctx.JSON(http.StatusConflict, ErrorResponse{Message: "insufficient stock"})
	case errors.Is(err, customers.ErrCreditLimitExceeded):
		ctx.JSON(http.StatusConflict, ErrorResponse{Message: "credit limit exceeded"})
	default:
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error updating order: %v", err.Error())})
	}
}
