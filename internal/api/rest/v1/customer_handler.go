package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/api/rest/middleware"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/customers"
)

// CustomerHandler defines the interface for handling customer registry operations
type CustomerHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	Deactivate(ctx *gin.Context)
}

type customerHandler struct {
	customerService customers.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService customers.CustomerService) CustomerHandler {
	return &customerHandler{
		customerService: customerService,
	}
}

// Create handles the POST request to register a customer
// @Summary Register a customer
// @Tags Customer
// @Accept json
// @Produce json
// @Param requestBody body CustomerRequest true "Customer data"
// @Success 201 {object} CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Router /customers [post]
func (handler *customerHandler) Create(ctx *gin.Context) {
	var request CustomerRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid customer data: %v", err.Error())
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
	customer, err := handler.customerService.Create(ctx, &customers.Customer{
		TenantID:    tenantID,
		Name:        request.Name,
		Phone:       request.Phone,
		Email:       request.Email,
		Document:    request.Document,
		CreditLimit: request.CreditLimit,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error creating customer: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, newCustomerResponse(customer))
}

// List handles the GET request to list customers with optional query parameters
// @Summary List customers based on query parameters
// @Tags Customer
// @Produce json
// @Param search query string false "Name, phone or document fragment"
// @Param active query bool false "Only active customers"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Router /customers [get]
func (handler *customerHandler) List(ctx *gin.Context) {
	tenantID := middleware.TenantID(ctx)
	query := customers.NewCustomerQuery()

	if search := ctx.Query("search"); len(search) > 0 {
		query.Search = search
	}

	if active := ctx.Query("active"); active == "true" {
		query.ActiveOnly = true
	}

	query.Limit = queryInt(ctx, "limit", query.Limit)
	query.Offset = queryInt(ctx, "offset", query.Offset)

	customerList, err := handler.customerService.List(ctx, tenantID, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	var listResponse = []CustomerResponse{}
	for _, customer := range customerList {
		listResponse = append(listResponse, newCustomerResponse(customer))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a customer by ID
// @Summary Retrieve a customer by ID
// @Tags Customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} CustomerResponse
// @Failure 404 {object} ErrorResponse
// @Router /customers/{id} [get]
func (handler *customerHandler) GetByID(ctx *gin.Context) {
	customerID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	customer, err := handler.customerService.GetByID(ctx, tenantID, customerID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("customer with id %s not found", customerID)})
		return
	}

	ctx.JSON(http.StatusOK, newCustomerResponse(customer))
}

// Update handles the PUT request to update a customer
// @Summary Update a customer
// @Tags Customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param requestBody body CustomerRequest true "Customer data"
// @Success 200 {object} CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /customers/{id} [put]
func (handler *customerHandler) Update(ctx *gin.Context) {
	customerID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	var request CustomerRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid customer data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	existing, err := handler.customerService.GetByID(ctx, tenantID, customerID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("customer with id %s not found", customerID)})
		return
	}

	existing.Name = request.Name
	existing.Phone = request.Phone
	existing.Email = request.Email
	existing.Document = request.Document
	existing.CreditLimit = request.CreditLimit

	if err := handler.customerService.Update(ctx, existing); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error updating customer: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, newCustomerResponse(existing))
}

// Deactivate handles the DELETE request to disable a customer
// @Summary Deactivate a customer
// @Tags Customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /customers/{id} [delete]
func (handler *customerHandler) Deactivate(ctx *gin.Context) {
	customerID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	if err := handler.customerService.Deactivate(ctx, tenantID, customerID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("error deactivating customer with id %s", customerID)})
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deactivated customer with id %s", customerID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}

// CreditHandler defines the interface for fiado ledger operations
type CreditHandler interface {
	Statement(ctx *gin.Context)
	RegisterPayment(ctx *gin.Context)
}

type creditHandler struct {
	creditService customers.CreditService
}

// NewCreditHandler creates a new CreditHandler
func NewCreditHandler(creditService customers.CreditService) CreditHandler {
	return &creditHandler{
		creditService: creditService,
	}
}

// Statement handles the GET request for a customer's fiado statement
// @Summary Retrieve the fiado statement of a customer
// @Description List ledger entries newest first along with the current open balance.
// @Tags Credit
// @Produce json
// @Param id path string true "Customer ID"
// @Param limit query int false "Limit the number of entries"
// @Param offset query int false "Offset the entries"
// @Success 200 {object} StatementResponse
// @Failure 404 {object} ErrorResponse
// @Router /customers/{id}/statement [get]
func (handler *creditHandler) Statement(ctx *gin.Context) {
	customerID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	limit := queryInt(ctx, "limit", 50)
	offset := queryInt(ctx, "offset", 0)

	entries, err := handler.creditService.Statement(ctx, tenantID, customerID, limit, offset)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("customer with id %s not found", customerID)})
		return
	}

	balance, err := handler.creditService.Balance(ctx, tenantID, customerID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error computing balance: %v", err.Error())})
		return
	}

	var entryResponses = []CreditEntryResponse{}
	for _, entry := range entries {
		entryResponses = append(entryResponses, newCreditEntryResponse(entry))
	}

	ctx.JSON(http.StatusOK, StatementResponse{
		Balance: balance,
		Entries: entryResponses,
	})
}

// RegisterPayment handles the POST request to record a fiado payment
// @Summary Record a fiado payment
// @Description Post a pagamento entry lowering the customer's open balance. Payments above the open balance are rejected.
// @Tags Credit
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param requestBody body PaymentRequest true "Payment data"
// @Success 201 {object} CreditEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /customers/{id}/payments [post]
func (handler *creditHandler) RegisterPayment(ctx *gin.Context) {
	customerID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	var request PaymentRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid payment data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	entry, err := handler.creditService.RegisterPayment(ctx, tenantID, customerID, request.Amount, request.Note)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrCustomerNotFound):
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("customer with id %s not found", customerID)})
		case errors.Is(err, customers.ErrPaymentExceedsBalance):
			ctx.JSON(http.StatusConflict, ErrorResponse{Message: "payment exceeds open balance"})
		default:
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error registering payment: %v", err.Error())})
		}
		return
	}

	ctx.JSON(http.StatusCreated, newCreditEntryResponse(entry))
}
