//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/customers"
)

const testCustomerID = "7c6d5e4f-3a2b-4c1d-9e8f-7a6b5c4d3e05"

func TestCustomerHandler_Create_Success(t *testing.T) {
	mockCustomerService := new(MockCustomerService)
	handler := NewCustomerHandler(mockCustomerService)

	customer := &customers.Customer{
		ID:          testCustomerID,
		TenantID:    testTenantID,
		Name:        "Maria Souza",
		Phone:       "11988887777",
		CreditLimit: 20000,
		Active:      true,
	}

	mockCustomerService.
		On("Create", mock.Anything, mock.AnythingOfType("*customers.Customer")).
		Return(customer, nil)

	requestBody := `{"name": "Maria Souza", "phone": "11988887777", "credit_limit": 20000}`
	c, w := newTestContext(t, "POST", "/customers", requestBody)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Maria Souza")
	mockCustomerService.AssertExpectations(t)
}

func TestCustomerHandler_GetByID_NotFound(t *testing.T) {
	mockCustomerService := new(MockCustomerService)
	handler := NewCustomerHandler(mockCustomerService)

	mockCustomerService.
		On("GetByID", mock.Anything, testTenantID, testCustomerID).
		Return(nil, customers.ErrCustomerNotFound)

	c, w := newTestContext(t, "GET", "/customers/"+testCustomerID, "")
	c.Params = gin.Params{gin.Param{Key: "id", Value: testCustomerID}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockCustomerService.AssertExpectations(t)
}

func TestCreditHandler_Statement_Success(t *testing.T) {
	mockCreditService := new(MockCreditService)
	handler := NewCreditHandler(mockCreditService)

	entry := &customers.CreditEntry{
		ID:         "8d7e6f5a-4b3c-4d2e-9f1a-8b7c6d5e4f07",
		TenantID:   testTenantID,
		CustomerID: testCustomerID,
		Kind:       customers.EntryDebito,
		Amount:     5000,
		Balance:    5000,
	}

	mockCreditService.
		On("Statement", mock.Anything, testTenantID, testCustomerID, 50, 0).
		Return([]*customers.CreditEntry{entry}, nil)
	mockCreditService.
		On("Balance", mock.Anything, testTenantID, testCustomerID).
		Return(int64(5000), nil)

	c, w := newTestContext(t, "GET", "/customers/"+testCustomerID+"/statement", "")
	c.Params = gin.Params{gin.Param{Key: "id", Value: testCustomerID}}

	handler.Statement(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"balance":5000`)
	assert.Contains(t, w.Body.String(), "debito")
	mockCreditService.AssertExpectations(t)
}

func TestCreditHandler_RegisterPayment_Success(t *testing.T) {
	mockCreditService := new(MockCreditService)
	handler := NewCreditHandler(mockCreditService)

	entry := &customers.CreditEntry{
		ID:         "8d7e6f5a-4b3c-4d2e-9f1a-8b7c6d5e4f07",
		TenantID:   testTenantID,
		CustomerID: testCustomerID,
		Kind:       customers.EntryPagamento,
		Amount:     3000,
		Balance:    2000,
	}

	mockCreditService.
		On("RegisterPayment", mock.Anything, testTenantID, testCustomerID, int64(3000), "parcial").
		Return(entry, nil)

	c, w := newTestContext(t, "POST", "/customers/"+testCustomerID+"/payments", `{"amount": 3000, "note": "parcial"}`)
	c.Params = gin.Params{gin.Param{Key: "id", Value: testCustomerID}}

	handler.RegisterPayment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "pagamento")
	mockCreditService.AssertExpectations(t)
}

func TestCreditHandler_RegisterPayment_ExceedsBalance(t *testing.T) {
	mockCreditService := new(MockCreditService)
	handler := NewCreditHandler(mockCreditService)

	mockCreditService.
		On("RegisterPayment", mock.Anything, testTenantID, testCustomerID, int64(99999), "").
		Return(nil, customers.ErrPaymentExceedsBalance)

	c, w := newTestContext(t, "POST", "/customers/"+testCustomerID+"/payments", `{"amount": 99999}`)
	c.Params = gin.Params{gin.Param{Key: "id", Value: testCustomerID}}

	handler.RegisterPayment(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "payment exceeds open balance")
	mockCreditService.AssertExpectations(t)
}
