package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/api/rest/middleware"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/identity"
)

// UserHandler defines the interface for handling user management operations
type UserHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	Deactivate(ctx *gin.Context)
}

type userHandler struct {
	userService identity.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService identity.UserService) UserHandler {
	return &userHandler{
		userService: userService,
	}
}

// Create handles the POST request to register a back-office user
// @Summary Register a back-office user
// @Tags User
// @Accept json
// @Produce json
// @Param requestBody body CreateUserRequest true "User data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users [post]
func (handler *userHandler) Create(ctx *gin.Context) {
	var request CreateUserRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid user data: %v", err.Error())
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
	user, err := handler.userService.Create(ctx, tenantID, request.Name, request.Email, request.Password, request.Role, request.Permissions)
	if err != nil {
		if errors.Is(err, identity.ErrDuplicateEmail) {
			ctx.JSON(http.StatusConflict, ErrorResponse{Message: "email already registered"})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error creating user: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, newUserResponse(user))
}

// List handles the GET request to list back-office users
// @Summary List the tenant's back-office users
// @Tags User
// @Produce json
// @Success 200 {array} UserResponse
// @Failure 400 {object} ErrorResponse
// @Router /users [get]
func (handler *userHandler) List(ctx *gin.Context) {
	tenantID := middleware.TenantID(ctx)

	users, err := handler.userService.List(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	var listResponse = []UserResponse{}
	for _, user := range users {
		listResponse = append(listResponse, newUserResponse(user))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a user by ID
// @Summary Retrieve a back-office user by ID
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func (handler *userHandler) GetByID(ctx *gin.Context) {
	userID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	user, err := handler.userService.GetByID(ctx, tenantID, userID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("user with id %s not found", userID)})
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// Update handles the PUT request to update a user
// @Summary Update a back-office user
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param requestBody body UpdateUserRequest true "User data"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [put]
func (handler *userHandler) Update(ctx *gin.Context) {
	userID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	var request UpdateUserRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid user data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	user, err := handler.userService.GetByID(ctx, tenantID, userID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("user with id %s not found", userID)})
		return
	}

	user.Name = request.Name
	user.Role = request.Role
	user.Active = request.Active
	if len(request.Permissions) > 0 {
		user.Permissions = request.Permissions
	}

	if err := handler.userService.Update(ctx, user); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error updating user: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// Deactivate handles the DELETE request to disable a user
// @Summary Deactivate a back-office user
// @Description Disable a user. The last active admin of a store cannot be deactivated.
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/{id} [delete]
func (handler *userHandler) Deactivate(ctx *gin.Context) {
	userID := ctx.Param("id")
	tenantID := middleware.TenantID(ctx)

	if err := handler.userService.Deactivate(ctx, tenantID, userID); err != nil {
		if errors.Is(err, identity.ErrLastAdmin) {
			ctx.JSON(http.StatusConflict, ErrorResponse{Message: "cannot deactivate the last active admin"})
			return
		}
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("error deactivating user with id %s", userID)})
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deactivated user with id %s", userID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}
