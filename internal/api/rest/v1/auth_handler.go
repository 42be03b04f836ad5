package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/domain/identity"
)

// AuthHandler defines the interface for handling authentication operations
type AuthHandler interface {
	Login(ctx *gin.Context)
}

type authHandler struct {
	authService identity.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService identity.AuthService) AuthHandler {
	return &authHandler{
		authService: authService,
	}
}

// Login handles the POST request to authenticate a back-office user
// @Summary Authenticate a back-office user
// @Description Verify the credentials for a store and return a signed session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body LoginRequest true "Login credentials"
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid login data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	session, err := handler.authService.Login(ctx, request.TenantSlug, request.Email, request.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid credentials"})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("login failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, SessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      newUserResponse(session.User),
	})
}
