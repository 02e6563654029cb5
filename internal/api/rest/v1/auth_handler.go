package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/accounts"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/auth"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for issuing and revoking access tokens
type AuthHandler interface {
	Token(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type authHandler struct {
	accountService accounts.AccountService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accountService accounts.AccountService) AuthHandler {
	return &authHandler{accountService: accountService}
}

// Token handles the POST request to log in and issue an access token
// @Summary Issue an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body TokenRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/token [post]
func (handler *authHandler) Token(ctx *gin.Context) {
	var request TokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid credentials data: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, validationResponse(err))
		return
	}

	token, err := handler.accountService.Login(ctx.Request.Context(), request.UserName, request.Password)
	if err != nil {
		if errors.Is(err, accounts.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: accounts.ErrInvalidCredentials.Error()})
			return
		}
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   auth.AuthenticationType,
		ExpiresAt:   token.ExpiresAt,
	})
}

// Logout handles the POST request to revoke the caller's access token
// @Summary Revoke the current access token
// @Tags Auth
// @Security Bearer
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Router /auth/logout [post]
func (handler *authHandler) Logout(ctx *gin.Context) {
	userID := session.FromContext(ctx.Request.Context()).UserID()
	token := ctx.GetString(accessTokenKey)
	if userID == nil || token == "" {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
		return
	}

	if err := handler.accountService.Logout(ctx.Request.Context(), *userID, token); err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
