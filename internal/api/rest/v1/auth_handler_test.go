//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/accounts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler_Token_Success(t *testing.T) {
	mockAccountService := new(MockAccountService)
	handler := NewAuthHandler(mockAccountService)

	mockAccountService.On("Login", mock.Anything, "admin", "secret").
		Return(&accounts.TokenResult{AccessToken: "token-1", ExpiresAt: time.Now().Add(time.Hour)}, nil)

	c, w := newTestContext("POST", "/auth/token", `{"userName": "admin", "password": "secret"}`)
	handler.Token(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accessToken":"token-1"`)
	assert.Contains(t, w.Body.String(), `"tokenType":"Bearer"`)
	mockAccountService.AssertExpectations(t)
}

func TestAuthHandler_Token_InvalidCredentials(t *testing.T) {
	mockAccountService := new(MockAccountService)
	handler := NewAuthHandler(mockAccountService)

	mockAccountService.On("Login", mock.Anything, "admin", "wrong").Return(nil, accounts.ErrInvalidCredentials)

	c, w := newTestContext("POST", "/auth/token", `{"userName": "admin", "password": "wrong"}`)
	handler.Token(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Logout_RequiresToken(t *testing.T) {
	handler := NewAuthHandler(new(MockAccountService))

	c, w := newTestContext("POST", "/auth/logout", "")
	handler.Logout(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
