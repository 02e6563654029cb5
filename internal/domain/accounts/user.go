// Package accounts holds users, their issued tokens and the account service
// contract used by the authentication endpoints.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidCredentials is returned when user name and password do not match an active user.
	ErrInvalidCredentials = errors.New("invalid user name or password")
	// ErrUserNotFound is returned when no user matches a lookup.
	ErrUserNotFound = errors.New("user not found")
)

// User is an account able to log in.
type User struct {
	entities.TrackableEntity
	entities.RowVersionFields
	entities.TenantFields
	UserName      string   `gorm:"type:varchar(256);not null;uniqueIndex" json:"userName" validate:"required,max=256"`
	DisplayName   string   `gorm:"type:varchar(50);not null" json:"displayName" validate:"required,max=50"`
	FirstName     string   `gorm:"type:varchar(50)" json:"firstName,omitempty" validate:"max=50"`
	LastName      string   `gorm:"type:varchar(50)" json:"lastName,omitempty" validate:"max=50"`
	PasswordHash  string   `gorm:"type:varchar(256);not null" json:"-"`
	SecurityStamp string   `gorm:"type:varchar(64);not null" json:"-"`
	IsActive      bool     `gorm:"not null;default:true" json:"isActive"`
	BranchID      *int64   `json:"branchId,omitempty"`
	Permissions   []string `gorm:"serializer:json" json:"permissions"`
	Roles         []string `gorm:"serializer:json" json:"roles"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	if err := validator.New().Struct(u); err != nil {
		return fmt.Errorf("validation failed for User: %w", err)
	}
	return nil
}

// UserToken records an issued access token by its hash so it can be revoked.
type UserToken struct {
	entities.Entity
	UserID                  int64     `gorm:"not null;index"`
	TokenHash               string    `gorm:"type:varchar(256);not null;index:IX_UserToken_TokenHash"`
	TokenExpirationDateTime time.Time `gorm:"not null"`
}

// TokenResult is returned by a successful login.
type TokenResult struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// UserRepository stores users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUserName(ctx context.Context, userName string) (*User, error)
}

// UserTokenRepository stores issued token hashes.
type UserTokenRepository interface {
	Add(ctx context.Context, token *UserToken) error
	Exists(ctx context.Context, userID int64, tokenHash string, now time.Time) (bool, error)
	DeleteByHash(ctx context.Context, userID int64, tokenHash string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// AccountService authenticates users and manages their tokens.
type AccountService interface {
	// Register creates a user with a hashed password.
	Register(ctx context.Context, user *User, password string) error
	// Login checks the credentials and issues an access token.
	Login(ctx context.Context, userName, password string) (*TokenResult, error)
	// Logout revokes the token.
	Logout(ctx context.Context, userID int64, token string) error
	// IsValidToken reports whether the token was issued to the user and not revoked.
	IsValidToken(ctx context.Context, userID int64, token string) (bool, error)
}
