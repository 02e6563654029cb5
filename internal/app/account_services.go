package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/accounts"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/auth"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/persistence"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/identity"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 6

// accountService implements the AccountService interface
type accountService struct {
	uows   *persistence.UnitOfWorkFactory
	tokens *auth.TokenManager
	logger logger.Logger
	now    func() time.Time
}

// NewAccountService creates a new accountService instance
func NewAccountService(uows *persistence.UnitOfWorkFactory, tokens *auth.TokenManager, logger logger.Logger) (accounts.AccountService, error) {
	if uows == nil || tokens == nil {
		return nil, fmt.Errorf("unit of work factory and token manager are required")
	}
	return &accountService{
		uows:   uows,
		tokens: tokens,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

// Register creates a user with a bcrypt hashed password.
func (s *accountService) Register(ctx context.Context, user *accounts.User, password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.SecurityStamp = uuid.NewString()
	user.IsActive = true

	uow, err := s.uows.New(ctx)
	if err != nil {
		return err
	}
	if err := persistence.NewGormUserRepository(uow).Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("Registered user ", user.UserName)
	return nil
}

// Login checks the credentials, issues an access token and records its hash.
func (s *accountService) Login(ctx context.Context, userName, password string) (*accounts.TokenResult, error) {
	uow, err := s.uows.New(ctx)
	if err != nil {
		return nil, err
	}

	user, err := persistence.NewGormUserRepository(uow).GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, accounts.ErrUserNotFound) {
			return nil, accounts.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, accounts.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, accounts.ErrInvalidCredentials
	}

	issued, err := s.tokens.Issue(userIdentity(user))
	if err != nil {
		return nil, err
	}

	tokenRepo := persistence.NewGormUserTokenRepository(uow)
	if _, err := tokenRepo.DeleteExpired(ctx, s.now()); err != nil {
		s.logger.Warn("Failed to purge expired tokens: ", err)
	}
	err = tokenRepo.Add(ctx, &accounts.UserToken{
		UserID:                  user.ID,
		TokenHash:               auth.HashToken(issued.Token),
		TokenExpirationDateTime: issued.ExpiresAt.UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User ", user.UserName, " logged in")
	return &accounts.TokenResult{AccessToken: issued.Token, ExpiresAt: issued.ExpiresAt}, nil
}

// Logout revokes the token.
func (s *accountService) Logout(ctx context.Context, userID int64, token string) error {
	uow, err := s.uows.New(ctx)
	if err != nil {
		return err
	}
	return persistence.NewGormUserTokenRepository(uow).DeleteByHash(ctx, userID, auth.HashToken(token))
}

// IsValidToken reports whether the token is recorded for the user and not expired.
func (s *accountService) IsValidToken(ctx context.Context, userID int64, token string) (bool, error) {
	uow, err := s.uows.New(ctx)
	if err != nil {
		return false, err
	}
	return persistence.NewGormUserTokenRepository(uow).Exists(ctx, userID, auth.HashToken(token), s.now())
}

func userIdentity(user *accounts.User) *identity.Identity {
	claims := []identity.Claim{
		{Type: identity.ClaimUserID, Value: strconv.FormatInt(user.ID, 10)},
		{Type: identity.ClaimUserName, Value: user.UserName},
		{Type: identity.ClaimSerialNumber, Value: user.SecurityStamp},
	}
	if user.TenantID != 0 {
		claims = append(claims, identity.Claim{Type: identity.ClaimTenantID, Value: strconv.FormatInt(user.TenantID, 10)})
	}
	if user.BranchID != nil {
		claims = append(claims, identity.Claim{Type: identity.ClaimBranchID, Value: strconv.FormatInt(*user.BranchID, 10)})
	}
	if user.FirstName != "" {
		claims = append(claims, identity.Claim{Type: identity.ClaimGivenName, Value: user.FirstName})
	}
	if user.LastName != "" {
		claims = append(claims, identity.Claim{Type: identity.ClaimSurname, Value: user.LastName})
	}
	for _, p := range user.Permissions {
		claims = append(claims, identity.Claim{Type: identity.ClaimPermission, Value: p})
	}
	for _, r := range user.Roles {
		claims = append(claims, identity.Claim{Type: identity.ClaimRole, Value: r})
	}
	return identity.New("Password", claims...)
}
