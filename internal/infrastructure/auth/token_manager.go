package auth

import (
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	cryptoDomain "github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/crypto"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/config"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/identity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthenticationType is the authentication type of identities parsed from tokens.
const AuthenticationType = "Bearer"

var (
	// ErrTokenExpired is returned for a well formed token past its expiry.
	ErrTokenExpired = errors.New("authentication token expired")
	// ErrInvalidToken is returned for any other token that fails validation.
	ErrInvalidToken = errors.New("invalid authentication token")
)

// AccessClaims is the payload of an access token.
type AccessClaims struct {
	UserID               string   `json:"uid"`
	UserName             string   `json:"name,omitempty"`
	TenantID             string   `json:"tid,omitempty"`
	TenantName           string   `json:"tname,omitempty"`
	BranchID             string   `json:"bid,omitempty"`
	ImpersonatorUserID   string   `json:"imp_uid,omitempty"`
	ImpersonatorTenantID string   `json:"imp_tid,omitempty"`
	GivenName            string   `json:"given_name,omitempty"`
	Surname              string   `json:"family_name,omitempty"`
	SerialNumber         string   `json:"serial,omitempty"`
	Permissions          []string `json:"perms,omitempty"`
	Roles                []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Identity converts the claims back into an authenticated identity.
func (c *AccessClaims) Identity() *identity.Identity {
	var claims []identity.Claim
	add := func(claimType, value string) {
		if value != "" {
			claims = append(claims, identity.Claim{Type: claimType, Value: value})
		}
	}

	add(identity.ClaimUserID, c.UserID)
	add(identity.ClaimUserName, c.UserName)
	add(identity.ClaimTenantID, c.TenantID)
	add(identity.ClaimTenantName, c.TenantName)
	add(identity.ClaimBranchID, c.BranchID)
	add(identity.ClaimImpersonatorUserID, c.ImpersonatorUserID)
	add(identity.ClaimImpersonatorTenantID, c.ImpersonatorTenantID)
	add(identity.ClaimGivenName, c.GivenName)
	add(identity.ClaimSurname, c.Surname)
	add(identity.ClaimSerialNumber, c.SerialNumber)
	for _, p := range c.Permissions {
		add(identity.ClaimPermission, p)
	}
	for _, r := range c.Roles {
		add(identity.ClaimRole, r)
	}

	return identity.New(AuthenticationType, claims...)
}

func claimsFromIdentity(id *identity.Identity) AccessClaims {
	return AccessClaims{
		UserID:               id.FindFirstValue(identity.ClaimUserID),
		UserName:             id.UserName(),
		TenantID:             id.FindFirstValue(identity.ClaimTenantID),
		TenantName:           id.FindFirstValue(identity.ClaimTenantName),
		BranchID:             id.FindFirstValue(identity.ClaimBranchID),
		ImpersonatorUserID:   id.FindFirstValue(identity.ClaimImpersonatorUserID),
		ImpersonatorTenantID: id.FindFirstValue(identity.ClaimImpersonatorTenantID),
		GivenName:            id.FirstName(),
		Surname:              id.LastName(),
		SerialNumber:         id.FindFirstValue(identity.ClaimSerialNumber),
		Permissions:          id.Permissions(),
		Roles:                id.Roles(),
	}
}

// IssuedToken is a signed access token.
type IssuedToken struct {
	Token     string
	ID        string
	ExpiresAt time.Time
}

// TokenManager signs and validates access tokens.
type TokenManager struct {
	settings  config.JwtSettings
	method    jwt.SigningMethod
	signKey   interface{}
	verifyKey interface{}
	now       func() time.Time
}

// NewTokenManager creates a manager for settings. RS256 keys are read with rsaProcessor.
func NewTokenManager(settings config.JwtSettings, rsaProcessor cryptoDomain.RSAProcessor) (*TokenManager, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	m := &TokenManager{settings: settings, now: time.Now}

	switch strings.ToUpper(settings.SigningMethod) {
	case "HS256":
		m.method = jwt.SigningMethodHS256
		m.signKey = []byte(settings.Secret)
		m.verifyKey = []byte(settings.Secret)

	case "RS256":
		if rsaProcessor == nil {
			return nil, errors.New("rs256 requires an RSA processor")
		}
		m.method = jwt.SigningMethodRS256

		var publicKey *rsa.PublicKey
		if settings.PrivateKeyPath != "" {
			privateKey, err := rsaProcessor.ReadPrivateKey(settings.PrivateKeyPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load signing key: %w", err)
			}
			m.signKey = privateKey
			publicKey = &privateKey.PublicKey
		}
		if settings.PublicKeyPath != "" {
			key, err := rsaProcessor.ReadPublicKey(settings.PublicKeyPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load verification key: %w", err)
			}
			publicKey = key
		}
		m.verifyKey = publicKey

	default:
		return nil, fmt.Errorf("unsupported signing method: %s", settings.SigningMethod)
	}

	return m, nil
}

// WithClock replaces the time source used to issue and validate tokens.
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	m.now = now
	return m
}

// CanIssue reports whether the manager holds a signing key.
func (m *TokenManager) CanIssue() bool {
	return m.signKey != nil
}

// Issue signs an access token carrying the claims of id.
func (m *TokenManager) Issue(id *identity.Identity) (*IssuedToken, error) {
	if !m.CanIssue() {
		return nil, errors.New("token manager has no signing key")
	}
	if _, ok := id.UserID(); !ok {
		return nil, errors.New("identity has no user id")
	}

	now := m.now()
	expiresAt := now.Add(m.settings.AccessTokenTTL)

	claims := claimsFromIdentity(id)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   claims.UserID,
		Issuer:    m.settings.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	if m.settings.Audience != "" {
		claims.Audience = jwt.ClaimStrings{m.settings.Audience}
	}

	signed, err := jwt.NewWithClaims(m.method, claims).SignedString(m.signKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &IssuedToken{Token: signed, ID: claims.ID, ExpiresAt: expiresAt}, nil
}

// Parse validates tokenString and returns its claims.
func (m *TokenManager) Parse(tokenString string) (*AccessClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithIssuer(m.settings.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.settings.Leeway > 0 {
		options = append(options, jwt.WithLeeway(m.settings.Leeway))
	}
	if m.settings.Audience != "" {
		options = append(options, jwt.WithAudience(m.settings.Audience))
	}

	token, err := jwt.NewParser(options...).ParseWithClaims(tokenString, &AccessClaims{}, func(*jwt.Token) (interface{}, error) {
		return m.verifyKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// HashToken returns the digest stored instead of the token itself.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.StdEncoding.EncodeToString(sum[:])
}
