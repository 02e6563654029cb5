// Package identity models the claims of an authenticated caller and the
// typed readers the rest of the framework uses to inspect them.
package identity

import (
	"context"
	"strconv"
	"strings"
)

// Claim is a single typed statement about the caller.
type Claim struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Identity is an ordered set of claims. All readers are safe on a nil *Identity.
type Identity struct {
	authenticationType string
	claims             []Claim
}

// New creates an identity. An empty authentication type yields an
// unauthenticated identity.
func New(authenticationType string, claims ...Claim) *Identity {
	c := make([]Claim, len(claims))
	copy(c, claims)
	return &Identity{authenticationType: authenticationType, claims: c}
}

// AuthenticationType returns the scheme that produced the identity.
func (i *Identity) AuthenticationType() string {
	if i == nil {
		return ""
	}
	return i.authenticationType
}

// IsAuthenticated reports whether the identity was produced by an authentication scheme.
func (i *Identity) IsAuthenticated() bool {
	return i != nil && i.authenticationType != ""
}

// Claims returns a copy of all claims.
func (i *Identity) Claims() []Claim {
	if i == nil {
		return nil
	}
	out := make([]Claim, len(i.claims))
	copy(out, i.claims)
	return out
}

// FindFirst returns the first claim of the given type.
func (i *Identity) FindFirst(claimType string) (Claim, bool) {
	if i == nil {
		return Claim{}, false
	}
	for _, c := range i.claims {
		if c.Type == claimType {
			return c, true
		}
	}
	return Claim{}, false
}

// FindFirstValue returns the value of the first claim of the given type, or "".
func (i *Identity) FindFirstValue(claimType string) string {
	c, _ := i.FindFirst(claimType)
	return c.Value
}

// FindAll returns every claim of the given type in issue order.
func (i *Identity) FindAll(claimType string) []Claim {
	if i == nil {
		return nil
	}
	var out []Claim
	for _, c := range i.claims {
		if c.Type == claimType {
			out = append(out, c)
		}
	}
	return out
}

// UserID returns the numeric user id claim.
func (i *Identity) UserID() (int64, bool) {
	return i.int64Claim(ClaimUserID)
}

// TenantID returns the numeric tenant id claim.
func (i *Identity) TenantID() (int64, bool) {
	return i.int64Claim(ClaimTenantID)
}

// BranchID returns the numeric branch id claim.
func (i *Identity) BranchID() (int64, bool) {
	return i.int64Claim(ClaimBranchID)
}

// ImpersonatorTenantID returns the tenant of the user impersonating this identity.
func (i *Identity) ImpersonatorTenantID() (int64, bool) {
	return i.int64Claim(ClaimImpersonatorTenantID)
}

// ImpersonatorUserID returns the user impersonating this identity.
func (i *Identity) ImpersonatorUserID() (int64, bool) {
	return i.int64Claim(ClaimImpersonatorUserID)
}

// Permissions returns the values of all permission claims.
func (i *Identity) Permissions() []string {
	return i.values(ClaimPermission)
}

// Roles returns the values of all role claims.
func (i *Identity) Roles() []string {
	return i.values(ClaimRole)
}

// UserName returns the user name claim.
func (i *Identity) UserName() string {
	return i.FindFirstValue(ClaimUserName)
}

// FirstName returns the given name claim.
func (i *Identity) FirstName() string {
	return i.FindFirstValue(ClaimGivenName)
}

// LastName returns the surname claim.
func (i *Identity) LastName() string {
	return i.FindFirstValue(ClaimSurname)
}

// FullName joins the first and last name with a single space.
func (i *Identity) FullName() string {
	return i.FirstName() + " " + i.LastName()
}

// DisplayName is the full name, or the user name when no name claims exist.
func (i *Identity) DisplayName() string {
	fullName := i.FullName()
	if strings.TrimSpace(fullName) == "" {
		return i.UserName()
	}
	return fullName
}

func (i *Identity) int64Claim(claimType string) (int64, bool) {
	value := strings.TrimSpace(i.FindFirstValue(claimType))
	if value == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (i *Identity) values(claimType string) []string {
	claims := i.FindAll(claimType)
	out := make([]string, 0, len(claims))
	for _, c := range claims {
		out = append(out, c.Value)
	}
	return out
}

type identityContextKey struct{}

// WithIdentity attaches the identity to ctx.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// FromContext returns the identity attached to ctx, or nil.
func FromContext(ctx context.Context) *Identity {
	if ctx == nil {
		return nil
	}
	id, _ := ctx.Value(identityContextKey{}).(*Identity)
	return id
}
