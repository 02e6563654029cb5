// Package session exposes the current caller to code that runs during a
// request, most importantly the persistence hooks.
package session

import (
	"context"
	"slices"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/identity"
)

// UserSession describes the caller of the current operation.
type UserSession interface {
	IsAuthenticated() bool
	UserID() *int64
	UserName() string
	TenantID() *int64
	BranchID() *int64
	ImpersonatorUserID() *int64
	Permissions() []string
	Roles() []string
	IsGranted(permission string) bool
	IsInRole(role string) bool
	UserIP() string
	UserBrowserName() string
}

// RequestInfo holds transport details recorded by tracking hooks.
type RequestInfo struct {
	IP          string
	BrowserName string
}

type claimsSession struct {
	identity *identity.Identity
	request  RequestInfo
}

// New creates a session backed by the claims of id.
func New(id *identity.Identity, request RequestInfo) UserSession {
	return &claimsSession{identity: id, request: request}
}

// Anonymous returns a session with no user.
func Anonymous() UserSession {
	return &claimsSession{}
}

func (s *claimsSession) IsAuthenticated() bool {
	return s.identity.IsAuthenticated()
}

func (s *claimsSession) UserID() *int64 {
	return optional(s.identity.UserID())
}

func (s *claimsSession) UserName() string {
	return s.identity.UserName()
}

func (s *claimsSession) TenantID() *int64 {
	return optional(s.identity.TenantID())
}

func (s *claimsSession) BranchID() *int64 {
	return optional(s.identity.BranchID())
}

func (s *claimsSession) ImpersonatorUserID() *int64 {
	return optional(s.identity.ImpersonatorUserID())
}

func (s *claimsSession) Permissions() []string {
	return s.identity.Permissions()
}

func (s *claimsSession) Roles() []string {
	return s.identity.Roles()
}

func (s *claimsSession) IsGranted(permission string) bool {
	return slices.Contains(s.identity.Permissions(), permission)
}

func (s *claimsSession) IsInRole(role string) bool {
	return slices.Contains(s.identity.Roles(), role)
}

func (s *claimsSession) UserIP() string {
	return s.request.IP
}

func (s *claimsSession) UserBrowserName() string {
	return s.request.BrowserName
}

func optional(v int64, ok bool) *int64 {
	if !ok {
		return nil
	}
	return &v
}

type sessionContextKey struct{}

// WithSession attaches the session to ctx.
func WithSession(ctx context.Context, s UserSession) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

// FromContext returns the session attached to ctx. When ctx has no session
// but carries an identity, a session without request info is built from it;
// otherwise the anonymous session is returned.
func FromContext(ctx context.Context) UserSession {
	if ctx == nil {
		return Anonymous()
	}
	if s, ok := ctx.Value(sessionContextKey{}).(UserSession); ok && s != nil {
		return s
	}
	if id := identity.FromContext(ctx); id != nil {
		return New(id, RequestInfo{})
	}
	return Anonymous()
}
