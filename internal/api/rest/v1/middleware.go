package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/accounts"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tenancy"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/auth"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/config"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/identity"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/logger"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/metrics"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// UnexpectedErrorMessage is returned for every unhandled error.
const UnexpectedErrorMessage = "an unexpected error occurred while processing your request"

const accessTokenKey = "dnt.access_token"

// TokenParser turns a bearer token into claims.
type TokenParser interface {
	Parse(token string) (*auth.AccessClaims, error)
}

// ErrorHandler converts errors attached with ctx.Error and panics into JSON
// responses. An expired token yields 401, anything else 500.
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("Recovered from panic: ", r)
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: UnexpectedErrorMessage})
			}
		}()

		ctx.Next()

		if len(ctx.Errors) == 0 || ctx.Writer.Written() {
			return
		}

		err := ctx.Errors.Last().Err
		if errors.Is(err, auth.ErrTokenExpired) {
			ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: auth.ErrTokenExpired.Error()})
			return
		}

		log.With("method", ctx.Request.Method, "path", ctx.Request.URL.Path).Error("Request failed: ", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: UnexpectedErrorMessage})
	}
}

// Metrics records request counts and latencies by route template.
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		done := metrics.TrackInFlight()
		defer done()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequest(ctx.Request.Method, route, ctx.Writer.Status(), time.Since(start))
	}
}

// CORS allows the configured origins.
func CORS(settings config.ServerSettings) gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:  settings.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Tenant"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowOrigins) == 0 || (len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*") {
		cfg.AllowOrigins = nil
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}

// Authentication reads the bearer token, if any, and attaches its identity
// to the request context. Requests without a token continue anonymously.
// Revocation is checked by TokenRevocation once the tenant is known.
func Authentication(tokens TokenParser) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := bearerToken(ctx.GetHeader("Authorization"))
		if !ok {
			ctx.Next()
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				_ = ctx.Error(err)
				ctx.Abort()
				return
			}
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid authentication token"})
			return
		}

		id := claims.Identity()
		if _, ok := id.UserID(); !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid authentication token"})
			return
		}

		ctx.Set(accessTokenKey, token)
		ctx.Request = ctx.Request.WithContext(identity.WithIdentity(ctx.Request.Context(), id))
		ctx.Next()
	}
}

// TokenRevocation rejects access tokens that were logged out or never
// recorded. It runs after TenantResolution because token rows live in the
// tenant's database.
func TokenRevocation(accountService accounts.AccountService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetString(accessTokenKey)
		if token == "" {
			ctx.Next()
			return
		}

		reqCtx := ctx.Request.Context()
		userID, _ := identity.FromContext(reqCtx).UserID()
		valid, err := accountService.IsValidToken(reqCtx, userID, token)
		if err != nil {
			_ = ctx.Error(err)
			ctx.Abort()
			return
		}
		if !valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication token revoked"})
			return
		}
		ctx.Next()
	}
}

// TenantResolution attaches the current tenant to the request context. The
// tenant claim of an authenticated user wins over the tenant header.
func TenantResolution(settings config.MultiTenancySettings, tenants tenancy.TenantRepository) gin.HandlerFunc {
	header := settings.TenantHeader
	if header == "" {
		header = "X-Tenant"
	}

	return func(ctx *gin.Context) {
		if !settings.Enabled {
			ctx.Next()
			return
		}

		reqCtx := ctx.Request.Context()
		var (
			tenant *tenancy.Tenant
			err    error
		)
		if tenantID, ok := identity.FromContext(reqCtx).TenantID(); ok {
			tenant, err = tenants.GetByID(reqCtx, tenantID)
		} else if name := ctx.GetHeader(header); name != "" {
			tenant, err = tenants.GetByName(reqCtx, name)
		} else {
			ctx.Next()
			return
		}

		if err != nil {
			if errors.Is(err, tenancy.ErrTenantNotFound) {
				ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: "unknown tenant"})
				return
			}
			_ = ctx.Error(err)
			ctx.Abort()
			return
		}
		if !tenant.IsActive {
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "tenant is not active"})
			return
		}

		ctx.Request = ctx.Request.WithContext(tenancy.WithTenant(reqCtx, tenant))
		ctx.Next()
	}
}

// Session builds the user session from the request identity.
func Session() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		reqCtx := ctx.Request.Context()
		s := session.New(identity.FromContext(reqCtx), session.RequestInfo{
			IP:          ctx.ClientIP(),
			BrowserName: ctx.Request.UserAgent(),
		})
		ctx.Request = ctx.Request.WithContext(session.WithSession(reqCtx, s))
		ctx.Next()
	}
}

// RequirePermission rejects anonymous callers with 401 and callers lacking
// the permission with 403.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		s := session.FromContext(ctx.Request.Context())
		if !s.IsAuthenticated() {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
			return
		}
		if !s.IsGranted(permission) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "permission " + permission + " is required"})
			return
		}
		ctx.Next()
	}
}

// RequireAuthentication rejects anonymous callers with 401.
func RequireAuthentication() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !session.FromContext(ctx.Request.Context()).IsAuthenticated() {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
			return
		}
		ctx.Next()
	}
}

func bearerToken(value string) (string, bool) {
	scheme := auth.AuthenticationType + " "
	if len(value) <= len(scheme) || !strings.EqualFold(value[:len(scheme)], scheme) {
		return "", false
	}
	token := strings.TrimSpace(value[len(scheme):])
	return token, token != ""
}
