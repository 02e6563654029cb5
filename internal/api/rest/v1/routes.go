package v1

import (
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/accounts"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tasks"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tenancy"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/config"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/logger"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// RouteDependencies holds what the version 1 routes need.
type RouteDependencies struct {
	Server         config.ServerSettings
	MultiTenancy   config.MultiTenancySettings
	Tokens         TokenParser
	AccountService accounts.AccountService
	TaskService    tasks.TaskService
	Tenants        tenancy.TenantRepository
	Logger         logger.Logger
}

// SetupRoutes installs the middleware pipeline and all the API routes for version 1.
func SetupRoutes(r *gin.Engine, deps RouteDependencies) {
	r.Use(
		ErrorHandler(deps.Logger),
		Metrics(),
		CORS(deps.Server),
		Authentication(deps.Tokens),
		TenantResolution(deps.MultiTenancy, deps.Tenants),
		TokenRevocation(deps.AccountService),
		Session(),
	)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	if deps.Server.OpenAPIPath != "" {
		r.GET(BasePath+"/openapi.yaml", func(c *gin.Context) {
			c.File(deps.Server.OpenAPIPath)
		})
	}

	v1 := r.Group(BasePath)

	authHandler := NewAuthHandler(deps.AccountService)
	v1.POST("/auth/token", authHandler.Token)
	v1.POST("/auth/logout", RequireAuthentication(), authHandler.Logout)

	taskHandler := NewTaskHandler(deps.TaskService)
	v1.POST("/tasks", RequirePermission(tasks.PermissionCreate), taskHandler.Create)
	v1.GET("/tasks", RequirePermission(tasks.PermissionView), taskHandler.List)
	v1.GET("/tasks/:id", RequirePermission(tasks.PermissionView), taskHandler.GetByID)
	v1.PUT("/tasks/:id", RequirePermission(tasks.PermissionEdit), taskHandler.Edit)
	v1.DELETE("/tasks/:id", RequirePermission(tasks.PermissionDelete), taskHandler.DeleteByID)
}
