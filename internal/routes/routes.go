// Package routes defines HTTP routes for the booking backend.
package routes

import (
	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/config"
	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/handlers"
	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/middleware"
	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/models"
	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup configures all HTTP routes for the application.
func Setup(
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	authHandler *handlers.AuthHandler,
	sessionHandler *handlers.SessionHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register",
			middleware.RequireAuth(authService),
			middleware.RequireRole(models.RoleAdmin),
			authHandler.Register)
		auth.GET("/me", middleware.RequireAuth(authService), authHandler.Me)
		auth.POST("/logout", middleware.RequireAuth(authService), authHandler.Logout)
	}

	sessions := router.Group("/sessions", middleware.RequireAuth(authService))
	{
		sessions.POST("",
			middleware.RequireRole(models.RoleTutor, models.RoleStudent),
			sessionHandler.Submit)
		sessions.GET("", sessionHandler.List)
		sessions.PATCH("/:id/status",
			middleware.RequireRole(models.RoleAdmin),
			sessionHandler.ChangeStatus)
		sessions.GET("/audits",
			middleware.RequireRole(models.RoleAdmin),
			sessionHandler.ListAudits)
		sessions.GET("/:id/audits",
			middleware.RequireRole(models.RoleAdmin),
			sessionHandler.ListAudits)
	}
}
