package router

import (
	"atlasorg.app/console/internal/http/handler"
	"atlasorg.app/console/internal/http/middleware"
	"atlasorg.app/console/internal/service"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authService := services.Auth()
	requireAuth := middleware.RequireAuth(authService)

	authHandler := handler.NewAuthHandler(authService, cfg.DashboardURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler, requireAuth)

	v1 := router.Group("/api/v1")
	v1.Use(requireAuth)
	{
		userHandler := handler.NewUserHandler(services.Users())
		UserRouter(v1.Group("/users"), userHandler)

		orgHandler := handler.NewOrganizationHandler(services.Organizations())
		OrganizationRouter(v1.Group("/organizations"), orgHandler)
	}
}
