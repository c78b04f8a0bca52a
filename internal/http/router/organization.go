package router

import (
	"atlasorg.app/console/internal/http/handler"
	"atlasorg.app/console/internal/http/middleware"
	"github.com/gin-gonic/gin"
)

func OrganizationRouter(rg *gin.RouterGroup, h *handler.OrganizationHandler) {
	rg.POST("", h.Create)
	rg.DELETE("/:slug", middleware.RequireSudo(), h.Delete)
}
