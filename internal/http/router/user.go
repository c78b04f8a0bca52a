package router

import (
	"atlasorg.app/console/internal/http/handler"
	"atlasorg.app/console/internal/http/middleware"
	"github.com/gin-gonic/gin"
)

func UserRouter(rg *gin.RouterGroup, h *handler.UserHandler) {
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", middleware.RequireSudo(), h.Close)
}
