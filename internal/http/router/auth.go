package router

import (
	"atlasorg.app/console/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, requireAuth gin.HandlerFunc) {
	rg.GET("/login", h.Login)
	rg.GET("/callback", h.Callback)

	rg.GET("/me", requireAuth, h.Me)
	rg.POST("/sudo", requireAuth, h.Sudo)
	rg.POST("/logout", requireAuth, h.Logout)
}
