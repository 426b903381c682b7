package api

import (
	"github.com/gin-gonic/gin"

	"github.com/rahmatsubandi/undanganku/internal/handlers"
)

func registerPublicRoutes(engine *gin.Engine, h *handlers.PublicHandler) {
	engine.GET("/api/public/invitations/:id", h.GetInvitation)

	themes := engine.Group("/api/themes")
	{
		themes.GET("", handlers.ListThemes)
		themes.GET("/:id", handlers.GetTheme)
	}
}
