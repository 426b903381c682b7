package api

import (
	"github.com/gin-gonic/gin"

	"github.com/rahmatsubandi/undanganku/internal/handlers"
)

func registerInvitationRoutes(api *gin.RouterGroup, h *handlers.InvitationHandler) {
	invitations := api.Group("/invitations")
	{
		invitations.POST("", h.Create)
		invitations.GET("", h.List)
		invitations.GET("/:id", h.Get)
		invitations.PUT("/:id", h.Update)
		invitations.DELETE("/:id", h.Delete)
		invitations.GET("/:id/stats", h.Stats)
	}
}
