package api

import (
	"github.com/gin-gonic/gin"

	"github.com/rahmatsubandi/undanganku/internal/handlers"
)

// Guest submissions arrive unauthenticated from the public invitation page;
// listing and moderation stay behind the owner's token.
func registerGuestRoutes(engine *gin.Engine, api *gin.RouterGroup, rsvps *handlers.RSVPHandler, messages *handlers.MessageHandler) {
	public := engine.Group("/api/public/invitations/:id")
	{
		public.POST("/rsvps", rsvps.CreatePublic)
		public.POST("/messages", messages.CreatePublic)
		public.GET("/messages", messages.ListPublic)
	}

	api.GET("/invitations/:id/rsvps", rsvps.List)
	api.DELETE("/rsvps/:id", rsvps.Delete)

	api.GET("/invitations/:id/messages", messages.List)
	api.PUT("/messages/:id/reply", messages.Reply)
	api.DELETE("/messages/:id", messages.Delete)
}
