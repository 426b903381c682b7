package api

import (
	"github.com/gin-gonic/gin"

	"github.com/rahmatsubandi/undanganku/internal/handlers"
)

func registerUploadRoutes(api *gin.RouterGroup, h *handlers.UploadHandler) {
	api.POST("/uploads/music", h.Music)
}
