package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rahmatsubandi/undanganku/internal/database"
	"github.com/rahmatsubandi/undanganku/pkg/response"
)

// Health reports process liveness and database reachability.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		dbStatus := "ok"
		code := http.StatusOK

		if err := database.Ping(db); err != nil {
			status = "degraded"
			dbStatus = "unreachable"
			code = http.StatusServiceUnavailable
		}

		response.Success(c, code, gin.H{
			"status":   status,
			"database": dbStatus,
		})
	}
}
