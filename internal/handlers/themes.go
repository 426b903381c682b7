package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahmatsubandi/undanganku/internal/themes"
	"github.com/rahmatsubandi/undanganku/pkg/errors"
	"github.com/rahmatsubandi/undanganku/pkg/response"
)

// GET /api/themes
func ListThemes(c *gin.Context) {
	response.Success(c, http.StatusOK, themes.List())
}

// GET /api/themes/:id
func GetTheme(c *gin.Context) {
	theme, ok := themes.Get(c.Param("id"))
	if !ok {
		response.Error(c, errors.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, theme)
}
