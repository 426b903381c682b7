package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahmatsubandi/undanganku/internal/services"
	"github.com/rahmatsubandi/undanganku/pkg/errors"
	"github.com/rahmatsubandi/undanganku/pkg/metrics"
	"github.com/rahmatsubandi/undanganku/pkg/response"
)

// UploadHandler stores owner-uploaded media on local disk.
type UploadHandler struct {
	uploads *services.UploadService
}

func NewUploadHandler(svc *services.UploadService) *UploadHandler {
	return &UploadHandler{uploads: svc}
}

// POST /api/uploads/music (owner, multipart/form-data with a "file" part)
func (h *UploadHandler) Music(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, errors.NewBadRequest("file is required"))
		return
	}

	src, err := header.Open()
	if err != nil {
		response.Error(c, errors.ErrInternalServer.WithInternal(err))
		return
	}
	defer src.Close()

	url, err := h.uploads.SaveMusic(header.Filename, src)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	metrics.MusicUploads.Inc()
	response.Success(c, http.StatusCreated, gin.H{
		"url":      url,
		"filename": header.Filename,
	})
}
