package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahmatsubandi/undanganku/internal/middleware"
	"github.com/rahmatsubandi/undanganku/internal/models"
	"github.com/rahmatsubandi/undanganku/internal/services"
	"github.com/rahmatsubandi/undanganku/pkg/metrics"
	"github.com/rahmatsubandi/undanganku/pkg/response"
)

// RSVPHandler covers both the public guest submission and the owner-side
// listing and moderation of RSVPs.
type RSVPHandler struct {
	rsvps *services.RSVPService
}

func NewRSVPHandler(svc *services.RSVPService) *RSVPHandler {
	return &RSVPHandler{rsvps: svc}
}

type rsvpRequest struct {
	GuestName  string `json:"guest_name" validate:"required"`
	Phone      string `json:"phone"`
	Attendance string `json:"attendance" validate:"required,oneof=hadir tidak_hadir belum_pasti"`
	GuestCount int    `json:"guest_count"`
}

// POST /api/public/invitations/:id/rsvps
func (h *RSVPHandler) CreatePublic(c *gin.Context) {
	var req rsvpRequest
	if !bindAndValidate(c, &req) {
		return
	}

	rsvp, err := h.rsvps.CreatePublic(c.Request.Context(), c.Param("id"), services.CreateRSVPInput{
		GuestName:  req.GuestName,
		Phone:      req.Phone,
		Attendance: models.Attendance(req.Attendance),
		GuestCount: req.GuestCount,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	metrics.GuestSubmissions.WithLabelValues("rsvp").Inc()
	response.Success(c, http.StatusCreated, rsvp)
}

// GET /api/invitations/:id/rsvps (owner)
func (h *RSVPHandler) List(c *gin.Context) {
	list, err := h.rsvps.ListForOwner(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, list, &response.Meta{Total: len(list)})
}

// DELETE /api/rsvps/:id (owner)
func (h *RSVPHandler) Delete(c *gin.Context) {
	if err := h.rsvps.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "RSVP deleted successfully"})
}
