package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahmatsubandi/undanganku/internal/invitations"
	"github.com/rahmatsubandi/undanganku/internal/middleware"
	"github.com/rahmatsubandi/undanganku/internal/services"
	"github.com/rahmatsubandi/undanganku/pkg/response"
)

// InvitationHandler exposes the owner-facing invitation CRUD surface.
type InvitationHandler struct {
	invitations *services.InvitationService
}

func NewInvitationHandler(svc *services.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitations: svc}
}

// invitationRequest is the full document payload; updates replace the stored
// document wholesale. Pointer text fields distinguish "absent" (default
// applies) from an explicit empty string.
type invitationRequest struct {
	Theme      string `json:"theme"`
	CoverPhoto string `json:"cover_photo"`

	Groom  invitations.CoupleInfo  `json:"groom" validate:"required"`
	Bride  invitations.CoupleInfo  `json:"bride" validate:"required"`
	Events []invitations.EventInfo `json:"events" validate:"required,min=1,dive"`

	LoveStory []invitations.LoveStoryItem `json:"love_story" validate:"omitempty,dive"`
	Gallery   []invitations.GalleryItem   `json:"gallery" validate:"omitempty,dive"`
	Gifts     []invitations.GiftAccount   `json:"gifts" validate:"omitempty,dive"`

	OpeningText *string `json:"opening_text"`
	ClosingText *string `json:"closing_text"`
	QuranVerse  *string `json:"quran_verse"`
	QuranSurah  *string `json:"quran_surah"`

	VideoURL     string `json:"video_url"`
	StreamingURL string `json:"streaming_url"`

	Settings *invitations.Settings `json:"settings"`
}

func (r invitationRequest) toInput() services.DocumentInput {
	return services.DocumentInput{
		Theme:        r.Theme,
		CoverPhoto:   r.CoverPhoto,
		Groom:        r.Groom,
		Bride:        r.Bride,
		Events:       r.Events,
		LoveStory:    r.LoveStory,
		Gallery:      r.Gallery,
		Gifts:        r.Gifts,
		OpeningText:  r.OpeningText,
		ClosingText:  r.ClosingText,
		QuranVerse:   r.QuranVerse,
		QuranSurah:   r.QuranSurah,
		VideoURL:     r.VideoURL,
		StreamingURL: r.StreamingURL,
		Settings:     r.Settings,
	}
}

// POST /api/invitations
func (h *InvitationHandler) Create(c *gin.Context) {
	var req invitationRequest
	if !bindAndValidate(c, &req) {
		return
	}

	inv, err := h.invitations.Create(c.Request.Context(), middleware.UserID(c), req.toInput())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, inv)
}

// GET /api/invitations
func (h *InvitationHandler) List(c *gin.Context) {
	invs, err := h.invitations.ListByOwner(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, invs)
}

// GET /api/invitations/:id
func (h *InvitationHandler) Get(c *gin.Context) {
	inv, err := h.invitations.GetForOwner(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

// PUT /api/invitations/:id
func (h *InvitationHandler) Update(c *gin.Context) {
	var req invitationRequest
	if !bindAndValidate(c, &req) {
		return
	}

	inv, err := h.invitations.Update(c.Request.Context(), c.Param("id"), middleware.UserID(c), req.toInput())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

// DELETE /api/invitations/:id
func (h *InvitationHandler) Delete(c *gin.Context) {
	if err := h.invitations.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Invitation deleted successfully"})
}

// GET /api/invitations/:id/stats
func (h *InvitationHandler) Stats(c *gin.Context) {
	stats, err := h.invitations.GetStats(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}
