package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahmatsubandi/undanganku/internal/middleware"
	"github.com/rahmatsubandi/undanganku/internal/services"
	"github.com/rahmatsubandi/undanganku/pkg/metrics"
	"github.com/rahmatsubandi/undanganku/pkg/response"
)

// MessageHandler covers public guestbook entries plus owner replies and
// moderation.
type MessageHandler struct {
	messages *services.MessageService
}

func NewMessageHandler(svc *services.MessageService) *MessageHandler {
	return &MessageHandler{messages: svc}
}

type messageRequest struct {
	GuestName string `json:"guest_name" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type replyRequest struct {
	Reply string `json:"reply" validate:"required"`
}

// POST /api/public/invitations/:id/messages
func (h *MessageHandler) CreatePublic(c *gin.Context) {
	var req messageRequest
	if !bindAndValidate(c, &req) {
		return
	}

	msg, err := h.messages.CreatePublic(c.Request.Context(), c.Param("id"), req.GuestName, req.Message)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	metrics.GuestSubmissions.WithLabelValues("message").Inc()
	response.Success(c, http.StatusCreated, msg)
}

// GET /api/public/invitations/:id/messages
func (h *MessageHandler) ListPublic(c *gin.Context) {
	list, err := h.messages.ListPublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

// GET /api/invitations/:id/messages (owner)
func (h *MessageHandler) List(c *gin.Context) {
	list, err := h.messages.ListForOwner(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, list, &response.Meta{Total: len(list)})
}

// PUT /api/messages/:id/reply (owner)
func (h *MessageHandler) Reply(c *gin.Context) {
	var req replyRequest
	if !bindAndValidate(c, &req) {
		return
	}

	msg, err := h.messages.Reply(c.Request.Context(), c.Param("id"), middleware.UserID(c), req.Reply)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, msg)
}

// DELETE /api/messages/:id (owner)
func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.messages.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
