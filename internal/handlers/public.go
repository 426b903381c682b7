package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahmatsubandi/undanganku/internal/services"
	"github.com/rahmatsubandi/undanganku/internal/themes"
	appErrors "github.com/rahmatsubandi/undanganku/pkg/errors"
	"github.com/rahmatsubandi/undanganku/pkg/response"
)

// PublicHandler serves the unauthenticated guest view of an invitation.
type PublicHandler struct {
	invitations *services.InvitationService
}

func NewPublicHandler(svc *services.InvitationService) *PublicHandler {
	return &PublicHandler{invitations: svc}
}

// GET /api/public/invitations/:id
//
// The invitation document is returned with the resolved theme definition
// joined in as theme_data, so guest pages render without a second request.
func (h *PublicHandler) GetInvitation(c *gin.Context) {
	inv, err := h.invitations.GetPublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	raw, err := json.Marshal(inv)
	if err != nil {
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}
	doc["theme_data"] = themes.GetOrDefault(inv.Theme)

	response.Success(c, http.StatusOK, doc)
}
