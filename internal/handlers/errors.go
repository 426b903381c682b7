package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rahmatsubandi/undanganku/internal/services"
	appErrors "github.com/rahmatsubandi/undanganku/pkg/errors"
	"github.com/rahmatsubandi/undanganku/pkg/response"
)

// writeServiceError translates service sentinel errors into the API error
// vocabulary; anything unrecognised becomes a 500.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvitationNotFound),
		errors.Is(err, services.ErrRSVPNotFound),
		errors.Is(err, services.ErrMessageNotFound),
		errors.Is(err, services.ErrUserNotFound):
		response.Error(c, appErrors.ErrNotFound)
	case errors.Is(err, services.ErrNotInvitationOwner):
		response.Error(c, appErrors.ErrForbidden)
	case errors.Is(err, services.ErrEmailTaken):
		response.Error(c, appErrors.ErrEmailTaken)
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Error(c, appErrors.ErrInvalidCredentials)
	case errors.Is(err, services.ErrUnsupportedExtension):
		response.Error(c, appErrors.ErrUnsupportedMedia)
	default:
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
	}
}
