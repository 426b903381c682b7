package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	iauth "github.com/rahmatsubandi/undanganku/internal/auth"
	"github.com/rahmatsubandi/undanganku/internal/middleware"
	"github.com/rahmatsubandi/undanganku/internal/services"
	"github.com/rahmatsubandi/undanganku/pkg/errors"
	"github.com/rahmatsubandi/undanganku/pkg/metrics"
	"github.com/rahmatsubandi/undanganku/pkg/response"
)

// AuthHandler manages account registration, login and identity lookup.
type AuthHandler struct {
	accounts *services.AccountService
	jwt      *iauth.JWTService
}

func NewAuthHandler(accounts *services.AccountService, jwt *iauth.JWTService) *AuthHandler {
	return &AuthHandler{accounts: accounts, jwt: jwt}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), services.RegisterInput{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: req.Password,
		Name:     strings.TrimSpace(req.Name),
	})
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("failure").Inc()
		writeServiceError(c, err)
		return
	}

	token, err := h.jwt.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("failure").Inc()
		response.Error(c, errors.ErrInternalServer.WithInternal(err))
		return
	}

	metrics.AuthAttempts.WithLabelValues("success").Inc()
	response.Success(c, http.StatusCreated, tokenPayload(token, user))
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, err := h.accounts.Authenticate(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)), req.Password)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("failure").Inc()
		writeServiceError(c, err)
		return
	}

	token, err := h.jwt.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("failure").Inc()
		response.Error(c, errors.ErrInternalServer.WithInternal(err))
		return
	}

	metrics.AuthAttempts.WithLabelValues("success").Inc()
	response.Success(c, http.StatusOK, tokenPayload(token, user))
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Error(c, errors.ErrUnauthorized)
		return
	}
	response.Success(c, http.StatusOK, user)
}

func tokenPayload(token string, user interface{}) gin.H {
	return gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	}
}
