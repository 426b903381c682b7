package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/rahmatsubandi/undanganku/internal/app"
	iauth "github.com/rahmatsubandi/undanganku/internal/auth"
	"github.com/rahmatsubandi/undanganku/internal/handlers"
	"github.com/rahmatsubandi/undanganku/internal/middleware"
	"github.com/rahmatsubandi/undanganku/internal/services"
)

// NewRouter builds the Gin engine, wires middleware and registers all routes.
func NewRouter(db *gorm.DB, jwt *iauth.JWTService, cfg *app.Config) (*gin.Engine, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if jwt == nil {
		return nil, fmt.Errorf("jwt service must be provided")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config must be provided")
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.CORS.Origins...))

	r.NoRoute(middleware.NotFoundHandler)

	// Health and metrics endpoints (public)
	r.GET("/health", handlers.Health(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	accounts, err := services.NewAccountService(db)
	if err != nil {
		return nil, err
	}
	invitationSvc, err := services.NewInvitationService(db)
	if err != nil {
		return nil, err
	}
	rsvpSvc, err := services.NewRSVPService(db)
	if err != nil {
		return nil, err
	}
	messageSvc, err := services.NewMessageService(db)
	if err != nil {
		return nil, err
	}
	uploadSvc, err := services.NewUploadService(cfg.Uploads.Dir)
	if err != nil {
		return nil, err
	}

	// Uploaded media is served directly from disk.
	r.Static("/uploads", uploadSvc.BaseDir())

	requireAuth := middleware.Auth(jwt, db)

	// Authenticated routes mount under this group; public guest routes are
	// registered on the engine directly.
	api := r.Group("/api")
	api.Use(requireAuth)

	registerAuthRoutes(r, api, handlers.NewAuthHandler(accounts, jwt))
	registerInvitationRoutes(api, handlers.NewInvitationHandler(invitationSvc))
	registerGuestRoutes(r, api, handlers.NewRSVPHandler(rsvpSvc), handlers.NewMessageHandler(messageSvc))
	registerPublicRoutes(r, handlers.NewPublicHandler(invitationSvc))
	registerUploadRoutes(api, handlers.NewUploadHandler(uploadSvc))

	return r, nil
}
