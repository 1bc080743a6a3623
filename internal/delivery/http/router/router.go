// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gather/internal/delivery/http/middleware"
	"gather/internal/delivery/http/router/handler"
	"gather/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	EventHandler       *handler.EventHandler
	SpeakerHandler     *handler.SpeakerHandler
	InscriptionHandler *handler.InscriptionHandler
	PresenceHandler    *handler.PresenceHandler
	CertificateHandler *handler.CertificateHandler
	MailHandler        *handler.MailHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	eventHandler       *handler.EventHandler
	speakerHandler     *handler.SpeakerHandler
	inscriptionHandler *handler.InscriptionHandler
	presenceHandler    *handler.PresenceHandler
	certificateHandler *handler.CertificateHandler
	mailHandler        *handler.MailHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		userHandler:        params.UserHandler,
		eventHandler:       params.EventHandler,
		speakerHandler:     params.SpeakerHandler,
		inscriptionHandler: params.InscriptionHandler,
		presenceHandler:    params.PresenceHandler,
		certificateHandler: params.CertificateHandler,
		mailHandler:        params.MailHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.GET("/validate", r.authHandler.ValidateToken)
		authGroup.GET("/providers", r.authHandler.ListProviders)
		authGroup.POST("/oauth/:provider/start", r.authHandler.StartOAuth)
		authGroup.GET("/oauth/:provider/callback", r.authHandler.OAuthCallback)
		authGroup.POST("/oauth/:provider/callback", r.authHandler.OAuthCallback)
	}

	// User management: listing and mutation are admin-only, self lookup is
	// open to any authenticated user.
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/:id", r.userHandler.GetByID)
		userGroup.GET("", r.userHandler.List, r.authMiddleware.RequireProfile(entity.ProfileAdmin))
		userGroup.POST("", r.userHandler.Create, r.authMiddleware.RequireProfile(entity.ProfileAdmin))
		userGroup.PUT("/:id", r.userHandler.Update, r.authMiddleware.RequireProfile(entity.ProfileAdmin))
		userGroup.DELETE("/:id", r.userHandler.Delete, r.authMiddleware.RequireProfile(entity.ProfileAdmin))
	}

	// Event routes: reads are public, writes require the admin profile.
	eventGroup := e.Group("/events")
	{
		eventGroup.GET("", r.eventHandler.List)
		eventGroup.GET("/:id", r.eventHandler.GetByID)
		eventGroup.POST("", r.eventHandler.Create, r.authMiddleware.Authenticate, r.authMiddleware.RequireProfile(entity.ProfileAdmin))
		eventGroup.PUT("/:id", r.eventHandler.Update, r.authMiddleware.Authenticate, r.authMiddleware.RequireProfile(entity.ProfileAdmin))
		eventGroup.DELETE("/:id", r.eventHandler.Delete, r.authMiddleware.Authenticate, r.authMiddleware.RequireProfile(entity.ProfileAdmin))
	}

	// Speaker routes: reads are public, writes require the admin profile.
	speakerGroup := e.Group("/speakers")
	{
		speakerGroup.GET("", r.speakerHandler.List)
		speakerGroup.GET("/:id", r.speakerHandler.GetByID)
		speakerGroup.POST("", r.speakerHandler.Create, r.authMiddleware.Authenticate, r.authMiddleware.RequireProfile(entity.ProfileAdmin))
		speakerGroup.PUT("/:id", r.speakerHandler.Update, r.authMiddleware.Authenticate, r.authMiddleware.RequireProfile(entity.ProfileAdmin))
		speakerGroup.DELETE("/:id", r.speakerHandler.Delete, r.authMiddleware.Authenticate, r.authMiddleware.RequireProfile(entity.ProfileAdmin))
	}

	// Inscription routes require authentication.
	inscriptionGroup := e.Group("/inscriptions")
	inscriptionGroup.Use(r.authMiddleware.Authenticate)
	{
		inscriptionGroup.GET("", r.inscriptionHandler.List)
		inscriptionGroup.GET("/:id", r.inscriptionHandler.GetByID)
		inscriptionGroup.GET("/:id/qrcode", r.inscriptionHandler.CheckInQR)
		inscriptionGroup.POST("", r.inscriptionHandler.Create)
		inscriptionGroup.PUT("/:id/status", r.inscriptionHandler.UpdateStatus, r.authMiddleware.RequireProfile(entity.ProfileAdmin))
		inscriptionGroup.DELETE("/:id", r.inscriptionHandler.Delete)
	}

	// Presence routes are admin-only operational endpoints.
	presenceGroup := e.Group("/presences")
	presenceGroup.Use(r.authMiddleware.Authenticate)
	presenceGroup.Use(r.authMiddleware.RequireProfile(entity.ProfileAdmin))
	{
		presenceGroup.GET("", r.presenceHandler.List)
		presenceGroup.GET("/:id", r.presenceHandler.GetByID)
		presenceGroup.POST("", r.presenceHandler.Register)
		presenceGroup.DELETE("/:id", r.presenceHandler.Delete)
	}

	// Certificate eligibility is an admin-only operational check.
	certificateGroup := e.Group("/certificates")
	certificateGroup.Use(r.authMiddleware.Authenticate)
	certificateGroup.Use(r.authMiddleware.RequireProfile(entity.ProfileAdmin))
	{
		certificateGroup.POST("/eligibility", r.certificateHandler.EvaluateEligibility)
		certificateGroup.POST("/eligibility/batch", r.certificateHandler.EvaluateBatch)
	}

	// Direct email sending is admin-only.
	mailGroup := e.Group("/email")
	mailGroup.Use(r.authMiddleware.Authenticate)
	mailGroup.Use(r.authMiddleware.RequireProfile(entity.ProfileAdmin))
	{
		mailGroup.POST("/send", r.mailHandler.Send)
	}
}
