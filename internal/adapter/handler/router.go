package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/yt-research-assistant/internal/adapter/dto/common"
	"github.com/johnquangdev/yt-research-assistant/internal/domain/repositories"
	"github.com/johnquangdev/yt-research-assistant/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	messageHandler *MessageHandler
	sessions       repositories.SessionRepository
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, messageHandler *MessageHandler, sessions repositories.SessionRepository) *Router {
	return &Router{
		cfg:            cfg,
		messageHandler: messageHandler,
		sessions:       sessions,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")
	v1.POST("/messages", rt.messageHandler.PostMessage)
	v1.GET("/sessions/:user_id", rt.messageHandler.GetSession)
}

// healthCheck returns health status and the stored session count
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:   "ok",
		Sessions: rt.sessions.Count(),
	})
}
