// Package http exposes the REST API: account signup/login/logout, the
// authenticated user lookup, and note CRUD guarded by a session cookie.
package http

import (
	"github.com/notewall/notewall/internal/config"
	"github.com/notewall/notewall/internal/logger"
	"github.com/notewall/notewall/internal/service"
)

// Handler carries the services and configuration shared by all HTTP
// endpoints and middleware.
type Handler struct {
	services *service.Services
	cfg      config.App
	logger   *logger.Logger
}

// NewHandler creates a Handler.
func NewHandler(services *service.Services, cfg config.App, log *logger.Logger) *Handler {
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   log,
	}
}
