package http

import (
	"github.com/keepnotes/go-notes-server/internal/logger"
	"github.com/keepnotes/go-notes-server/internal/service"
)

// Handler groups all HTTP route handlers and middleware over the shared
// service layer. One Handler instance serves all in-flight requests; it
// carries no per-request state.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler over the given services.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
