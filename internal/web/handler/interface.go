package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sessionkit/noluhn/internal/config"
	"github.com/sessionkit/noluhn/internal/sessionid"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, ids *sessionid.Provider)
}
