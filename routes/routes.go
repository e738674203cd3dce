package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"guid-gatherer/config"
	"guid-gatherer/utils"
)

// One JSON line per request.
const requestLogFormat = `{"timestamp":"${time}","method":"${method}","url":"${url}","statusCode":${status},"duration":"${latency}","userAgent":"${ua}","ip":"${ip}"}` + "\n"

// New builds the Fiber app with the middleware chain and every route.
func New(cfg *config.Config, h *Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "GUID Gatherer",
		ErrorHandler: utils.ErrorHandler,
		BodyLimit:    10 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     requestLogFormat,
		TimeFormat: time.RFC3339,
	}))
	app.Use(helmet.New())
	config.SetupCORS(app, cfg)

	api := app.Group(cfg.APIPrefix)
	api.Get("/health", h.Health.Check)

	SetupAuthRoutes(api, h.Auth, h.Guard)

	var guards []fiber.Handler
	if cfg.RequireAuth {
		guards = append(guards, h.Guard)
	}
	SetupResourceRoutes(api, "contractors", h.Contractors, guards...)
	SetupResourceRoutes(api, "suppliers", h.Suppliers, guards...)
	SetupResourceRoutes(api, "wholesalers", h.Wholesalers, guards...)
	SetupResourceRoutes(api, "retail-sellers", h.RetailSellers, guards...)

	return app
}
