package routes

import (
	"github.com/gofiber/fiber/v2"

	"guid-gatherer/controllers"
)

func SetupResourceRoutes[M any, P any](api fiber.Router, path string, controller *controllers.ResourceController[M, P], guards ...fiber.Handler) {
	group := api.Group("/"+path, guards...)

	group.Get("/export", controller.Export)
	group.Post("/import", controller.Import)
	group.Post("/", controller.Create)
	group.Get("/", controller.GetAll)
	group.Get("/:id", controller.GetByID)
	group.Put("/:id", controller.Update)
	group.Delete("/:id", controller.Delete)
}
