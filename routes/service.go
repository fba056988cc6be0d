package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agendafacil/backend/controllers"
)

func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/services")
	service.Get("/", controllers.GetAllServices)
	service.Get("/:id", controllers.GetService)
	service.Post("/", controllers.CreateService)
	service.Put("/:id", controllers.UpdateService)
	service.Delete("/:id", controllers.DeleteService)
}
