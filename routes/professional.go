package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agendafacil/backend/controllers"
)

// SetupProfessionalRoutes configures professional and slot routes
func SetupProfessionalRoutes(app *fiber.App) {
	professional := app.Group("/professionals")
	professional.Get("/", controllers.GetAllProfessionals)
	professional.Get("/:id", controllers.GetProfessional)
	professional.Get("/:id/slots", controllers.GetAvailableSlots)
	professional.Post("/", controllers.CreateProfessional)
	professional.Post("/:id/services", controllers.AssignService)
	professional.Delete("/:id/services/:service_id", controllers.UnassignService)
	professional.Patch("/:id", controllers.UpdateProfessional)
	professional.Delete("/:id", controllers.DeleteProfessional)
}
