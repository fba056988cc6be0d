package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agendafacil/backend/controllers"
)

// SetupWorkingHourRoutes configures all working hour related routes
func SetupWorkingHourRoutes(app *fiber.App) {
	workingHour := app.Group("/working-hours")
	workingHour.Get("/", controllers.GetAllWorkingHours)
	workingHour.Get("/:id", controllers.GetWorkingHour)
	workingHour.Post("/", controllers.CreateWorkingHour)
	workingHour.Patch("/:id", controllers.UpdateWorkingHour)
	workingHour.Delete("/:id", controllers.DeleteWorkingHour)
}
