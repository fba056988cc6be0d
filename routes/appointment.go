package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/agendafacil/backend/controllers"
	"github.com/agendafacil/backend/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments")
	appointment.Get("/", controllers.GetAllAppointments)
	appointment.Get("/by", controllers.GetAppointmentsByDate)
	appointment.Get("/:id", controllers.GetAppointment)
	appointment.Post("/", middleware.RateLimit(10, time.Minute), controllers.CreateAppointment)
	appointment.Patch("/:id", controllers.UpdateAppointment)
	appointment.Delete("/:id", controllers.DeleteAppointment)
}
