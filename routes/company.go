package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agendafacil/backend/controllers"
)

// SetupCompanyRoutes configures all company related routes
func SetupCompanyRoutes(app *fiber.App) {
	company := app.Group("/companies")
	company.Get("/", controllers.GetAllCompanies)
	company.Get("/:id", controllers.GetCompany)
	company.Get("/:id/professionals", controllers.GetCompanyProfessionals)
	company.Post("/", controllers.CreateCompany)
	company.Patch("/:id", controllers.UpdateCompany)
	company.Delete("/:id", controllers.DeleteCompany)
}
