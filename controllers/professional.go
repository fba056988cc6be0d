package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agendafacil/backend/db"
	"github.com/agendafacil/backend/models"
	"github.com/agendafacil/backend/utils"
)

// GetAllProfessionals returns all professionals, optionally for one company
func GetAllProfessionals(c *fiber.Ctx) error {
	q := db.DB.Preload("Services")
	if companyID := c.Query("company_id"); companyID != "" {
		q = q.Where("company_id = ?", companyID)
	}

	var professionals []models.Professional
	if err := q.Find(&professionals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch professionals",
			Error:   err.Error(),
		})
	}
	return c.JSON(professionals)
}

// GetProfessional returns details for a specific professional
func GetProfessional(c *fiber.Ctx) error {
	id := c.Params("id")
	var professional models.Professional
	if err := db.DB.Preload("Services").First(&professional, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Professional not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(professional)
}

// CreateProfessional creates a new professional under a company
func CreateProfessional(c *fiber.Ctx) error {
	professional := new(models.Professional)
	if err := c.BodyParser(professional); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if professional.Name == "" || professional.CompanyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "name and company_id are required",
		})
	}
	var company models.Company
	if err := db.DB.First(&company, "id = ?", professional.CompanyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Company not found",
		})
	}
	if err := db.DB.Create(professional).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create professional",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(professional)
}

// UpdateProfessional updates a professional's details
func UpdateProfessional(c *fiber.Ctx) error {
	id := c.Params("id")
	var professional models.Professional
	if err := db.DB.First(&professional, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Professional not found",
		})
	}
	if err := c.BodyParser(&professional); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	professional.ID = id
	if err := db.DB.Save(&professional).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update professional",
			Error:   err.Error(),
		})
	}
	return c.JSON(professional)
}

// DeleteProfessional deletes a professional
func DeleteProfessional(c *fiber.Ctx) error {
	id := c.Params("id")
	var professional models.Professional
	if err := db.DB.First(&professional, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Professional not found",
		})
	}
	if err := db.DB.Delete(&professional).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete professional",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AssignService links a service the professional performs
func AssignService(c *fiber.Ctx) error {
	id := c.Params("id")
	var body struct {
		ServiceID string `json:"service_id"`
	}
	if err := c.BodyParser(&body); err != nil || body.ServiceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "service_id is required",
		})
	}

	var professional models.Professional
	if err := db.DB.First(&professional, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Professional not found",
		})
	}
	var service models.Service
	if err := db.DB.Where("id = ? AND company_id = ?", body.ServiceID, professional.CompanyID).First(&service).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found or does not belong to the professional's company",
		})
	}

	if err := db.DB.Model(&professional).Association("Services").Append(&service); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to assign service",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"professional_id": professional.ID,
		"service_id":      service.ID,
	})
}

// UnassignService removes a professional-service link
func UnassignService(c *fiber.Ctx) error {
	id := c.Params("id")
	serviceID := c.Params("service_id")

	var professional models.Professional
	if err := db.DB.First(&professional, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Professional not found",
		})
	}
	if err := db.DB.Model(&professional).Association("Services").Delete(&models.Service{ID: serviceID}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to unassign service",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetAvailableSlots godoc
// @Summary List bookable slots for a professional on a given date
// @Description Read-only slot enumeration; availability is rechecked at booking time
// @Tags professionals
// @Produce json
// @Param id path string true "Professional ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Param service_id query string true "Service ID (its duration sets the slot grid)"
// @Success 200 {array} scheduler.Slot
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} scheduler.Error
// @Router /professionals/{id}/slots [get]
func GetAvailableSlots(c *fiber.Ctx) error {
	id := c.Params("id")

	var professional models.Professional
	if err := db.DB.First(&professional, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Professional not found",
		})
	}

	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date format, use YYYY-MM-DD",
		})
	}
	serviceID := c.Query("service_id")
	if serviceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "service_id is required",
		})
	}

	slots, err := engine.AvailableSlots(c.UserContext(), professional.CompanyID, professional.ID, date, serviceID)
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(fiber.Map{
		"professional_id": professional.ID,
		"date":            c.Query("date"),
		"service_id":      serviceID,
		"slots":           slots,
	})
}
