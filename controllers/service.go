package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agendafacil/backend/db"
	"github.com/agendafacil/backend/models"
	"github.com/agendafacil/backend/utils"
)

// GetAllServices returns all services, optionally for one company
func GetAllServices(c *fiber.Ctx) error {
	q := db.DB
	if companyID := c.Query("company_id"); companyID != "" {
		q = q.Where("company_id = ?", companyID)
	}

	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}
	return c.JSON(service)
}

func validateService(service *models.Service) string {
	if service.Name == "" {
		return "name is required"
	}
	if service.Duration <= 0 {
		return "duration must be greater than zero"
	}
	if service.Price < 0 {
		return "price must not be negative"
	}
	return ""
}

// CreateService creates a new service
func CreateService(c *fiber.Ctx) error {
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if msg := validateService(service); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: msg})
	}
	var company models.Company
	if err := db.DB.First(&company, "id = ?", service.CompanyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Company not found",
		})
	}
	if err := db.DB.Create(service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create service",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService updates a service. Duration changes only affect future
// bookings; existing appointments keep their recorded end times.
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}
	if err := c.BodyParser(&service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	service.ID = id
	if msg := validateService(&service); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: msg})
	}
	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update service",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

// DeleteService deletes a service
func DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}
	if err := db.DB.Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete service",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
