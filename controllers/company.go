package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agendafacil/backend/db"
	"github.com/agendafacil/backend/models"
	"github.com/agendafacil/backend/utils"
)

// GetAllCompanies returns all companies
func GetAllCompanies(c *fiber.Ctx) error {
	var companies []models.Company
	if err := db.DB.Find(&companies).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch companies",
			Error:   err.Error(),
		})
	}
	return c.JSON(companies)
}

// GetCompany returns a company with its services and working hours
func GetCompany(c *fiber.Ctx) error {
	id := c.Params("id")
	var company models.Company
	if err := db.DB.Preload("Services").Preload("WorkingHours").First(&company, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Company not found",
		})
	}
	return c.JSON(company)
}

// GetCompanyProfessionals returns the professionals working at a company
func GetCompanyProfessionals(c *fiber.Ctx) error {
	id := c.Params("id")
	var company models.Company
	if err := db.DB.First(&company, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Company not found",
		})
	}

	var professionals []models.Professional
	if err := db.DB.Preload("Services").Where("company_id = ?", id).Find(&professionals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch professionals",
			Error:   err.Error(),
		})
	}
	return c.JSON(professionals)
}

// CreateCompany creates a new company
func CreateCompany(c *fiber.Ctx) error {
	company := new(models.Company)
	if err := c.BodyParser(company); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if company.Name == "" || company.TaxID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "name and tax_id are required",
		})
	}
	if err := db.DB.Create(company).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create company",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

// UpdateCompany updates a company's details
func UpdateCompany(c *fiber.Ctx) error {
	id := c.Params("id")
	var company models.Company
	if err := db.DB.First(&company, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Company not found",
		})
	}
	if err := c.BodyParser(&company); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	company.ID = id
	if err := db.DB.Save(&company).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update company",
			Error:   err.Error(),
		})
	}
	return c.JSON(company)
}

// DeleteCompany deletes a company
func DeleteCompany(c *fiber.Ctx) error {
	id := c.Params("id")
	var company models.Company
	if err := db.DB.First(&company, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Company not found",
		})
	}
	if err := db.DB.Delete(&company).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete company",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
