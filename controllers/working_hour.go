package controllers

import (
	"errors"
	"regexp"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/agendafacil/backend/db"
	"github.com/agendafacil/backend/models"
	"github.com/agendafacil/backend/utils"
)

// 24h wall clock, "HH:MM"
var clockFormat = regexp.MustCompile(`^([0-1]\d|2[0-3]):([0-5]\d)$`)

func validateWorkingHours(wh *models.WorkingHours) string {
	if wh.CompanyID == "" {
		return "company_id is required"
	}
	if wh.DayOfWeek < models.Sunday || wh.DayOfWeek > models.Saturday {
		return "day_of_week must be between 0 and 6"
	}
	if !clockFormat.MatchString(wh.OpenTime) || !clockFormat.MatchString(wh.CloseTime) {
		return "open_time and close_time must be HH:MM in 24h format"
	}
	// lexical comparison is correct for zero-padded HH:MM
	if wh.OpenTime >= wh.CloseTime {
		return "open_time must be before close_time"
	}
	return ""
}

// GetAllWorkingHours retrieves working hours, optionally for one company
func GetAllWorkingHours(c *fiber.Ctx) error {
	q := db.DB.Order("day_of_week asc")
	if companyID := c.Query("company_id"); companyID != "" {
		q = q.Where("company_id = ?", companyID)
	}

	var workingHours []models.WorkingHours
	if err := q.Find(&workingHours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to get working hours",
			Error:   err.Error(),
		})
	}
	return c.JSON(workingHours)
}

// GetWorkingHour retrieves a specific working hour by ID
func GetWorkingHour(c *fiber.Ctx) error {
	id := c.Params("id")
	var workingHour models.WorkingHours
	if err := db.DB.First(&workingHour, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Working hour not found",
		})
	}
	return c.JSON(workingHour)
}

// CreateWorkingHour creates a working-hours window for a weekday
func CreateWorkingHour(c *fiber.Ctx) error {
	workingHour := new(models.WorkingHours)
	if err := c.BodyParser(workingHour); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if msg := validateWorkingHours(workingHour); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: msg})
	}

	// one window per weekday, enforced by the unique index
	if err := db.DB.Create(workingHour).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Working hours already defined for this weekday",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create working hour",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(workingHour)
}

// UpdateWorkingHour updates an existing working hour
func UpdateWorkingHour(c *fiber.Ctx) error {
	id := c.Params("id")
	var workingHour models.WorkingHours
	if err := db.DB.First(&workingHour, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Working hour not found",
		})
	}
	if err := c.BodyParser(&workingHour); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	workingHour.ID = id
	if msg := validateWorkingHours(&workingHour); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: msg})
	}
	if err := db.DB.Save(&workingHour).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Working hours already defined for this weekday",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update working hour",
			Error:   err.Error(),
		})
	}
	return c.JSON(workingHour)
}

// DeleteWorkingHour deletes a working hour by ID
func DeleteWorkingHour(c *fiber.Ctx) error {
	id := c.Params("id")
	var workingHour models.WorkingHours
	if err := db.DB.First(&workingHour, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Working hour not found",
		})
	}
	if err := db.DB.Delete(&workingHour).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete working hour",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
