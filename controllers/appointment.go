package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agendafacil/backend/db"
	"github.com/agendafacil/backend/models"
	"github.com/agendafacil/backend/scheduler"
	"github.com/agendafacil/backend/utils"
)

// GetAllAppointments godoc
// @Summary List appointments
// @Description List appointments, optionally filtered by professional, status and a from/to day range
// @Tags appointments
// @Accept json
// @Produce json
// @Param professional_id query string false "Professional ID"
// @Param status query string false "Appointment status"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD), inclusive"
// @Success 200 {array} models.Appointment
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments [get]
func GetAllAppointments(c *fiber.Ctx) error {
	q := db.DB.Preload("Service").Preload("Professional")

	if professionalID := c.Query("professional_id"); professionalID != "" {
		q = q.Where("professional_id = ?", professionalID)
	}
	if status := c.Query("status"); status != "" {
		if !models.AppointmentStatus(status).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid status filter",
			})
		}
		q = q.Where("status = ?", status)
	}
	if from, to := c.Query("from"), c.Query("to"); from != "" && to != "" {
		fromDate, err := utils.ParseDate(from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid from date, use YYYY-MM-DD",
			})
		}
		toDate, err := utils.ParseDate(to)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid to date, use YYYY-MM-DD",
			})
		}
		rangeStart, _ := utils.DayRange(fromDate)
		_, rangeEnd := utils.DayRange(toDate) // "to" day is inclusive
		q = q.Where("start_time >= ? AND start_time < ?", rangeStart, rangeEnd)
	}

	var appointments []models.Appointment
	if err := q.Order("start_time desc").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAppointment godoc
// @Summary Get an appointment by ID
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/{id} [get]
func GetAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.Preload("Service").Preload("Professional").First(&appointment, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// GetAppointmentsByDate godoc
// @Summary List one day's appointments for a professional
// @Tags appointments
// @Produce json
// @Param professional_id query string true "Professional ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {array} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Router /appointments/by [get]
func GetAppointmentsByDate(c *fiber.Ctx) error {
	professionalID := c.Query("professional_id")
	if professionalID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "professional_id is required",
		})
	}
	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date format, use YYYY-MM-DD",
		})
	}
	dayStart, dayEnd := utils.DayRange(date)

	var appointments []models.Appointment
	err = db.DB.Preload("Service").
		Where("professional_id = ? AND start_time >= ? AND start_time < ?", professionalID, dayStart, dayEnd).
		Order("start_time desc").
		Find(&appointments).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// CreateAppointment godoc
// @Summary Book an appointment
// @Description Book an appointment through the conflict-checked scheduling engine
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body scheduler.CreateBookingInput true "Booking request"
// @Success 201 {object} models.Appointment
// @Failure 400 {object} scheduler.Error
// @Failure 404 {object} scheduler.Error
// @Failure 409 {object} scheduler.Error
// @Router /appointments [post]
func CreateAppointment(c *fiber.Ctx) error {
	var in scheduler.CreateBookingInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	appointment, err := engine.CreateBooking(c.UserContext(), in)
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// UpdateAppointment godoc
// @Summary Update an appointment
// @Description Reschedule or restate an appointment; time and service changes re-run the conflict check
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param appointment body scheduler.UpdateBookingInput true "Fields to update"
// @Success 200 {object} models.Appointment
// @Failure 404 {object} scheduler.Error
// @Failure 409 {object} scheduler.Error
// @Router /appointments/{id} [patch]
func UpdateAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var in scheduler.UpdateBookingInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	appointment, err := engine.UpdateBooking(c.UserContext(), id, in)
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(appointment)
}

// DeleteAppointment godoc
// @Summary Cancel an appointment
// @Description Appointments are canceled, never removed; a canceled appointment keeps blocking its range
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 404 {object} scheduler.Error
// @Router /appointments/{id} [delete]
func DeleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	canceled := models.StatusCanceled
	appointment, err := engine.UpdateBooking(c.UserContext(), id, scheduler.UpdateBookingInput{Status: &canceled})
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(appointment)
}
