package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agendafacil/backend/scheduler"
)

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// EngineError maps a scheduling engine error to its HTTP response. CONFLICT
// and OUT_OF_HOURS are expected booking outcomes, not server failures.
func EngineError(c *fiber.Ctx, err error) error {
	e := scheduler.AsError(err)
	if e == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Unexpected error",
			Error:   err.Error(),
		})
	}

	status := fiber.StatusInternalServerError
	switch e.Kind {
	case scheduler.KindValidation:
		status = fiber.StatusBadRequest
	case scheduler.KindNotFound:
		status = fiber.StatusNotFound
	case scheduler.KindOutOfHours, scheduler.KindConflict:
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(e)
}
