package handlers

import (
	"errors"
	"log"

	"candela/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the app-level Fiber error handler. Domain errors map to
// their taxonomy status with a stable code; anything else is logged and
// surfaced as a generic 500 without leaking internals.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			log.Printf("%s %s: %s: %v", c.Method(), c.Path(), appErr.Code, appErr.Err)
		}
		return c.Status(appErr.Status).JSON(fiber.Map{
			"code":    appErr.Code,
			"message": appErr.Message,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"code":    "error",
			"message": fiberErr.Message,
		})
	}

	log.Printf("%s %s: unexpected error: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"code":    apperrors.CodeInternal,
		"message": "internal server error",
	})
}

// validationError flattens validator.ValidationErrors into one message.
func validationMessage(err error) string {
	return "validation failed: " + err.Error()
}
