package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// InternalErrorMessage is the only detail clients see about a server fault.
const InternalErrorMessage = "Internal server error"

// ErrorHandler is the application's fiber.ErrorHandler. Framework errors keep
// their status code; anything else is a storage or programming fault, logged
// here and answered with a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		})
	}

	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.OriginalURL(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": InternalErrorMessage,
	})
}
