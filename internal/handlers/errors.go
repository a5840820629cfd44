package handlers

import (
	"errors"
	"log"

	"peninsula/internal/services"

	"github.com/gofiber/fiber/v2"
)

// writeError converts a service error into a {message} response. Validation
// errors carry their own message, not-found errors use notFoundMessage and
// everything else is logged and answered with failureMessage only.
func writeError(c *fiber.Ctx, err error, notFoundMessage, failureMessage string) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": validationErr.Message,
		})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFoundMessage,
		})
	default:
		log.Printf("%s: %v", failureMessage, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": failureMessage,
		})
	}
}

// invalidBody answers a request whose body could not be parsed.
func invalidBody(c *fiber.Ctx, err error) error {
	log.Printf("Error parsing request body: %v", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
	})
}

// ErrorHandler renders errors that escape a handler, such as unknown routes, as {message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}
