package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/pawfecthome/backend/internal/apperror"
)

// writeError translates a service error into the one JSON error shape the
// API uses. Unexpected errors are logged and returned as a generic 500 so a
// single bad request can never take the process down or leak internals.
func writeError(c *fiber.Ctx, err error) error {
	var status int
	switch {
	case errors.Is(err, apperror.ErrValidation),
		errors.Is(err, apperror.ErrConflict),
		errors.Is(err, apperror.ErrUnsupported):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperror.ErrAuth):
		status = fiber.StatusUnauthorized
	case errors.Is(err, apperror.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, apperror.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, apperror.ErrTooLarge):
		status = fiber.StatusRequestEntityTooLarge
	default:
		log.Printf("unexpected error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// validationError converts the first field failure from validator into the
// app taxonomy.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		field := fe.Field()
		if fe.Tag() == "email" {
			return apperror.ValidationFailed(field, "invalid email address")
		}
		return apperror.ValidationFailed(field, "please provide all fields")
	}
	return apperror.ValidationFailed("body", "invalid request body")
}
