package handlers

import (
	"errors"
	"log/slog"

	"task-manager/middleware"
	"task-manager/services"
	"task-manager/validator"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed: " + validationErrs.Error(),
			"details": validationErrs,
		})
	}
	return badRequest(c, err.Error())
}

// failure converts an error from the service layer into its string form.
// Request-shape errors are the caller's fault, everything else is a storage failure.
func failure(c *fiber.Ctx, message string, err error) error {
	if errors.Is(err, services.ErrInvalidRequest) {
		return badRequest(c, err.Error())
	}
	return serverErrorWithDetails(c, message, err)
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	slog.Error("server error",
		"request_id", middleware.GetRequestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
