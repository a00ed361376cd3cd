package presenters

import (
	"errors"

	"Pantry-Share-Backend/domain"

	"github.com/gofiber/fiber/v2"
)

func SuccessResponse(c *fiber.Ctx, data interface{}, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"error":   err.Error(),
	})
}

// StatusCode maps domain sentinels onto HTTP statuses; anything
// unrecognized is treated as bad input.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrProductCardNotFound),
		errors.Is(err, domain.ErrContainerNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrImageNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUserAlreadyExists),
		errors.Is(err, domain.ErrShareWithSelf),
		errors.Is(err, domain.ErrContainerAlreadyShared):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}
