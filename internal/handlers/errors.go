package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/vinscent/internal/services"
)

// ErrorHandler converts errors escaping any handler into the uniform
// {"success": false, "error": ...} envelope. Store-level failures are
// reported with a generic message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	var notFound *services.NotFoundError
	var validation *services.ValidationError

	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
	case errors.As(err, &notFound):
		code = fiber.StatusNotFound
	case errors.As(err, &validation):
		code = fiber.StatusBadRequest
	case errors.Is(err, services.ErrNoFieldsToUpdate):
		code = fiber.StatusBadRequest
	case errors.Is(err, services.ErrBrandInUse):
		code = fiber.StatusConflict
	}

	message := err.Error()
	if code == fiber.StatusInternalServerError {
		message = "internal server error"
	}

	return c.Status(code).JSON(fiber.Map{"success": false, "error": message})
}

// parseID coerces the :id path parameter to an integer. Only
// non-numeric values are rejected here; ids that cannot match any row
// fall through to the service's not-found answer.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return clampID(id), nil
}

// clampID maps non-positive ids to 0, which no row ever carries.
func clampID(id int) uint {
	if id < 1 {
		return 0
	}
	return uint(id)
}
