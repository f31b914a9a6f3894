package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fuel-route-service/internal/pkg/errors"
)

// ErrorResponse is the error body shape: a human-readable message plus the
// machine code from the AppError taxonomy.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// SendJSON writes a success payload as-is. Trip responses are flat by
// contract, so there is no data envelope here.
func SendJSON(c *fiber.Ctx, payload interface{}) error {
	return c.JSON(payload)
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		})
	}

	// Unknown error - return 500
	return c.Status(500).JSON(ErrorResponse{
		Error: errors.ErrInternalServer.Message,
		Code:  errors.ErrInternalServer.Code,
	})
}
