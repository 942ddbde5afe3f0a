package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain"
)

// SuccessResponse involucro standard delle risposte: il frontend discrimina su
// success, non sullo status HTTP.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// ErrorResponse involucro standard degli errori.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(SuccessResponse{Success: true, Data: data})
}

func fail(c *fiber.Ctx, err error) error {
	status, code := errorStatus(err)
	return c.Status(status).JSON(ErrorResponse{Success: false, Code: code, Message: err.Error()})
}

func failBadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Success: false, Code: "BAD_REQUEST", Message: message,
	})
}

// errorStatus mappa gli errori sentinella di dominio sugli status HTTP.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidChannel),
		errors.Is(err, domain.ErrInvalidPeriod):
		return fiber.StatusBadRequest, "BAD_REQUEST"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}
