package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"jumpingkids/internal/http/middleware"
	"jumpingkids/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	Success   bool          `json:"success"`
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "CONFLICT")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		Success:   false,
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// respondServiceError maps service errors onto the error envelope. Handlers
// call it after handling their route-specific cases; anything unrecognized
// becomes an opaque internal error.
func respondServiceError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", verrs.Error())
	}

	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrKidNotFound),
		errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrRoutineNotFound),
		errors.Is(err, service.ErrAssignmentNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrMediaNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())

	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrAlreadyAssigned),
		errors.Is(err, service.ErrSessionActive),
		errors.Is(err, service.ErrSessionNotActive):
		return writeError(c, fiber.StatusConflict, "CONFLICT", err.Error())

	case errors.Is(err, service.ErrInvalidCredentials):
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Credenciales inválidas")

	case errors.Is(err, service.ErrInvalidPeriod),
		errors.Is(err, service.ErrSlotOrderTaken),
		errors.Is(err, service.ErrUsernameRequired),
		errors.Is(err, service.ErrMediaKindInvalid),
		errors.Is(err, service.ErrMediaURLInvalid),
		errors.Is(err, service.ErrMediaContentType):
		return writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())

	case errors.Is(err, service.ErrMediaTooLarge):
		return writeError(c, fiber.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", err.Error())

	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses for errors escaping the handlers, the auth middleware included.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := ""
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
			message = e.Message
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			if message == "" {
				message = "authentication required"
			}
			return writeError(c, status, "UNAUTHORIZED", message)
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
