package handler

import (
	"github.com/gofiber/fiber/v2"

	"jumpingkids/internal/auth"
	"jumpingkids/internal/http/middleware"
	"jumpingkids/internal/model"
)

// respond writes the standardized JSON success envelope.
func respond(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(model.OK(data, message))
}

// claimsFromCtx returns the authenticated claims. Routes reached without
// passing middleware.RequireAuth get a 401 through the error handler.
func claimsFromCtx(c *fiber.Ctx) (*auth.Claims, error) {
	claims := middleware.ClaimsFromCtx(c)
	if claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}
