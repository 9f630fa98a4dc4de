package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	appName        = "JumpingKid Backend API"
	appVersion     = "0.1.0"
	appDescription = "API backend para la aplicación JumpingKid"
)

// Root greets callers so a plain GET / confirms the server is up.
//
// @Summary Server greeting
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "¡Hola! El servidor de JumpingKid está funcionando correctamente",
		})
	}
}

// HealthCheck reports healthy only when the database answers a ping.
//
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe answers 200 as long as the process serves requests.
//
// @Summary Liveness probe
// @Tags System
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// Info describes the API.
//
// @Summary API info
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /info [get]
func Info() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":        appName,
			"version":     appVersion,
			"description": appDescription,
		})
	}
}
