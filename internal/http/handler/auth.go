package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"jumpingkids/internal/model"
	"jumpingkids/internal/service"
)

// Signup registers a new account and signs it in.
//
// @Summary Register an account
// @Tags Auth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /auth/signup [post]
func Signup(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.UserCreate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		user, token, err := svc.Signup(c.UserContext(), in)
		if err != nil {
			if errors.Is(err, service.ErrUsernameTaken) {
				return writeError(c, fiber.StatusConflict, "CONFLICT", "El email ya está registrado")
			}
			return respondServiceError(c, err)
		}

		return c.Status(fiber.StatusCreated).JSON(model.AuthResponse{
			Success:     true,
			Message:     "Usuario registrado exitosamente",
			Data:        user,
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

// Signin authenticates an account and issues a fresh token.
//
// @Summary Sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/signin [post]
func Signin(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var creds model.Credentials
		if err := c.BodyParser(&creds); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		user, token, err := svc.Signin(c.UserContext(), creds)
		if err != nil {
			return respondServiceError(c, err)
		}

		return c.JSON(model.AuthResponse{
			Success:     true,
			Message:     "Inicio de sesión exitoso",
			Data:        user,
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

// Signout acknowledges the sign out. Tokens are stateless, so the client
// simply drops its copy.
//
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/signout [post]
func Signout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return respond(c, fiber.StatusOK, nil, "Sesión cerrada exitosamente")
	}
}

// CheckEmail reports whether a sign-in email is already registered.
//
// @Summary Check email availability
// @Tags Auth
// @Produce json
// @Param email query string true "Email to check"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /auth/check-email [get]
func CheckEmail(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Query("email")
		if email == "" {
			return writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", "email query parameter is required")
		}

		exists, err := svc.UsernameExists(c.UserContext(), email)
		if err != nil {
			return respondServiceError(c, err)
		}

		message := "Email disponible"
		if exists {
			message = "Email ya registrado"
		}

		return c.JSON(model.CheckEmailResponse{
			Success: true,
			Exists:  exists,
			Message: message,
		})
	}
}

// Me returns the authenticated account.
//
// @Summary Current account
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/me [get]
func Me(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		user, err := svc.Get(c.UserContext(), claims.UserID)
		if err != nil {
			return respondServiceError(c, err)
		}

		return c.JSON(model.AuthResponse{
			Success: true,
			Message: "Usuario obtenido exitosamente",
			Data:    user,
		})
	}
}
