package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jumpingkids/internal/model"
	"jumpingkids/internal/service"
)

// ListKids returns the caller's active kid profiles.
//
// @Summary List kids
// @Tags Kids
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /user/kids [get]
func ListKids(svc service.KidService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		kids, err := svc.List(c.UserContext(), claims.UserID)
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, kids, fmt.Sprintf("Retrieved %d kids", len(kids)))
	}
}

// CreateKid registers a kid profile for the caller.
//
// @Summary Register a kid
// @Tags Kids
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /user/kids [post]
func CreateKid(svc service.KidService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		var in model.KidCreate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		kid, err := svc.Create(c.UserContext(), in, claims.UserID)
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusCreated, kid, "Kid created successfully")
	}
}

// GetKid returns one of the caller's kids.
//
// @Summary Get a kid
// @Tags Kids
// @Security BearerAuth
// @Produce json
// @Param id path string true "Kid ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /user/kids/{id} [get]
func GetKid(svc service.KidService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		kid, err := svc.Get(c.UserContext(), id, claims.UserID)
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, kid, "Kid retrieved successfully")
	}
}

// UpdateKid applies a partial update to one of the caller's kids.
//
// @Summary Update a kid
// @Tags Kids
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Kid ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /user/kids/{id} [put]
func UpdateKid(svc service.KidService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in model.KidUpdate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		kid, err := svc.Update(c.UserContext(), id, in, claims.UserID)
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, kid, "Kid updated successfully")
	}
}

// DeleteKid deactivates one of the caller's kids.
//
// @Summary Delete a kid
// @Tags Kids
// @Security BearerAuth
// @Produce json
// @Param id path string true "Kid ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /user/kids/{id} [delete]
func DeleteKid(svc service.KidService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := svc.Delete(c.UserContext(), id, claims.UserID); err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, fiber.Map{"id": id.String()}, "Kid deleted successfully")
	}
}

// KidStats returns a kid's aggregate stats with per-day activity for the
// requested period (week by default).
//
// @Summary Get kid statistics
// @Tags Kids
// @Security BearerAuth
// @Produce json
// @Param id path string true "Kid ID"
// @Param period query string false "Stats period (week, month or year)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /user/kids/{id}/stats [get]
func KidStats(svc service.KidService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		stats, err := svc.Stats(c.UserContext(), id, claims.UserID, c.Query("period"))
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, stats, "Kid stats retrieved successfully")
	}
}
