package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jumpingkids/internal/model"
	"jumpingkids/internal/service"
)

// routineFilterFromQuery builds the routine filter from query parameters.
func routineFilterFromQuery(c *fiber.Ctx) (model.RoutineFilter, error) {
	f := model.RoutineFilter{Search: c.Query("search")}

	if v := c.Query("category"); v != "" {
		cat := model.ExerciseCategory(v)
		if !cat.Valid() {
			return f, writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", "unknown category")
		}
		f.Category = &cat
	}
	if v := c.Query("difficulty"); v != "" {
		d := model.DifficultyLevel(v)
		if !d.Valid() {
			return f, writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", "unknown difficulty")
		}
		f.Difficulty = &d
	}
	if v := c.Query("duration_max"); v != "" {
		max, err := strconv.Atoi(v)
		if err != nil || max < 1 {
			return f, writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", "duration_max must be a positive integer")
		}
		f.DurationMax = &max
	}

	return f, nil
}

// ListRoutines returns a page of routines visible to the caller.
//
// @Summary List routines
// @Tags Routines
// @Security BearerAuth
// @Produce json
// @Param difficulty query string false "Filter by difficulty"
// @Param duration_max query int false "Maximum total duration in minutes"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /routines [get]
func ListRoutines(svc service.RoutineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		f, err := routineFilterFromQuery(c)
		if err != nil {
			return err
		}
		limit, offset, err := pageFromQuery(c)
		if err != nil {
			return err
		}

		res, err := svc.List(c.UserContext(), f, claims.UserID, limit, offset)
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, res.Items, fmt.Sprintf("Retrieved %d routines", len(res.Items)))
	}
}

// CreateRoutine adds a custom routine owned by the caller.
//
// @Summary Create a custom routine
// @Tags Routines
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /routines [post]
func CreateRoutine(svc service.RoutineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		var in model.RoutineCreate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		routine, err := svc.Create(c.UserContext(), in, claims.UserID)
		if err != nil {
			// A slot naming an exercise the caller cannot see is a payload
			// problem, not a missing route resource.
			if errors.Is(err, service.ErrExerciseNotFound) {
				return writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", "routine references an unknown exercise")
			}
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusCreated, routine, "Routine created successfully")
	}
}

// GetRoutine returns one visible routine with its exercises.
//
// @Summary Get a routine
// @Tags Routines
// @Security BearerAuth
// @Produce json
// @Param id path string true "Routine ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /routines/{id} [get]
func GetRoutine(svc service.RoutineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		routine, err := svc.Get(c.UserContext(), id, claims.UserID)
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, routine, "Routine retrieved successfully")
	}
}

// UpdateRoutine applies a partial update to a routine the caller owns.
//
// @Summary Update a routine
// @Tags Routines
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Routine ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /routines/{id} [put]
func UpdateRoutine(svc service.RoutineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in model.RoutineUpdate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		routine, err := svc.Update(c.UserContext(), id, in, claims.UserID)
		if err != nil {
			if errors.Is(err, service.ErrRoutineNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "routine not found or not owned")
			}
			if errors.Is(err, service.ErrExerciseNotFound) {
				return writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", "routine references an unknown exercise")
			}
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, routine, "Routine updated successfully")
	}
}

// DeleteRoutine deactivates a routine the caller owns.
//
// @Summary Delete a routine
// @Tags Routines
// @Security BearerAuth
// @Produce json
// @Param id path string true "Routine ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /routines/{id} [delete]
func DeleteRoutine(svc service.RoutineService) fiber.Handler {
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
			if errors.Is(err, service.ErrRoutineNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "routine not found or not owned")
			}
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, fiber.Map{"id": id.String()}, "Routine deleted successfully")
	}
}
