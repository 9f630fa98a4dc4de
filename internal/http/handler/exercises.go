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

// exerciseFilterFromQuery builds the catalog filter from query parameters,
// rejecting unknown enum values the way body validation would.
func exerciseFilterFromQuery(c *fiber.Ctx) (model.ExerciseFilter, error) {
	f := model.ExerciseFilter{Search: c.Query("search")}

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
	if v := c.Query("age_group"); v != "" {
		a := model.AgeGroup(v)
		if !a.Valid() {
			return f, writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", "unknown age group")
		}
		f.AgeGroup = &a
	}

	return f, nil
}

// pageFromQuery reads limit and offset, writing a 400 on garbage values.
func pageFromQuery(c *fiber.Ctx) (limit, offset int, err error) {
	limit, err = strconv.Atoi(c.Query("limit", "50"))
	if err != nil {
		return 0, 0, writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
	}
	offset, err = strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		return 0, 0, writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
	}
	return limit, offset, nil
}

// ListExercises returns a page of the catalog visible to the caller.
//
// @Summary List exercises
// @Tags Exercises
// @Security BearerAuth
// @Produce json
// @Param category query string false "Filter by category"
// @Param difficulty query string false "Filter by difficulty"
// @Param age_group query string false "Filter by age group"
// @Param search query string false "Search in name and description"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /exercises [get]
func ListExercises(svc service.ExerciseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		f, err := exerciseFilterFromQuery(c)
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

		return respond(c, fiber.StatusOK, res.Items, fmt.Sprintf("Retrieved %d exercises", len(res.Items)))
	}
}

// CreateExercise adds a custom exercise owned by the caller.
//
// @Summary Create a custom exercise
// @Tags Exercises
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /exercises [post]
func CreateExercise(svc service.ExerciseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		var in model.ExerciseCreate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		ex, err := svc.Create(c.UserContext(), in, claims.UserID)
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusCreated, ex, "Exercise created successfully")
	}
}

// GetExercise returns one visible exercise.
//
// @Summary Get an exercise
// @Tags Exercises
// @Security BearerAuth
// @Produce json
// @Param id path string true "Exercise ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /exercises/{id} [get]
func GetExercise(svc service.ExerciseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		ex, err := svc.Get(c.UserContext(), id, claims.UserID)
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, ex, "Exercise retrieved successfully")
	}
}

// UpdateExercise applies a partial update to an exercise the caller owns.
//
// @Summary Update an exercise
// @Tags Exercises
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Exercise ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /exercises/{id} [put]
func UpdateExercise(svc service.ExerciseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in model.ExerciseUpdate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		ex, err := svc.Update(c.UserContext(), id, in, claims.UserID)
		if err != nil {
			if errors.Is(err, service.ErrExerciseNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "exercise not found or not owned")
			}
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, ex, "Exercise updated successfully")
	}
}

// DeleteExercise deactivates an exercise the caller owns.
//
// @Summary Delete an exercise
// @Tags Exercises
// @Security BearerAuth
// @Produce json
// @Param id path string true "Exercise ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /exercises/{id} [delete]
func DeleteExercise(svc service.ExerciseService) fiber.Handler {
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
			if errors.Is(err, service.ErrExerciseNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "exercise not found or not owned")
			}
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, fiber.Map{"id": id.String()}, "Exercise deleted successfully")
	}
}

// ExerciseCategories lists the catalog categories.
//
// @Summary List exercise categories
// @Tags Exercises
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /exercises/categories [get]
func ExerciseCategories(svc service.ExerciseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return respond(c, fiber.StatusOK, svc.Categories(), "Categories retrieved successfully")
	}
}

// ExerciseAgeGroups lists the supported age brackets.
//
// @Summary List exercise age groups
// @Tags Exercises
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /exercises/age-groups [get]
func ExerciseAgeGroups(svc service.ExerciseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return respond(c, fiber.StatusOK, svc.AgeGroups(), "Age groups retrieved successfully")
	}
}
