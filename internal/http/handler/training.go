package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jumpingkids/internal/model"
	"jumpingkids/internal/service"
)

// StartTrainingSession opens a live session for a kid and routine.
//
// @Summary Start a training session
// @Tags Training
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /training/sessions [post]
func StartTrainingSession(svc service.TrainingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		var in model.TrainingSessionCreate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		session, err := svc.Start(c.UserContext(), in, claims.UserID)
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusCreated, session, "Training session started successfully")
	}
}

// GetTrainingSession returns the current state of a session.
//
// @Summary Get a training session
// @Tags Training
// @Security BearerAuth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /training/sessions/{id} [get]
func GetTrainingSession(svc service.TrainingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		session, err := svc.Get(c.UserContext(), id, claims.UserID)
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, session, "Training session retrieved successfully")
	}
}

// CompleteSessionExercise records one finished exercise and advances the
// session, completing it when the last exercise is done.
//
// @Summary Complete the current session exercise
// @Tags Training
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /training/sessions/{id}/exercise/complete [put]
func CompleteSessionExercise(svc service.TrainingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in model.ExerciseCompletion
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		session, err := svc.CompleteExercise(c.UserContext(), id, in, claims.UserID)
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, session, "Exercise completed successfully")
	}
}

// CompleteTrainingSession closes a session with the reported summary and
// returns it together with the kid's updated stats.
//
// @Summary Complete a training session
// @Tags Training
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /training/sessions/{id}/complete [put]
func CompleteTrainingSession(svc service.TrainingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in model.SessionCompletion
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		result, err := svc.Complete(c.UserContext(), id, in, claims.UserID)
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, result, "Training session completed successfully")
	}
}

// AbandonTrainingSession marks an in-progress session as abandoned.
//
// @Summary Abandon a training session
// @Tags Training
// @Security BearerAuth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /training/sessions/{id}/abandon [put]
func AbandonTrainingSession(svc service.TrainingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		session, err := svc.Abandon(c.UserContext(), id, claims.UserID)
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, session, "Training session abandoned")
	}
}
