package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jumpingkids/internal/model"
	"jumpingkids/internal/service"
)

// assignmentFilterFromQuery builds the assignment filter from query
// parameters. The query keys match the original client contract.
func assignmentFilterFromQuery(c *fiber.Ctx) (model.AssignmentFilter, error) {
	var f model.AssignmentFilter

	if v := c.Query("kid_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return f, writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid kid_id format")
		}
		f.KidID = &id
	}
	if v := c.Query("date_filter"); v != "" {
		day, err := model.ParseDate(v)
		if err != nil {
			return f, writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", "date_filter must be YYYY-MM-DD")
		}
		f.Date = &day
	}
	if v := c.Query("assignment_status"); v != "" {
		status := model.AssignmentStatus(v)
		if !status.Valid() {
			return f, writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", "unknown assignment status")
		}
		f.Status = &status
	}

	return f, nil
}

// ListAssignments returns a page of assignments across the caller's kids.
//
// @Summary List assignments
// @Tags Assignments
// @Security BearerAuth
// @Produce json
// @Param kid_id query string false "Filter by kid ID"
// @Param date_filter query string false "Filter by date (YYYY-MM-DD)"
// @Param assignment_status query string false "Filter by status"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /assignments [get]
func ListAssignments(svc service.AssignmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		f, err := assignmentFilterFromQuery(c)
		if err != nil {
			return err
		}
		limit, offset, err := pageFromQuery(c)
		if err != nil {
			return err
		}

		res, err := svc.List(c.UserContext(), claims.UserID, f, limit, offset)
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, res.Items, fmt.Sprintf("Retrieved %d assignments", len(res.Items)))
	}
}

// CreateAssignment schedules a routine for a kid.
//
// @Summary Create an assignment
// @Tags Assignments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /assignments [post]
func CreateAssignment(svc service.AssignmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		var in model.AssignmentCreate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		a, err := svc.Create(c.UserContext(), in, claims.UserID)
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusCreated, a, "Assignment created successfully")
	}
}

// AssignmentsToday returns today's assignments across the caller's kids,
// optionally narrowed to one kid.
//
// @Summary List today's assignments
// @Tags Assignments
// @Security BearerAuth
// @Produce json
// @Param kid_id query string false "Narrow to one kid"
// @Success 200 {object} map[string]interface{}
// @Router /assignments/today [get]
func AssignmentsToday(svc service.AssignmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		var kidID *uuid.UUID
		if v := c.Query("kid_id"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid kid_id format")
			}
			kidID = &id
		}

		items, err := svc.ListToday(c.UserContext(), claims.UserID)
		if err != nil {
			return respondServiceError(c, err)
		}

		if kidID != nil {
			filtered := items[:0]
			for _, a := range items {
				if a.KidID == *kidID {
					filtered = append(filtered, a)
				}
			}
			items = filtered
		}

		return respond(c, fiber.StatusOK, items, fmt.Sprintf("Retrieved %d assignments for today", len(items)))
	}
}

// KidAssignmentToday returns today's assignment for one kid, or a null
// payload when nothing is scheduled.
//
// @Summary Get a kid's assignment for today
// @Tags Assignments
// @Security BearerAuth
// @Produce json
// @Param kid_id path string true "Kid ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /assignments/kids/{kid_id}/today [get]
func KidAssignmentToday(svc service.AssignmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		kidID, err := uuid.Parse(c.Params("kid_id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		a, err := svc.KidToday(c.UserContext(), kidID, claims.UserID)
		if err != nil {
			return respondServiceError(c, err)
		}
		if a == nil {
			return respond(c, fiber.StatusOK, nil, "No assignment found for today")
		}

		return respond(c, fiber.StatusOK, a, "Today's assignment retrieved successfully")
	}
}

// CompleteAssignment marks an assignment completed with the reported details.
//
// @Summary Complete an assignment
// @Tags Assignments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /assignments/{id}/complete [put]
func CompleteAssignment(svc service.AssignmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromCtx(c)
		if err != nil {
			return err
		}

		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in model.AssignmentComplete
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		a, err := svc.Complete(c.UserContext(), id, in, claims.UserID)
		if err != nil {
			return respondServiceError(c, err)
		}

		return respond(c, fiber.StatusOK, a, "Assignment completed successfully")
	}
}
