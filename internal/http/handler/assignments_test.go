package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"jumpingkids/internal/model"
	"jumpingkids/internal/service"
	serviceMocks "jumpingkids/internal/service/mocks"
)

func TestListAssignments(t *testing.T) {
	mockSvc := new(serviceMocks.MockAssignmentService)
	app := fiber.New()
	app.Get("/assignments", asUser(testUserID), ListAssignments(mockSvc))

	t.Run("with filters", func(t *testing.T) {
		kidID := uuid.New()
		res := &service.AssignmentListResult{
			Items: []model.Assignment{{ID: uuid.New(), KidID: kidID, Status: model.AssignmentPending}},
			Total: 1,
		}
		mockSvc.On("List", mock.Anything, testUserID, mock.MatchedBy(func(f model.AssignmentFilter) bool {
			return f.KidID != nil && *f.KidID == kidID &&
				f.Status != nil && *f.Status == model.AssignmentPending &&
				f.Date != nil && f.Date.String() == "2025-06-02"
		}), 50, 0).Return(res, nil).Once()

		target := "/assignments?kid_id=" + kidID.String() + "&date_filter=2025-06-02&assignment_status=pending"
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeSuccess(t, resp)
		assert.Equal(t, "Retrieved 1 assignments", body.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("bad kid_id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/assignments?kid_id=abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "INVALID_ID", body.Error.Code)
		assert.Equal(t, "invalid kid_id format", body.Error.Message)
	})

	t.Run("bad date_filter", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/assignments?date_filter=02-06-2025", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "date_filter must be YYYY-MM-DD", body.Error.Message)
	})

	t.Run("bad status", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/assignments?assignment_status=paused", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "unknown assignment status", body.Error.Message)
	})
}

func TestCreateAssignment(t *testing.T) {
	mockSvc := new(serviceMocks.MockAssignmentService)
	app := fiber.New()
	app.Post("/assignments", asUser(testUserID), CreateAssignment(mockSvc))

	routineID, kidID := uuid.New(), uuid.New()
	in := model.AssignmentCreate{
		RoutineID:    routineID,
		KidID:        kidID,
		AssignedDate: model.NewDate(2025, 6, 2),
	}

	t.Run("success", func(t *testing.T) {
		created := &model.Assignment{ID: uuid.New(), RoutineID: routineID, KidID: kidID, Status: model.AssignmentPending}
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(got model.AssignmentCreate) bool {
			return got.RoutineID == routineID && got.AssignedDate.String() == "2025-06-02"
		}), testUserID).Return(created, nil).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/assignments", in))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeSuccess(t, resp)
		assert.Equal(t, "Assignment created successfully", body.Message)

		var got model.Assignment
		json.Unmarshal(body.Data, &got)
		assert.Equal(t, model.AssignmentPending, got.Status)
		mockSvc.AssertExpectations(t)
	})

	t.Run("already assigned", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything, testUserID).
			Return(nil, service.ErrAlreadyAssigned).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/assignments", in))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "CONFLICT", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("kid not owned", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything, testUserID).
			Return(nil, service.ErrKidNotFound).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/assignments", in))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestAssignmentsToday(t *testing.T) {
	mockSvc := new(serviceMocks.MockAssignmentService)
	app := fiber.New()
	app.Get("/assignments/today", asUser(testUserID), AssignmentsToday(mockSvc))

	kidA, kidB := uuid.New(), uuid.New()
	today := []model.Assignment{
		{ID: uuid.New(), KidID: kidA, Status: model.AssignmentPending},
		{ID: uuid.New(), KidID: kidB, Status: model.AssignmentCompleted},
	}

	t.Run("all kids", func(t *testing.T) {
		mockSvc.On("ListToday", mock.Anything, testUserID).Return(today, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/assignments/today", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeSuccess(t, resp)
		assert.Equal(t, "Retrieved 2 assignments for today", body.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("narrowed to one kid", func(t *testing.T) {
		fresh := []model.Assignment{
			{ID: today[0].ID, KidID: kidA, Status: model.AssignmentPending},
			{ID: today[1].ID, KidID: kidB, Status: model.AssignmentCompleted},
		}
		mockSvc.On("ListToday", mock.Anything, testUserID).Return(fresh, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/assignments/today?kid_id="+kidB.String(), nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeSuccess(t, resp)
		assert.Equal(t, "Retrieved 1 assignments for today", body.Message)

		var got []model.Assignment
		json.Unmarshal(body.Data, &got)
		assert.Len(t, got, 1)
		assert.Equal(t, kidB, got[0].KidID)
		mockSvc.AssertExpectations(t)
	})
}

func TestKidAssignmentToday(t *testing.T) {
	mockSvc := new(serviceMocks.MockAssignmentService)
	app := fiber.New()
	app.Get("/assignments/kids/:kid_id/today", asUser(testUserID), KidAssignmentToday(mockSvc))

	t.Run("scheduled", func(t *testing.T) {
		kidID := uuid.New()
		a := &model.Assignment{ID: uuid.New(), KidID: kidID, Status: model.AssignmentPending}
		mockSvc.On("KidToday", mock.Anything, kidID, testUserID).Return(a, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/assignments/kids/"+kidID.String()+"/today", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeSuccess(t, resp)
		assert.Equal(t, "Today's assignment retrieved successfully", body.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("nothing scheduled", func(t *testing.T) {
		kidID := uuid.New()
		mockSvc.On("KidToday", mock.Anything, kidID, testUserID).Return(nil, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/assignments/kids/"+kidID.String()+"/today", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeSuccess(t, resp)
		assert.Equal(t, "No assignment found for today", body.Message)
		assert.Equal(t, "null", string(body.Data))
		mockSvc.AssertExpectations(t)
	})

	t.Run("kid not owned", func(t *testing.T) {
		kidID := uuid.New()
		mockSvc.On("KidToday", mock.Anything, kidID, testUserID).
			Return(nil, service.ErrKidNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/assignments/kids/"+kidID.String()+"/today", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestCompleteAssignment(t *testing.T) {
	mockSvc := new(serviceMocks.MockAssignmentService)
	app := fiber.New()
	app.Put("/assignments/:id/complete", asUser(testUserID), CompleteAssignment(mockSvc))

	id := uuid.New()
	notes := "Muy bien hecho"
	in := model.AssignmentComplete{CompletionTimeMinutes: 18, ExercisesCompleted: 5, Notes: &notes}

	completed := &model.Assignment{ID: id, Status: model.AssignmentCompleted}
	mockSvc.On("Complete", mock.Anything, id, mock.MatchedBy(func(got model.AssignmentComplete) bool {
		return got.CompletionTimeMinutes == 18 && got.ExercisesCompleted == 5
	}), testUserID).Return(completed, nil).Once()

	resp, _ := app.Test(jsonRequest(t, http.MethodPut, "/assignments/"+id.String()+"/complete", in))

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeSuccess(t, resp)
	assert.Equal(t, "Assignment completed successfully", body.Message)

	var got model.Assignment
	json.Unmarshal(body.Data, &got)
	assert.Equal(t, model.AssignmentCompleted, got.Status)
	mockSvc.AssertExpectations(t)
}
