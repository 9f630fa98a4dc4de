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

func TestListRoutines(t *testing.T) {
	mockSvc := new(serviceMocks.MockRoutineService)
	app := fiber.New()
	app.Get("/routines", asUser(testUserID), ListRoutines(mockSvc))

	t.Run("with filters", func(t *testing.T) {
		res := &service.RoutineListResult{
			Items: []model.Routine{{ID: uuid.New(), Name: "Mañana activa", DurationMinutes: 15}},
			Total: 1,
		}
		mockSvc.On("List", mock.Anything, mock.MatchedBy(func(f model.RoutineFilter) bool {
			return f.DurationMax != nil && *f.DurationMax == 20 &&
				f.Difficulty != nil && *f.Difficulty == model.DifficultyIntermediate
		}), testUserID, 50, 0).Return(res, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet,
			"/routines?difficulty=Intermedio&duration_max=20", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeSuccess(t, resp)
		assert.Equal(t, "Retrieved 1 routines", body.Message)

		var got []model.Routine
		json.Unmarshal(body.Data, &got)
		assert.Len(t, got, 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("negative duration_max", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/routines?duration_max=-5", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		assert.Equal(t, "duration_max must be a positive integer", body.Error.Message)
	})

	t.Run("unknown difficulty", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/routines?difficulty=Experto", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "unknown difficulty", body.Error.Message)
	})
}

func TestCreateRoutine(t *testing.T) {
	mockSvc := new(serviceMocks.MockRoutineService)
	app := fiber.New()
	app.Post("/routines", asUser(testUserID), CreateRoutine(mockSvc))

	exerciseID := uuid.New()
	in := model.RoutineCreate{
		Name:            "Rutina de cardio",
		Category:        model.CategoryCardio,
		Difficulty:      model.DifficultyBeginner,
		DurationMinutes: 15,
		AgeGroup:        model.AgeGroupChild,
		Exercises: []model.RoutineExerciseInput{
			{ExerciseID: exerciseID, Order: 1},
		},
	}

	t.Run("success", func(t *testing.T) {
		created := &model.Routine{ID: uuid.New(), Name: in.Name, IsCustom: true}
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(got model.RoutineCreate) bool {
			return got.Name == in.Name && len(got.Exercises) == 1 && got.Exercises[0].ExerciseID == exerciseID
		}), testUserID).Return(created, nil).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/routines", in))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeSuccess(t, resp)
		assert.Equal(t, "Routine created successfully", body.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown exercise", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything, testUserID).
			Return(nil, service.ErrExerciseNotFound).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/routines", in))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		assert.Equal(t, "routine references an unknown exercise", body.Error.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("duplicate slot order", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything, testUserID).
			Return(nil, service.ErrSlotOrderTaken).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/routines", in))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetRoutine(t *testing.T) {
	mockSvc := new(serviceMocks.MockRoutineService)
	app := fiber.New()
	app.Get("/routines/:id", asUser(testUserID), GetRoutine(mockSvc))

	t.Run("success with exercises", func(t *testing.T) {
		id := uuid.New()
		routine := &model.Routine{
			ID:   id,
			Name: "Mañana activa",
			Exercises: []model.RoutineExercise{
				{ExerciseID: uuid.New(), Order: 1, RestSeconds: 10},
				{ExerciseID: uuid.New(), Order: 2, RestSeconds: 15},
			},
		}
		mockSvc.On("Get", mock.Anything, id, testUserID).Return(routine, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/routines/"+id.String(), nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeSuccess(t, resp)
		assert.Equal(t, "Routine retrieved successfully", body.Message)

		var got model.Routine
		json.Unmarshal(body.Data, &got)
		assert.Len(t, got.Exercises, 2)
		assert.Equal(t, 2, got.Exercises[1].Order)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockSvc.On("Get", mock.Anything, id, testUserID).
			Return(nil, service.ErrRoutineNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/routines/"+id.String(), nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdateRoutine(t *testing.T) {
	mockSvc := new(serviceMocks.MockRoutineService)
	app := fiber.New()
	app.Put("/routines/:id", asUser(testUserID), UpdateRoutine(mockSvc))

	t.Run("not owned", func(t *testing.T) {
		id := uuid.New()
		mockSvc.On("Update", mock.Anything, id, mock.Anything, testUserID).
			Return(nil, service.ErrRoutineNotFound).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPut, "/routines/"+id.String(), model.RoutineUpdate{}))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "routine not found or not owned", body.Error.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("slot list replaced", func(t *testing.T) {
		id := uuid.New()
		slot := model.RoutineExerciseInput{ExerciseID: uuid.New(), Order: 1}
		updated := &model.Routine{ID: id, Name: "Mañana activa"}
		mockSvc.On("Update", mock.Anything, id, mock.MatchedBy(func(in model.RoutineUpdate) bool {
			return len(in.Exercises) == 1 && in.Exercises[0].ExerciseID == slot.ExerciseID
		}), testUserID).Return(updated, nil).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPut, "/routines/"+id.String(),
			model.RoutineUpdate{Exercises: []model.RoutineExerciseInput{slot}}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeSuccess(t, resp)
		assert.Equal(t, "Routine updated successfully", body.Message)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteRoutine(t *testing.T) {
	mockSvc := new(serviceMocks.MockRoutineService)
	app := fiber.New()
	app.Delete("/routines/:id", asUser(testUserID), DeleteRoutine(mockSvc))

	id := uuid.New()
	mockSvc.On("Delete", mock.Anything, id, testUserID).Return(nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/routines/"+id.String(), nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeSuccess(t, resp)
	assert.Equal(t, "Routine deleted successfully", body.Message)

	var data map[string]string
	json.Unmarshal(body.Data, &data)
	assert.Equal(t, id.String(), data["id"])
	mockSvc.AssertExpectations(t)
}
