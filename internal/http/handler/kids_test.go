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

func TestListKids(t *testing.T) {
	mockSvc := new(serviceMocks.MockKidService)
	app := fiber.New()
	app.Get("/user/kids", asUser(testUserID), ListKids(mockSvc))

	kids := []model.Kid{
		{ID: uuid.New(), UserID: testUserID, Name: "Sofía", Age: 8},
		{ID: uuid.New(), UserID: testUserID, Name: "Diego", Age: 10},
	}
	mockSvc.On("List", mock.Anything, testUserID).Return(kids, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/user/kids", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeSuccess(t, resp)
	assert.Equal(t, "Retrieved 2 kids", body.Message)

	var got []model.Kid
	json.Unmarshal(body.Data, &got)
	assert.Len(t, got, 2)
	assert.Equal(t, "Sofía", got[0].Name)
	mockSvc.AssertExpectations(t)
}

func TestCreateKid(t *testing.T) {
	mockSvc := new(serviceMocks.MockKidService)
	app := fiber.New()
	app.Post("/user/kids", asUser(testUserID), CreateKid(mockSvc))

	t.Run("success", func(t *testing.T) {
		in := model.KidCreate{
			Name:      "Sofía",
			Age:       8,
			Avatar:    "🦊",
			BirthDate: model.NewDate(2018, 3, 14),
		}
		created := &model.Kid{ID: uuid.New(), UserID: testUserID, Name: in.Name, Age: in.Age, IsActive: true}
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(got model.KidCreate) bool {
			return got.Name == "Sofía" && got.Age == 8
		}), testUserID).Return(created, nil).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/user/kids", in))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeSuccess(t, resp)
		assert.Equal(t, "Kid created successfully", body.Message)

		var got model.Kid
		json.Unmarshal(body.Data, &got)
		assert.Equal(t, created.ID, got.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation error", func(t *testing.T) {
		verr := validateStruct(t, model.KidCreate{Name: "Sofía", Age: 99})
		mockSvc.On("Create", mock.Anything, mock.Anything, testUserID).Return(nil, verr).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/user/kids", model.KidCreate{Name: "Sofía", Age: 99}))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetKid(t *testing.T) {
	mockSvc := new(serviceMocks.MockKidService)
	app := fiber.New()
	app.Get("/user/kids/:id", asUser(testUserID), GetKid(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		kid := &model.Kid{ID: id, UserID: testUserID, Name: "Sofía", Age: 8}
		mockSvc.On("Get", mock.Anything, id, testUserID).Return(kid, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/user/kids/"+id.String(), nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeSuccess(t, resp)
		assert.Equal(t, "Kid retrieved successfully", body.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockSvc.On("Get", mock.Anything, id, testUserID).Return(nil, service.ErrKidNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/user/kids/"+id.String(), nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/user/kids/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "INVALID_ID", body.Error.Code)
	})
}

func TestUpdateKid(t *testing.T) {
	mockSvc := new(serviceMocks.MockKidService)
	app := fiber.New()
	app.Put("/user/kids/:id", asUser(testUserID), UpdateKid(mockSvc))

	id := uuid.New()
	name := "Sofi"
	updated := &model.Kid{ID: id, UserID: testUserID, Name: name, Age: 8}
	mockSvc.On("Update", mock.Anything, id, mock.MatchedBy(func(got model.KidUpdate) bool {
		return got.Name != nil && *got.Name == "Sofi"
	}), testUserID).Return(updated, nil).Once()

	resp, _ := app.Test(jsonRequest(t, http.MethodPut, "/user/kids/"+id.String(), model.KidUpdate{Name: &name}))

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeSuccess(t, resp)
	assert.Equal(t, "Kid updated successfully", body.Message)
	mockSvc.AssertExpectations(t)
}

func TestDeleteKid(t *testing.T) {
	mockSvc := new(serviceMocks.MockKidService)
	app := fiber.New()
	app.Delete("/user/kids/:id", asUser(testUserID), DeleteKid(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		mockSvc.On("Delete", mock.Anything, id, testUserID).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/user/kids/"+id.String(), nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeSuccess(t, resp)
		assert.Equal(t, "Kid deleted successfully", body.Message)

		var data map[string]string
		json.Unmarshal(body.Data, &data)
		assert.Equal(t, id.String(), data["id"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockSvc.On("Delete", mock.Anything, id, testUserID).Return(service.ErrKidNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/user/kids/"+id.String(), nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestKidStats(t *testing.T) {
	mockSvc := new(serviceMocks.MockKidService)
	app := fiber.New()
	app.Get("/user/kids/:id/stats", asUser(testUserID), KidStats(mockSvc))

	id := uuid.New()
	stats := &model.KidStatsResponse{
		KidStats: model.KidStats{TotalRoutines: 12, CurrentStreak: 3},
		WeeklyProgress: []model.WeeklyProgress{
			{Date: "2025-06-02", Completed: 1, Assigned: 1, Minutes: 20},
		},
	}
	mockSvc.On("Stats", mock.Anything, id, testUserID, "month").Return(stats, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/user/kids/"+id.String()+"/stats?period=month", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeSuccess(t, resp)
	assert.Equal(t, "Kid stats retrieved successfully", body.Message)

	var got model.KidStatsResponse
	json.Unmarshal(body.Data, &got)
	assert.Equal(t, 12, got.TotalRoutines)
	assert.Len(t, got.WeeklyProgress, 1)
	mockSvc.AssertExpectations(t)
}
