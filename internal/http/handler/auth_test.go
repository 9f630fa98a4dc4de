package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"jumpingkids/internal/model"
	"jumpingkids/internal/service"
	serviceMocks "jumpingkids/internal/service/mocks"
)

// authBody mirrors model.AuthResponse for decoding.
type authBody struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	Data        *model.User `json:"data"`
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
}

func TestSignup(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := fiber.New()
	app.Post("/auth/signup", Signup(mockSvc))

	t.Run("success", func(t *testing.T) {
		in := model.UserCreate{
			Name:     "Carlos Pérez",
			Username: "carlos@example.com",
			Password: "secret123",
			UserType: model.UserTypeTutor,
		}
		user := &model.User{ID: testUserID, Name: in.Name, Username: in.Username, UserType: in.UserType}

		mockSvc.On("Signup", mock.Anything, mock.MatchedBy(func(got model.UserCreate) bool {
			return got.Username == in.Username && got.Password == in.Password
		})).Return(user, "tok-abc", nil).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/auth/signup", in))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body authBody
		json.NewDecoder(resp.Body).Decode(&body)
		assert.True(t, body.Success)
		assert.Equal(t, "Usuario registrado exitosamente", body.Message)
		assert.Equal(t, "carlos@example.com", body.Data.Username)
		assert.Equal(t, "tok-abc", body.AccessToken)
		assert.Equal(t, "bearer", body.TokenType)
		mockSvc.AssertExpectations(t)
	})

	t.Run("username taken", func(t *testing.T) {
		mockSvc.On("Signup", mock.Anything, mock.Anything).
			Return(nil, "", service.ErrUsernameTaken).Once()

		in := model.UserCreate{Name: "x", Username: "carlos@example.com", Password: "secret123", UserType: model.UserTypeTutor}
		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/auth/signup", in))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "CONFLICT", body.Error.Code)
		assert.Equal(t, "El email ya está registrado", body.Error.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation error", func(t *testing.T) {
		verr := validator.New().Struct(model.UserCreate{})
		mockSvc.On("Signup", mock.Anything, mock.Anything).Return(nil, "", verr).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/auth/signup", model.UserCreate{}))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader("{not json"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "BAD_REQUEST", body.Error.Code)
	})
}

func TestSignin(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := fiber.New()
	app.Post("/auth/signin", Signin(mockSvc))

	t.Run("success", func(t *testing.T) {
		user := &model.User{ID: testUserID, Username: "carlos@example.com", UserType: model.UserTypeTutor}
		mockSvc.On("Signin", mock.Anything, model.Credentials{Username: "carlos@example.com", Password: "secret123"}).
			Return(user, "tok-xyz", nil).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/auth/signin", model.Credentials{
			Username: "carlos@example.com",
			Password: "secret123",
		}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body authBody
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Inicio de sesión exitoso", body.Message)
		assert.Equal(t, "tok-xyz", body.AccessToken)
		assert.Equal(t, "bearer", body.TokenType)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockSvc.On("Signin", mock.Anything, mock.Anything).
			Return(nil, "", service.ErrInvalidCredentials).Once()

		resp, _ := app.Test(jsonRequest(t, http.MethodPost, "/auth/signin", model.Credentials{
			Username: "carlos@example.com",
			Password: "wrong",
		}))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
		assert.Equal(t, "Credenciales inválidas", body.Error.Message)
		mockSvc.AssertExpectations(t)
	})
}

func TestSignout(t *testing.T) {
	app := fiber.New()
	app.Post("/auth/signout", Signout())

	resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/auth/signout", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Sesión cerrada exitosamente", body["message"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestCheckEmail(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := fiber.New()
	app.Get("/auth/check-email", CheckEmail(mockSvc))

	t.Run("registered", func(t *testing.T) {
		mockSvc.On("UsernameExists", mock.Anything, "carlos@example.com").Return(true, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/auth/check-email?email=carlos@example.com", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, true, body["exists"])
		assert.Equal(t, "Email ya registrado", body["message"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("available", func(t *testing.T) {
		mockSvc.On("UsernameExists", mock.Anything, "nuevo@example.com").Return(false, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/auth/check-email?email=nuevo@example.com", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, false, body["exists"])
		assert.Equal(t, "Email disponible", body["message"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing email", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/auth/check-email", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	})
}

func TestMe(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)

	t.Run("success", func(t *testing.T) {
		app := fiber.New()
		app.Get("/auth/me", asUser(testUserID), Me(mockSvc))

		user := &model.User{ID: testUserID, Username: "carlos@example.com", UserType: model.UserTypeTutor}
		mockSvc.On("Get", mock.Anything, testUserID).Return(user, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/auth/me", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body authBody
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Usuario obtenido exitosamente", body.Message)
		assert.Equal(t, testUserID, body.Data.ID)
		assert.Empty(t, body.AccessToken)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no claims", func(t *testing.T) {
		app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
		app.Get("/auth/me", Me(mockSvc))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/auth/me", nil))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
	})
}
