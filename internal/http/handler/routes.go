package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"jumpingkids/internal/auth"
	"jumpingkids/internal/http/middleware"
	"jumpingkids/internal/service"
)

// Services bundles the service layer for route registration. Media is
// optional and its routes are skipped when no object store is configured.
type Services struct {
	User       service.UserService
	Kid        service.KidService
	Exercise   service.ExerciseService
	Routine    service.RoutineService
	Assignment service.AssignmentService
	Training   service.TrainingService
	Media      service.MediaService
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
// Static paths are registered before parameterized ones so catalog
// lookups are not captured by :id routes.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services, tokens *auth.TokenManager) {
	requireAuth := middleware.RequireAuth(tokens)

	app.Get("/", Root())
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get("/info", Info())

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", Signup(svcs.User))
	authGroup.Post("/signin", Signin(svcs.User))
	authGroup.Post("/signout", Signout())
	authGroup.Get("/check-email", CheckEmail(svcs.User))
	authGroup.Get("/me", requireAuth, Me(svcs.User))

	kids := app.Group("/user/kids", requireAuth)
	kids.Get("/", ListKids(svcs.Kid))
	kids.Post("/", CreateKid(svcs.Kid))
	kids.Get("/:id", GetKid(svcs.Kid))
	kids.Put("/:id", UpdateKid(svcs.Kid))
	kids.Delete("/:id", DeleteKid(svcs.Kid))
	kids.Get("/:id/stats", KidStats(svcs.Kid))

	// Catalog lookups stay public, everything else needs a signed-in user.
	app.Get("/exercises/categories", ExerciseCategories(svcs.Exercise))
	app.Get("/exercises/age-groups", ExerciseAgeGroups(svcs.Exercise))
	app.Get("/exercises", requireAuth, ListExercises(svcs.Exercise))
	app.Post("/exercises", requireAuth, CreateExercise(svcs.Exercise))
	app.Get("/exercises/:id", requireAuth, GetExercise(svcs.Exercise))
	app.Put("/exercises/:id", requireAuth, UpdateExercise(svcs.Exercise))
	app.Delete("/exercises/:id", requireAuth, DeleteExercise(svcs.Exercise))

	if svcs.Media != nil {
		app.Post("/exercises/:id/media", requireAuth, UploadExerciseMedia(svcs.Media))
		app.Get("/exercises/:id/media", requireAuth, DownloadExerciseMedia(svcs.Media))
		app.Get("/exercises/:id/media-url", requireAuth, ExerciseMediaURL(svcs.Media))
	}

	routines := app.Group("/routines", requireAuth)
	routines.Get("/", ListRoutines(svcs.Routine))
	routines.Post("/", CreateRoutine(svcs.Routine))
	routines.Get("/:id", GetRoutine(svcs.Routine))
	routines.Put("/:id", UpdateRoutine(svcs.Routine))
	routines.Delete("/:id", DeleteRoutine(svcs.Routine))

	assignments := app.Group("/assignments", requireAuth)
	assignments.Get("/", ListAssignments(svcs.Assignment))
	assignments.Post("/", CreateAssignment(svcs.Assignment))
	assignments.Get("/today", AssignmentsToday(svcs.Assignment))
	assignments.Get("/kids/:kid_id/today", KidAssignmentToday(svcs.Assignment))
	assignments.Put("/:id/complete", CompleteAssignment(svcs.Assignment))

	training := app.Group("/training/sessions", requireAuth)
	training.Post("/", StartTrainingSession(svcs.Training))
	training.Get("/:id", GetTrainingSession(svcs.Training))
	training.Put("/:id/exercise/complete", CompleteSessionExercise(svcs.Training))
	training.Put("/:id/complete", CompleteTrainingSession(svcs.Training))
	training.Put("/:id/abandon", AbandonTrainingSession(svcs.Training))
}
