package main

import (
	"context"
	"log"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"jumpingkids/docs"
	"jumpingkids/internal/auth"
	"jumpingkids/internal/config"
	"jumpingkids/internal/database"
	"jumpingkids/internal/database/migration"
	"jumpingkids/internal/database/seed"
	handlers "jumpingkids/internal/http/handler"
	"jumpingkids/internal/http/middleware"
	"jumpingkids/internal/otel"
	"jumpingkids/internal/repository/postgres"
	"jumpingkids/internal/service"
	"jumpingkids/internal/storage"
)

// @title JumpingKid Backend API
// @version 0.1.0
// @description API backend para la aplicación JumpingKid
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.Local

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}

	// Initialize PostgreSQL connection (with pooling via database/sql). The
	// database container may still be starting, so this retries with backoff.
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	if err := seed.EnsureSeeded(ctx, db, loc, cfg.SeedDemo); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	tokens, err := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLMin)*time.Minute)
	if err != nil {
		log.Fatalf("failed to configure token signing: %v", err)
	}

	// Initialize repositories and services
	userRepo := postgres.NewUserPostgres(db)
	kidRepo := postgres.NewKidPostgres(db)
	exerciseRepo := postgres.NewExercisePostgres(db)
	routineRepo := postgres.NewRoutinePostgres(db)
	assignmentRepo := postgres.NewAssignmentPostgres(db)
	trainingRepo := postgres.NewTrainingPostgres(db)

	svcs := handlers.Services{
		User:       service.NewUserService(userRepo, tokens),
		Kid:        service.NewKidService(kidRepo),
		Exercise:   service.NewExerciseService(exerciseRepo),
		Routine:    service.NewRoutineService(routineRepo, exerciseRepo),
		Assignment: service.NewAssignmentService(assignmentRepo, kidRepo, routineRepo),
		Training:   service.NewTrainingService(trainingRepo, kidRepo, routineRepo, assignmentRepo),
	}

	// Media endpoints need an S3-compatible object store (MinIO-supported)
	// and stay unregistered when none is configured.
	if cfg.MinIO.Enabled() {
		objStore, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
		svcs.Media = service.NewMediaService(objStore, exerciseRepo)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// Media uploads can exceed Fiber's 4 MB default body limit.
		BodyLimit: 64 << 20,
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	// JSON Logger middleware for structured request logs; runs inside the
	// tracing middleware so each line can carry the trace ID.
	app.Use(middleware.Logger())

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, svcs, tokens)

	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := otelShutdown(shutdownCtx); err != nil {
		log.Printf("tracer shutdown: %v", err)
	}
}
