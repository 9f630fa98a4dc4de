package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"jumpingkids/internal/auth"
)

type catalogExercise struct {
	Name            string
	Description     string
	Category        string
	Difficulty      string
	DurationSeconds int
	AgeGroup        string
	Instructions    []string
	Benefits        []string
	Equipment       []string
	ImageURL        string
}

var catalogExercises = []catalogExercise{
	{
		Name:            "Saltos de Rana",
		Description:     "Saltar como una rana por 30 segundos",
		Category:        "Cardio",
		Difficulty:      "Principiante",
		DurationSeconds: 30,
		AgeGroup:        "6-8",
		Instructions:    []string{"Ponte en cuclillas", "Salta hacia adelante", "Aterriza suavemente"},
		Benefits:        []string{"Fortalece piernas", "Mejora coordinación"},
		Equipment:       []string{},
		ImageURL:        "/images/exercises/frog-jumps.jpg",
	},
	{
		Name:            "Flexiones de Rodillas",
		Description:     "Flexiones apoyando las rodillas en el suelo",
		Category:        "Fuerza",
		Difficulty:      "Principiante",
		DurationSeconds: 45,
		AgeGroup:        "6-8",
		Instructions:    []string{"Apoya las rodillas", "Baja el pecho al suelo", "Empuja hacia arriba"},
		Benefits:        []string{"Fortalece brazos", "Desarrolla fuerza del core"},
		Equipment:       []string{},
		ImageURL:        "/images/exercises/knee-pushups.jpg",
	},
	{
		Name:            "Estiramiento de Gato",
		Description:     "Estiramiento imitando el movimiento de un gato",
		Category:        "Flexibilidad",
		Difficulty:      "Principiante",
		DurationSeconds: 60,
		AgeGroup:        "6-8",
		Instructions:    []string{"Ponte en cuatro patas", "Arquea la espalda hacia arriba", "Relaja hacia abajo"},
		Benefits:        []string{"Mejora flexibilidad", "Relaja la espalda"},
		Equipment:       []string{"Mat"},
		ImageURL:        "/images/exercises/cat-stretch.jpg",
	},
	{
		Name:            "Equilibrio del Flamenco",
		Description:     "Mantener equilibrio en una pierna como un flamenco",
		Category:        "Equilibrio",
		Difficulty:      "Intermedio",
		DurationSeconds: 30,
		AgeGroup:        "6-8",
		Instructions:    []string{"Levanta una pierna", "Mantén el equilibrio", "Cambia de pierna"},
		Benefits:        []string{"Mejora equilibrio", "Fortalece piernas"},
		Equipment:       []string{},
		ImageURL:        "/images/exercises/flamingo-balance.jpg",
	},
	{
		Name:            "Marcha de Soldado",
		Description:     "Marchar en el lugar levantando las rodillas",
		Category:        "Coordinación",
		Difficulty:      "Principiante",
		DurationSeconds: 45,
		AgeGroup:        "6-8",
		Instructions:    []string{"Marcha en el lugar", "Levanta las rodillas alto", "Balancea los brazos"},
		Benefits:        []string{"Mejora coordinación", "Ejercicio cardiovascular"},
		Equipment:       []string{},
		ImageURL:        "/images/exercises/soldier-march.jpg",
	},
}

type demoUser struct {
	Name         string
	Username     string
	Password     string
	UserType     string
	Subscription string
}

var demoUsers = []demoUser{
	{Name: "Usuario Test", Username: "test@example.com", Password: "password123", UserType: "tutor", Subscription: "free"},
	{Name: "Carlos Mendoza", Username: "carlos", Password: "123456", UserType: "tutor", Subscription: "premium"},
}

type demoRoutineSlot struct {
	ExerciseName    string
	Position        int
	DurationSeconds int
	RestSeconds     int
}

const (
	demoRoutineName        = "Rutina Matutina Energizante"
	demoRoutineDescription = "Perfecta para empezar el día con energía"
)

var demoRoutineSlots = []demoRoutineSlot{
	{ExerciseName: "Saltos de Rana", Position: 1, DurationSeconds: 30, RestSeconds: 10},
	{ExerciseName: "Flexiones de Rodillas", Position: 2, DurationSeconds: 45, RestSeconds: 15},
	{ExerciseName: "Estiramiento de Gato", Position: 3, DurationSeconds: 60, RestSeconds: 10},
}

// EnsureSeeded inserts the built-in exercise catalog when missing. With demo
// enabled it also creates the demo tutor accounts and a starter routine.
// Every row is guarded by an existence check, so re-running is safe.
func EnsureSeeded(ctx context.Context, db *sql.DB, loc *time.Location, demo bool) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_seed_start",
		"status":    "in_progress",
		"demo_data": demo,
	})

	inserted, err := seedCatalog(ctx, db)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_seed_failed",
			"status":        "error",
			"seed_step":     "exercise_catalog",
			"error_message": err.Error(),
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("seed exercise catalog: %w", err)
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_seed_step",
		"status":    "success",
		"seed_step": "exercise_catalog",
		"inserted":  inserted,
	})

	if demo {
		users, err := seedDemoUsers(ctx, db)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":     "database",
				"event":         "db_seed_failed",
				"status":        "error",
				"seed_step":     "demo_users",
				"error_message": err.Error(),
				"duration_ms":   time.Since(start).Milliseconds(),
			})
			return fmt.Errorf("seed demo users: %w", err)
		}

		logJSON(loc, map[string]any{
			"component": "database",
			"event":     "db_seed_step",
			"status":    "success",
			"seed_step": "demo_users",
			"inserted":  users,
		})

		created, err := seedDemoRoutine(ctx, db)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":     "database",
				"event":         "db_seed_failed",
				"status":        "error",
				"seed_step":     "demo_routine",
				"error_message": err.Error(),
				"duration_ms":   time.Since(start).Milliseconds(),
			})
			return fmt.Errorf("seed demo routine: %w", err)
		}

		logJSON(loc, map[string]any{
			"component": "database",
			"event":     "db_seed_step",
			"status":    "success",
			"seed_step": "demo_routine",
			"created":   created,
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_seed_success",
		"status":      "success",
		"demo_data":   demo,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func seedCatalog(ctx context.Context, db *sql.DB) (int, error) {
	const existsQuery = `SELECT EXISTS (SELECT 1 FROM exercises WHERE name = $1 AND created_by = 'system')`
	const insertQuery = `INSERT INTO exercises
  (name, description, category, difficulty, duration_seconds, age_group, instructions, benefits, equipment_needed, image_url, created_by, is_custom)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'system', FALSE)`

	inserted := 0
	for _, ex := range catalogExercises {
		var exists bool
		if err := db.QueryRowContext(ctx, existsQuery, ex.Name).Scan(&exists); err != nil {
			return inserted, fmt.Errorf("check exercise %q: %w", ex.Name, err)
		}
		if exists {
			continue
		}

		instructions, err := json.Marshal(ex.Instructions)
		if err != nil {
			return inserted, fmt.Errorf("marshal instructions for %q: %w", ex.Name, err)
		}
		benefits, err := json.Marshal(ex.Benefits)
		if err != nil {
			return inserted, fmt.Errorf("marshal benefits for %q: %w", ex.Name, err)
		}
		equipment, err := json.Marshal(ex.Equipment)
		if err != nil {
			return inserted, fmt.Errorf("marshal equipment for %q: %w", ex.Name, err)
		}

		_, err = db.ExecContext(ctx, insertQuery,
			ex.Name, ex.Description, ex.Category, ex.Difficulty, ex.DurationSeconds,
			ex.AgeGroup, instructions, benefits, equipment, ex.ImageURL,
		)
		if err != nil {
			return inserted, fmt.Errorf("insert exercise %q: %w", ex.Name, err)
		}
		inserted++
	}

	return inserted, nil
}

func seedDemoUsers(ctx context.Context, db *sql.DB) (int, error) {
	const existsQuery = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
	const insertQuery = `INSERT INTO users (name, username, password_hash, user_type, subscription, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())`

	inserted := 0
	for _, u := range demoUsers {
		var exists bool
		if err := db.QueryRowContext(ctx, existsQuery, u.Username).Scan(&exists); err != nil {
			return inserted, fmt.Errorf("check user %q: %w", u.Username, err)
		}
		if exists {
			continue
		}

		hash, err := auth.HashPassword(u.Password)
		if err != nil {
			return inserted, fmt.Errorf("hash password for %q: %w", u.Username, err)
		}

		_, err = db.ExecContext(ctx, insertQuery, u.Name, u.Username, hash, u.UserType, u.Subscription)
		if err != nil {
			return inserted, fmt.Errorf("insert user %q: %w", u.Username, err)
		}
		inserted++
	}

	return inserted, nil
}

func seedDemoRoutine(ctx context.Context, db *sql.DB) (bool, error) {
	var exists bool
	const existsQuery = `SELECT EXISTS (SELECT 1 FROM routines WHERE name = $1 AND created_by = 'system')`
	if err := db.QueryRowContext(ctx, existsQuery, demoRoutineName).Scan(&exists); err != nil {
		return false, fmt.Errorf("check routine %q: %w", demoRoutineName, err)
	}
	if exists {
		return false, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var routineID string
	const insertRoutine = `INSERT INTO routines
  (name, description, category, difficulty, duration_minutes, age_group, created_by, is_custom, popularity_score, total_assignments)
VALUES ($1, $2, 'Cardio', 'Principiante', 15, '6-8', 'system', FALSE, 4.8, 0)
RETURNING id`
	if err := tx.QueryRowContext(ctx, insertRoutine, demoRoutineName, demoRoutineDescription).Scan(&routineID); err != nil {
		return false, fmt.Errorf("insert routine %q: %w", demoRoutineName, err)
	}

	const insertSlot = `INSERT INTO routine_exercises (routine_id, exercise_id, position, duration_seconds, rest_seconds)
SELECT $1, id, $2, $3, $4 FROM exercises WHERE name = $5 AND created_by = 'system'`
	for _, slot := range demoRoutineSlots {
		res, err := tx.ExecContext(ctx, insertSlot, routineID, slot.Position, slot.DurationSeconds, slot.RestSeconds, slot.ExerciseName)
		if err != nil {
			return false, fmt.Errorf("insert routine slot %d: %w", slot.Position, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return false, fmt.Errorf("routine slot %d references missing exercise %q", slot.Position, slot.ExerciseName)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit tx: %w", err)
	}

	return true, nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal seed log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
