package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id            BIGSERIAL   PRIMARY KEY,
  name          TEXT        NOT NULL,
  username      TEXT        NOT NULL UNIQUE,
  password_hash TEXT        NOT NULL,
  user_type     TEXT        NOT NULL CHECK (user_type IN ('kid', 'tutor')),
  subscription  TEXT        NOT NULL DEFAULT 'free' CHECK (subscription IN ('free', 'premium')),
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_kids",
		SQL: `CREATE TABLE IF NOT EXISTS kids (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id     BIGINT      NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  name        TEXT        NOT NULL,
  age         INT         NOT NULL CHECK (age BETWEEN 3 AND 18),
  avatar      TEXT        NOT NULL DEFAULT '',
  birth_date  DATE        NOT NULL,
  preferences JSONB       NOT NULL DEFAULT '{}'::jsonb,
  stats       JSONB       NOT NULL DEFAULT '{}'::jsonb,
  is_active   BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_kids_user_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_kids_user_id ON kids (user_id) WHERE is_active;`,
	},
	{
		Name: "create_table_exercises",
		SQL: `CREATE TABLE IF NOT EXISTS exercises (
  id               UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name             TEXT        NOT NULL,
  description      TEXT        NOT NULL,
  category         TEXT        NOT NULL,
  difficulty       TEXT        NOT NULL,
  duration_seconds INT         NOT NULL CHECK (duration_seconds BETWEEN 10 AND 600),
  age_group        TEXT        NOT NULL,
  instructions     JSONB       NOT NULL DEFAULT '[]'::jsonb,
  benefits         JSONB       NOT NULL DEFAULT '[]'::jsonb,
  equipment_needed JSONB       NOT NULL DEFAULT '[]'::jsonb,
  video_url        TEXT,
  image_url        TEXT,
  created_by       TEXT        NOT NULL DEFAULT 'system',
  is_custom        BOOLEAN     NOT NULL DEFAULT FALSE,
  is_active        BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at       TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_exercises_category",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_exercises_category ON exercises (category);`,
	},
	{
		Name: "create_index_exercises_age_group",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_exercises_age_group ON exercises (age_group);`,
	},
	{
		Name: "create_table_routines",
		SQL: `CREATE TABLE IF NOT EXISTS routines (
  id                UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  name              TEXT             NOT NULL,
  description       TEXT             NOT NULL DEFAULT '',
  category          TEXT             NOT NULL,
  difficulty        TEXT             NOT NULL,
  duration_minutes  INT              NOT NULL CHECK (duration_minutes BETWEEN 5 AND 120),
  age_group         TEXT             NOT NULL,
  created_by        TEXT             NOT NULL DEFAULT 'system',
  is_custom         BOOLEAN          NOT NULL DEFAULT FALSE,
  is_active         BOOLEAN          NOT NULL DEFAULT TRUE,
  popularity_score  DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (popularity_score BETWEEN 0 AND 5),
  total_assignments INT              NOT NULL DEFAULT 0 CHECK (total_assignments >= 0),
  created_at        TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_at        TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_routine_exercises",
		SQL: `CREATE TABLE IF NOT EXISTS routine_exercises (
  id               UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
  routine_id       UUID NOT NULL REFERENCES routines (id) ON DELETE CASCADE,
  exercise_id      UUID NOT NULL REFERENCES exercises (id),
  position         INT  NOT NULL CHECK (position >= 1),
  duration_seconds INT,
  repetitions      INT,
  rest_seconds     INT  NOT NULL DEFAULT 10,
  UNIQUE (routine_id, position)
);`,
	},
	{
		Name: "create_table_assignments",
		SQL: `CREATE TABLE IF NOT EXISTS assignments (
  id                      UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  routine_id              UUID        NOT NULL REFERENCES routines (id),
  kid_id                  UUID        NOT NULL REFERENCES kids (id) ON DELETE CASCADE,
  assigned_date           DATE        NOT NULL,
  status                  TEXT        NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'in-progress', 'completed', 'skipped')),
  assigned_by             BIGINT      NOT NULL REFERENCES users (id),
  completed_at            TIMESTAMPTZ,
  completion_time_minutes INT,
  exercises_completed     INT,
  notes                   TEXT,
  created_at              TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at              TIMESTAMPTZ,
  UNIQUE (kid_id, routine_id, assigned_date)
);`,
	},
	{
		Name: "create_index_assignments_kid_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_assignments_kid_date ON assignments (kid_id, assigned_date);`,
	},
	{
		Name: "create_table_training_sessions",
		SQL: `CREATE TABLE IF NOT EXISTS training_sessions (
  id                     UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  kid_id                 UUID        NOT NULL REFERENCES kids (id) ON DELETE CASCADE,
  assignment_id          UUID        REFERENCES assignments (id),
  routine_id             UUID        NOT NULL REFERENCES routines (id),
  status                 TEXT        NOT NULL DEFAULT 'in-progress' CHECK (status IN ('in-progress', 'completed', 'abandoned')),
  started_at             TIMESTAMPTZ NOT NULL DEFAULT now(),
  completed_at           TIMESTAMPTZ,
  current_exercise_index INT         NOT NULL DEFAULT 0,
  exercises_completed    INT         NOT NULL DEFAULT 0,
  total_exercises        INT         NOT NULL DEFAULT 0,
  total_time_minutes     INT,
  overall_rating         INT         CHECK (overall_rating BETWEEN 1 AND 5),
  notes                  TEXT,
  created_at             TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at             TIMESTAMPTZ
);`,
	},
	{
		Name: "create_unique_index_training_sessions_active",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS uq_training_sessions_active ON training_sessions (kid_id) WHERE status = 'in-progress';`,
	},
	{
		Name: "create_index_training_sessions_kid_started",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_training_sessions_kid_started ON training_sessions (kid_id, started_at);`,
	},
}

// EnsureMigrated checks if the 'users' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.users') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
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
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
