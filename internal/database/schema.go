// Schema management for the six application tables.  Creation is idempotent
// (CREATE TABLE IF NOT EXISTS, checked by name, no migration versioning) and
// ordered so foreign-key targets exist first.  Drops are unconditional and
// intended for administrative use via cmd/schema.
package database

import (
	"context"
	"database/sql"
	"fmt"
)

// tableDDL lists every table in foreign-key dependency order.
var tableDDL = []struct {
	Name string
	DDL  string
}{
	{"users", `
		CREATE TABLE IF NOT EXISTS users (
			id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			user_id     VARCHAR(255) NOT NULL,
			email       VARCHAR(255) NOT NULL,
			name        VARCHAR(255),
			nickname    VARCHAR(255),
			last_login  DATETIME,
			UNIQUE KEY uq_users_user_id (user_id)
		)`},
	{"workouts", `
		CREATE TABLE IF NOT EXISTS workouts (
			workout_id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name                VARCHAR(255) NOT NULL,
			description         TEXT,
			equipment           VARCHAR(255),
			target_muscle_group VARCHAR(255),
			secondary_muscles   VARCHAR(512),
			instructions        TEXT,
			gif_url             VARCHAR(512)
		)`},
	{"saved_lists", `
		CREATE TABLE IF NOT EXISTS saved_lists (
			list_id       BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			user_id       VARCHAR(255) NOT NULL,
			name          VARCHAR(255) NOT NULL,
			description   TEXT,
			creation_date DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uq_saved_lists_user_name (user_id, name),
			CONSTRAINT fk_saved_lists_user FOREIGN KEY (user_id) REFERENCES users (user_id)
		)`},
	{"saved_list_workouts", `
		CREATE TABLE IF NOT EXISTS saved_list_workouts (
			list_id    BIGINT UNSIGNED NOT NULL,
			workout_id BIGINT UNSIGNED NOT NULL,
			PRIMARY KEY (list_id, workout_id),
			CONSTRAINT fk_slw_list    FOREIGN KEY (list_id)    REFERENCES saved_lists (list_id) ON DELETE CASCADE,
			CONSTRAINT fk_slw_workout FOREIGN KEY (workout_id) REFERENCES workouts (workout_id) ON DELETE CASCADE
		)`},
	{"workout_posts", `
		CREATE TABLE IF NOT EXISTS workout_posts (
			post_id       BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			user_id       VARCHAR(255) NOT NULL,
			activity      VARCHAR(255) NOT NULL,
			location      VARCHAR(255),
			scheduled_for DATETIME,
			note          TEXT,
			created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT fk_workout_posts_user FOREIGN KEY (user_id) REFERENCES users (user_id) ON DELETE CASCADE
		)`},
	{"message_log", `
		CREATE TABLE IF NOT EXISTS message_log (
			id        BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			topic     VARCHAR(255) NOT NULL,
			body      TEXT NOT NULL,
			logged_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`},
}

// EnsureSchema creates every application table that does not already exist.
// Existing tables are left untouched; column drift is not detected.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, t := range tableDDL {
		if _, err := db.ExecContext(ctx, t.DDL); err != nil {
			return fmt.Errorf("create table %s: %w", t.Name, err)
		}
	}
	return nil
}

// TableNames returns the managed table names in creation order.
func TableNames() []string {
	names := make([]string, 0, len(tableDDL))
	for _, t := range tableDDL {
		names = append(names, t.Name)
	}
	return names
}

// DropTable removes a single managed table if it exists.  Only names known
// to the schema manager are accepted; there is no cascading dependency
// check, so dropping a referenced table can fail at the database level.
func DropTable(ctx context.Context, db *sql.DB, name string) error {
	if !managed(name) {
		return fmt.Errorf("unknown table %q", name)
	}
	_, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+name)
	return err
}

// DropAll removes every managed table in reverse creation order so foreign
// keys do not block the drops.
func DropAll(ctx context.Context, db *sql.DB) error {
	for i := len(tableDDL) - 1; i >= 0; i-- {
		if err := DropTable(ctx, db, tableDDL[i].Name); err != nil {
			return err
		}
	}
	return nil
}

func managed(name string) bool {
	for _, t := range tableDDL {
		if t.Name == name {
			return true
		}
	}
	return false
}
