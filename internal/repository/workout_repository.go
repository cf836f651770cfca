package repository

import (
	"context"
	"database/sql"

	"github.com/rghazali/fitfinder/internal/model"
)

// WorkoutRepo manages persistence for the workout catalog.
type WorkoutRepo struct{ DB *sql.DB }

func NewWorkoutRepo(db *sql.DB) *WorkoutRepo { return &WorkoutRepo{DB: db} }

const workoutColumns = "workout_id,name,description,equipment,target_muscle_group,secondary_muscles,instructions,gif_url"

// Create inserts a workout and assigns the generated ID back to the struct.
func (r *WorkoutRepo) Create(ctx context.Context, w *model.Workout) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO workouts (name, description, equipment, target_muscle_group, secondary_muscles, instructions, gif_url)
		 VALUES (?,?,?,?,?,?,?)`,
		w.Name, w.Description, w.Equipment, w.TargetMuscleGroup, w.SecondaryMuscles, w.Instructions, w.GifURL)
	if err != nil {
		return classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	w.ID = uint64(id)
	return nil
}

// ListAll returns the full catalog ordered by id.
func (r *WorkoutRepo) ListAll(ctx context.Context) ([]model.Workout, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+workoutColumns+" FROM workouts ORDER BY workout_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Workout
	for rows.Next() {
		var w model.Workout
		if err := scanWorkout(rows, &w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// GetByID fetches one workout; ErrNotFound when absent.
func (r *WorkoutRepo) GetByID(ctx context.Context, id uint64) (model.Workout, error) {
	var w model.Workout
	row := r.DB.QueryRowContext(ctx, "SELECT "+workoutColumns+" FROM workouts WHERE workout_id=? LIMIT 1", id)
	if err := scanWorkout(row, &w); err != nil {
		if err == sql.ErrNoRows {
			return model.Workout{}, ErrNotFound
		}
		return model.Workout{}, err
	}
	return w, nil
}

// Update overwrites every mutable column of a workout.  ErrNotFound when no
// row matched the id.
func (r *WorkoutRepo) Update(ctx context.Context, w *model.Workout) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE workouts
		 SET name=?, description=?, equipment=?, target_muscle_group=?, secondary_muscles=?, instructions=?, gif_url=?
		 WHERE workout_id=?`,
		w.Name, w.Description, w.Equipment, w.TargetMuscleGroup, w.SecondaryMuscles, w.Instructions, w.GifURL, w.ID)
	if err != nil {
		return classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Distinguish "no such row" from "update to identical values".
		var exists uint64
		if scanErr := r.DB.QueryRowContext(ctx,
			"SELECT workout_id FROM workouts WHERE workout_id=? LIMIT 1", w.ID).Scan(&exists); scanErr == sql.ErrNoRows {
			return ErrNotFound
		}
	}
	return nil
}

// Delete removes a workout.  ErrNotFound when no row was affected; a
// junction row referencing the workout is removed by the cascade.
func (r *WorkoutRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM workouts WHERE workout_id=?", id)
	if err != nil {
		return classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface{ Scan(dest ...any) error }

func scanWorkout(row rowScanner, w *model.Workout) error {
	return row.Scan(&w.ID, &w.Name, &w.Description, &w.Equipment,
		&w.TargetMuscleGroup, &w.SecondaryMuscles, &w.Instructions, &w.GifURL)
}
