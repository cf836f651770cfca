package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/rghazali/fitfinder/internal/model"
)

// SavedListRepo manages saved lists and their workout membership.
type SavedListRepo struct{ DB *sql.DB }

func NewSavedListRepo(db *sql.DB) *SavedListRepo { return &SavedListRepo{DB: db} }

// SavedListSummary is the projection returned by ListForUser: id, name and
// description only.  The creation date and owner are deliberately omitted
// to keep the wire shape the clients were built against.
type SavedListSummary struct {
	ID          uint64 `json:"list_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateList inserts a new saved list for a user.  The (user_id, name)
// unique key is the source of truth for duplicates; a violation surfaces as
// ErrDuplicateListName.  Returns the new list id.
func (r *SavedListRepo) CreateList(ctx context.Context, userID, name, description string) (uint64, error) {
	userID = strings.TrimSpace(userID)
	name = strings.TrimSpace(name)

	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO saved_lists (user_id, name, description) VALUES (?,?,?)",
		userID, name, description)
	if err != nil {
		if errors.Is(classify(err), ErrConflict) {
			return 0, ErrDuplicateListName
		}
		return 0, classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// AddWorkout inserts a membership row into the junction table.
// A missing list or workout surfaces as ErrNotFound (foreign key failure);
// inserting the same pair twice surfaces as ErrConflict (composite primary
// key violation).
func (r *SavedListRepo) AddWorkout(ctx context.Context, listID, workoutID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO saved_list_workouts (list_id, workout_id) VALUES (?,?)",
		listID, workoutID)
	return classify(err)
}

// ListForUser returns the user's saved lists projected to the summary shape.
func (r *SavedListRepo) ListForUser(ctx context.Context, userID string) ([]SavedListSummary, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT list_id,name,description FROM saved_lists WHERE user_id=? ORDER BY list_id",
		strings.TrimSpace(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedListSummary
	for rows.Next() {
		var s SavedListSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Description); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetList fetches a full saved list row; ErrNotFound when absent.
func (r *SavedListRepo) GetList(ctx context.Context, listID uint64) (model.SavedList, error) {
	var l model.SavedList
	err := r.DB.QueryRowContext(ctx,
		"SELECT list_id,user_id,name,description,creation_date FROM saved_lists WHERE list_id=? LIMIT 1",
		listID).Scan(&l.ID, &l.UserID, &l.Name, &l.Description, &l.CreatedAt)
	if err == sql.ErrNoRows {
		return model.SavedList{}, ErrNotFound
	}
	if err != nil {
		return model.SavedList{}, err
	}
	return l, nil
}

// ListWorkouts returns the workouts that are members of a list, joined
// through the junction table in insertion order of the catalog.
func (r *SavedListRepo) ListWorkouts(ctx context.Context, listID uint64) ([]model.Workout, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT w.workout_id,w.name,w.description,w.equipment,w.target_muscle_group,w.secondary_muscles,w.instructions,w.gif_url
		 FROM saved_list_workouts slw
		 JOIN workouts w ON w.workout_id = slw.workout_id
		 WHERE slw.list_id=?
		 ORDER BY w.workout_id`,
		listID)
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
