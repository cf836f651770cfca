package model

import "time"

// SavedList is a named collection of workouts owned by exactly one user.
// The (owner, name) pair is unique, enforced by a database constraint.
// Lists are never edited in place; they are created and, administratively,
// dropped with their table.
type SavedList struct {
	ID          uint64    // saved_lists.list_id
	UserID      string    // saved_lists.user_id (references users.user_id)
	Name        string    // saved_lists.name
	Description string    // saved_lists.description
	CreatedAt   time.Time // saved_lists.creation_date
}

// SavedListWorkout is a row of the `saved_list_workouts` junction table:
// membership of one workout in one saved list.  The composite primary key
// is the only dedup mechanism.
type SavedListWorkout struct {
	ListID    uint64 // saved_list_workouts.list_id
	WorkoutID uint64 // saved_list_workouts.workout_id
}
