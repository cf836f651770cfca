package model

// Workout is a catalog entry in the `workouts` table.  Workouts are not
// owned by any user; saved lists reference them through the junction table.
// The shape mirrors an ExerciseDB record so a search result can be saved
// verbatim.
type Workout struct {
	ID                uint64 // workouts.workout_id
	Name              string // workouts.name
	Description       string // workouts.description
	Equipment         string // workouts.equipment
	TargetMuscleGroup string // workouts.target_muscle_group
	SecondaryMuscles  string // workouts.secondary_muscles
	Instructions      string // workouts.instructions
	GifURL            string // workouts.gif_url
}
