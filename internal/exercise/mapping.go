package exercise

// UI-facing tags and the canonical ExerciseDB terms they expand to.  The
// tables are fixed: the search form offers exactly these choices, and the
// catalog's vocabulary is stable.  Unrecognized tags contribute nothing.

// muscleGroupMapping expands a muscle-group tag into the anatomical target
// terms ExerciseDB uses.  Compound tags (full_body, upper_body, ...) expand
// to several terms; single-muscle tags map to themselves.
var muscleGroupMapping = map[string][]string{
	"full_body": {"pectorals", "serratus anterior", "upper back", "lats",
		"traps", "spine", "delts", "biceps", "triceps", "forearms",
		"quads", "hamstrings", "calves", "glutes", "adductors",
		"abductors", "abs", "cardiovascular system"},
	"upper_body": {"pectorals", "serratus anterior", "upper back", "lats",
		"traps", "spine", "delts", "biceps", "triceps", "forearms"},
	"chest":      {"pectorals", "serratus anterior"},
	"back":       {"upper back", "lats", "traps", "spine"},
	"shoulders":  {"delts"},
	"biceps":     {"biceps"},
	"triceps":    {"triceps"},
	"forearms":   {"forearms"},
	"lower_body": {"quads", "hamstrings", "calves", "glutes", "adductors", "abductors"},
	"quads":      {"quads"},
	"hamstrings": {"hamstrings"},
	"calves":     {"calves"},
	"glutes":     {"glutes"},
	"hips":       {"adductors", "abductors"},
	"abs":        {"abs"},
	"cardio":     {"cardiovascular system"},
}

// equipmentMapping maps an equipment tag to the catalog's display string.
var equipmentMapping = map[string]string{
	"body_weight":        "body weight",
	"band":               "band",
	"barbell":            "barbell",
	"bosu_ball":          "bosu ball",
	"cable":              "cable",
	"dumbbell":           "dumbbell",
	"elliptical_machine": "elliptical machine",
	"ez_barbell":         "ez barbell",
	"hammer":             "hammer",
	"kettlebell":         "kettlebell",
	"leverage_machine":   "leverage machine",
	"medicine_ball":      "medicine ball",
	"olympic_barbell":    "olympic barbell",
	"resistance_band":    "resistance band",
	"roller":             "roller",
	"rope":               "rope",
	"skierg_machine":     "skierg machine",
	"sled_machine":       "sled machine",
	"smith_machine":      "smith machine",
	"stability_ball":     "stability ball",
	"stationary_bike":    "stationary bike",
	"stepmill_machine":   "stepmill machine",
	"wheel_roller":       "wheel roller",
}

// expandMuscleGroups flattens the requested tags into a deduplicated set of
// anatomical target terms.
func expandMuscleGroups(tags []string) map[string]bool {
	set := make(map[string]bool)
	for _, tag := range tags {
		for _, term := range muscleGroupMapping[tag] {
			set[term] = true
		}
	}
	return set
}

// mapEquipment converts the requested tags to canonical equipment strings,
// silently dropping anything the table does not know.
func mapEquipment(tags []string) map[string]bool {
	set := make(map[string]bool)
	for _, tag := range tags {
		if name, ok := equipmentMapping[tag]; ok {
			set[name] = true
		}
	}
	return set
}
