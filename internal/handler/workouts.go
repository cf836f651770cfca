package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rghazali/fitfinder/internal/model"
)

// workoutCatalog is the catalog surface the handler needs; implemented by
// repository.WorkoutRepo.
type workoutCatalog interface {
	Create(ctx context.Context, w *model.Workout) error
	ListAll(ctx context.Context) ([]model.Workout, error)
	GetByID(ctx context.Context, id uint64) (model.Workout, error)
	Update(ctx context.Context, w *model.Workout) error
	Delete(ctx context.Context, id uint64) error
}

// WorkoutHandler exposes CRUD over the workout catalog.
type WorkoutHandler struct {
	Workouts workoutCatalog
}

func NewWorkoutHandler(workouts workoutCatalog) *WorkoutHandler {
	return &WorkoutHandler{Workouts: workouts}
}

// ----- DTOs -----

type workoutReq struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	Equipment         string `json:"equipment"`
	TargetMuscleGroup string `json:"targetMuscleGroup"`
	SecondaryMuscles  string `json:"secondaryMuscles"`
	Instructions      string `json:"instructions"`
	GifURL            string `json:"gifUrl"`
}

type workoutResp struct {
	ID                uint64 `json:"workout_id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Equipment         string `json:"equipment"`
	TargetMuscleGroup string `json:"targetMuscleGroup"`
	SecondaryMuscles  string `json:"secondaryMuscles"`
	Instructions      string `json:"instructions"`
	GifURL            string `json:"gifUrl"`
}

func toWorkoutResp(w model.Workout) workoutResp {
	return workoutResp{
		ID:                w.ID,
		Name:              w.Name,
		Description:       w.Description,
		Equipment:         w.Equipment,
		TargetMuscleGroup: w.TargetMuscleGroup,
		SecondaryMuscles:  w.SecondaryMuscles,
		Instructions:      w.Instructions,
		GifURL:            w.GifURL,
	}
}

func (r workoutReq) toModel() model.Workout {
	return model.Workout{
		Name:              strings.TrimSpace(r.Name),
		Description:       r.Description,
		Equipment:         r.Equipment,
		TargetMuscleGroup: r.TargetMuscleGroup,
		SecondaryMuscles:  r.SecondaryMuscles,
		Instructions:      r.Instructions,
		GifURL:            r.GifURL,
	}
}

// Create adds a workout to the catalog.
func (h *WorkoutHandler) Create(c echo.Context) error {
	var req workoutReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	w := req.toModel()
	if w.Name == "" {
		return fail(c, http.StatusBadRequest, "name is required")
	}

	ctx, cancel := opCtx(c)
	defer cancel()
	if err := h.Workouts.Create(ctx, &w); err != nil {
		return failFromErr(c, err, "create workout failed")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"message":    "Workout added successfully.",
		"workout_id": w.ID,
	})
}

// List returns the whole catalog.
func (h *WorkoutHandler) List(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()
	workouts, err := h.Workouts.ListAll(ctx)
	if err != nil {
		return failFromErr(c, err, "list workouts failed")
	}
	out := make([]workoutResp, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, toWorkoutResp(w))
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one workout by id.
func (h *WorkoutHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid workout id")
	}

	ctx, cancel := opCtx(c)
	defer cancel()
	w, err := h.Workouts.GetByID(ctx, id)
	if err != nil {
		return failFromErr(c, err, "get workout failed")
	}
	return c.JSON(http.StatusOK, toWorkoutResp(w))
}

// Update overwrites a workout.
func (h *WorkoutHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid workout id")
	}
	var req workoutReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	w := req.toModel()
	if w.Name == "" {
		return fail(c, http.StatusBadRequest, "name is required")
	}
	w.ID = id

	ctx, cancel := opCtx(c)
	defer cancel()
	if err := h.Workouts.Update(ctx, &w); err != nil {
		return failFromErr(c, err, "update workout failed")
	}
	return succeed(c, "Workout updated successfully.")
}

// Delete removes a workout; junction rows referencing it cascade away.
func (h *WorkoutHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid workout id")
	}

	ctx, cancel := opCtx(c)
	defer cancel()
	if err := h.Workouts.Delete(ctx, id); err != nil {
		return failFromErr(c, err, "delete workout failed")
	}
	return succeed(c, "Workout deleted successfully.")
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
