package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rghazali/fitfinder/internal/model"
	"github.com/rghazali/fitfinder/internal/repository"
)

// savedListStore is the saved-list surface the handler needs; implemented
// by repository.SavedListRepo.
type savedListStore interface {
	CreateList(ctx context.Context, userID, name, description string) (uint64, error)
	AddWorkout(ctx context.Context, listID, workoutID uint64) error
	ListForUser(ctx context.Context, userID string) ([]repository.SavedListSummary, error)
	GetList(ctx context.Context, listID uint64) (model.SavedList, error)
	ListWorkouts(ctx context.Context, listID uint64) ([]model.Workout, error)
}

// SavedListHandler exposes saved lists for the authenticated user.
type SavedListHandler struct {
	Lists savedListStore
}

func NewSavedListHandler(lists savedListStore) *SavedListHandler {
	return &SavedListHandler{Lists: lists}
}

type createListReq struct {
	Name        string `json:"list_name" form:"list_name"`
	Description string `json:"description" form:"description"`
}

type addWorkoutReq struct {
	WorkoutID uint64 `json:"workout_id" form:"workout_id"`
}

// Create makes a new named list for the authenticated user.  The name must
// be present and unique among the user's lists.
func (h *SavedListHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}
	var req createListReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return fail(c, http.StatusBadRequest, "Missing required fields.")
	}

	ctx, cancel := opCtx(c)
	defer cancel()
	id, err := h.Lists.CreateList(ctx, userID, req.Name, req.Description)
	if err != nil {
		return failFromErr(c, err, "create list failed")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Saved list created successfully.",
		"list_id": id,
	})
}

// List returns the authenticated user's lists in the summary projection.
func (h *SavedListHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}

	ctx, cancel := opCtx(c)
	defer cancel()
	lists, err := h.Lists.ListForUser(ctx, userID)
	if err != nil {
		return failFromErr(c, err, "list saved lists failed")
	}
	if lists == nil {
		lists = []repository.SavedListSummary{}
	}
	return c.JSON(http.StatusOK, lists)
}

// AddWorkout inserts a workout into a list through the junction table.
func (h *SavedListHandler) AddWorkout(c echo.Context) error {
	listID, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid list id")
	}
	var req addWorkoutReq
	if err := c.Bind(&req); err != nil || req.WorkoutID == 0 {
		return fail(c, http.StatusBadRequest, "workout_id is required")
	}

	ctx, cancel := opCtx(c)
	defer cancel()
	if err := h.Lists.AddWorkout(ctx, listID, req.WorkoutID); err != nil {
		return failFromErr(c, err, "add workout to list failed")
	}
	return succeed(c, "Workout added to saved list successfully.")
}

// Workouts returns the membership listing of one list.
func (h *SavedListHandler) Workouts(c echo.Context) error {
	listID, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid list id")
	}

	ctx, cancel := opCtx(c)
	defer cancel()
	if _, err := h.Lists.GetList(ctx, listID); err != nil {
		return failFromErr(c, err, "get list failed")
	}
	workouts, err := h.Lists.ListWorkouts(ctx, listID)
	if err != nil {
		return failFromErr(c, err, "list workouts failed")
	}
	out := make([]workoutResp, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, toWorkoutResp(w))
	}
	return c.JSON(http.StatusOK, out)
}
