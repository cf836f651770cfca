package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rghazali/fitfinder/internal/exercise"
)

// exerciseSearcher is implemented by exercise.Searcher.
type exerciseSearcher interface {
	Search(ctx context.Context, muscleTags, equipmentTags []string) []exercise.Result
}

// ExerciseHandler runs tag-filtered searches over the external catalog.
type ExerciseHandler struct {
	Searcher exerciseSearcher
}

func NewExerciseHandler(s exerciseSearcher) *ExerciseHandler {
	return &ExerciseHandler{Searcher: s}
}

type searchReq struct {
	MuscleGroups []string `json:"muscleGroups" form:"muscleGroups"`
	Equipment    []string `json:"equipment" form:"equipment"`
}

// Search accepts the UI's tag selection (JSON body or form lists) and
// returns matching exercises.  A provider outage is indistinguishable from
// zero matches: the result is an empty array either way.
func (h *ExerciseHandler) Search(c echo.Context) error {
	var req searchReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	results := h.Searcher.Search(c.Request().Context(), req.MuscleGroups, req.Equipment)
	return c.JSON(http.StatusOK, results)
}
