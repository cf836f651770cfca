package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rghazali/fitfinder/internal/video"
)

// videoSearcher is implemented by video.Client.
type videoSearcher interface {
	Search(ctx context.Context, query string, max int) ([]video.Video, error)
}

// VideoHandler proxies instructional-video searches.
type VideoHandler struct {
	Videos videoSearcher
}

func NewVideoHandler(v videoSearcher) *VideoHandler {
	return &VideoHandler{Videos: v}
}

// Search looks up videos for ?query= with an optional ?max= result count.
func (h *VideoHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("query"))
	if query == "" {
		return fail(c, http.StatusBadRequest, "query is required")
	}
	max := 0
	if raw := c.QueryParam("max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fail(c, http.StatusBadRequest, "invalid max")
		}
		max = n
	}

	videos, err := h.Videos.Search(c.Request().Context(), query, max)
	if err != nil {
		if errors.Is(err, video.ErrNoVideos) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No videos found"})
		}
		return fail(c, http.StatusInternalServerError, "video search failed")
	}
	return c.JSON(http.StatusOK, videos)
}
