package handler // handler defines http handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rghazali/fitfinder/internal/repository"
)

// dbTimeout bounds every database call made on behalf of a request.
const dbTimeout = 5 * time.Second

// mutationResp is the wire shape every mutating endpoint returns.
type mutationResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// opCtx derives a bounded context from the request.
func opCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// succeed writes the standard success envelope.
func succeed(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, mutationResp{Success: true, Message: msg})
}

// fail writes the standard failure envelope with the given status.
func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, mutationResp{Success: false, Message: msg})
}

// failFromErr maps repository sentinels onto HTTP statuses; anything
// unclassified becomes a 500 with the fallback message.
func failFromErr(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fail(c, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrDuplicateListName):
		return fail(c, http.StatusConflict, "a list with this name already exists for the user")
	case errors.Is(err, repository.ErrConflict):
		return fail(c, http.StatusConflict, "conflict with existing data")
	case errors.Is(err, repository.ErrForbidden):
		return fail(c, http.StatusForbidden, "forbidden")
	default:
		return fail(c, http.StatusInternalServerError, fallback)
	}
}

// currentUserID extracts the authenticated subject placed in the context by
// the JWT middleware.
func currentUserID(c echo.Context) (string, error) {
	if s, ok := c.Get("user_id").(string); ok && s != "" {
		return s, nil
	}
	return "", errors.New("missing user_id in context")
}
