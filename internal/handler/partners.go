package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rghazali/fitfinder/internal/model"
	"github.com/rghazali/fitfinder/internal/queue"
	"github.com/rghazali/fitfinder/internal/service"
)

// partnerBoard is implemented by repository.PartnerPostRepo.
type partnerBoard interface {
	Create(ctx context.Context, p *model.PartnerPost) error
	ListAll(ctx context.Context) ([]model.PartnerPost, error)
	Delete(ctx context.Context, postID uint64, userID string) error
}

// PartnerHandler exposes the workout-partner invitation board.
type PartnerHandler struct {
	Posts partnerBoard
	// Publish sends the posted event to the broker.  Overridable so tests
	// do not need a broker; a publish failure never fails the request.
	Publish func(ctx context.Context, ev queue.PartnerPostedEvent) error
}

func NewPartnerHandler(posts partnerBoard) *PartnerHandler {
	return &PartnerHandler{Posts: posts, Publish: service.PublishPartnerPosted}
}

type partnerPostReq struct {
	Activity     string `json:"activity" form:"activity"`
	Location     string `json:"location" form:"location"`
	ScheduledFor string `json:"scheduled_for" form:"scheduled_for"` // RFC 3339, optional
	Note         string `json:"note" form:"note"`
}

type partnerPostResp struct {
	ID           uint64     `json:"post_id"`
	UserID       string     `json:"user_id"`
	Activity     string     `json:"activity"`
	Location     string     `json:"location"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	Note         string     `json:"note"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Create posts a new invitation for the authenticated user and announces it
// on the broker.
func (h *PartnerHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}
	var req partnerPostReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(req.Activity) == "" {
		return fail(c, http.StatusBadRequest, "activity is required")
	}

	post := model.PartnerPost{
		UserID:   userID,
		Activity: strings.TrimSpace(req.Activity),
		Location: strings.TrimSpace(req.Location),
		Note:     req.Note,
	}
	if req.ScheduledFor != "" {
		t, err := time.Parse(time.RFC3339, req.ScheduledFor)
		if err != nil {
			return fail(c, http.StatusBadRequest, "invalid scheduled_for, want RFC 3339")
		}
		post.ScheduledFor = &t
	}

	ctx, cancel := opCtx(c)
	defer cancel()
	if err := h.Posts.Create(ctx, &post); err != nil {
		return failFromErr(c, err, "create invitation failed")
	}

	ev := queue.PartnerPostedEvent{
		PostID:   post.ID,
		UserID:   post.UserID,
		Activity: post.Activity,
		Location: post.Location,
		PostedAt: post.CreatedAt.UTC().Format(time.RFC3339),
	}
	if post.ScheduledFor != nil {
		ev.ScheduledFor = post.ScheduledFor.UTC().Format(time.RFC3339)
	}
	if err := h.Publish(ctx, ev); err != nil {
		// The post is saved; the announcement is best effort.
		log.Printf("partner post %d: publish failed: %v", post.ID, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Invitation posted successfully.",
		"post_id": post.ID,
	})
}

// List returns every open invitation, newest first.
func (h *PartnerHandler) List(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()
	posts, err := h.Posts.ListAll(ctx)
	if err != nil {
		return failFromErr(c, err, "list invitations failed")
	}
	out := make([]partnerPostResp, 0, len(posts))
	for _, p := range posts {
		out = append(out, partnerPostResp{
			ID:           p.ID,
			UserID:       p.UserID,
			Activity:     p.Activity,
			Location:     p.Location,
			ScheduledFor: p.ScheduledFor,
			Note:         p.Note,
			CreatedAt:    p.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Delete removes one of the authenticated user's own invitations.
func (h *PartnerHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}
	postID, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid post id")
	}

	ctx, cancel := opCtx(c)
	defer cancel()
	if err := h.Posts.Delete(ctx, postID, userID); err != nil {
		return failFromErr(c, err, "delete invitation failed")
	}
	return succeed(c, "Invitation deleted successfully.")
}
