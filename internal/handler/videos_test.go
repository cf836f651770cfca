package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rghazali/fitfinder/internal/video"
)

type stubVideos struct {
	query  string
	max    int
	videos []video.Video
	err    error
}

func (s *stubVideos) Search(ctx context.Context, query string, max int) ([]video.Video, error) {
	s.query, s.max = query, max
	return s.videos, s.err
}

func TestVideoSearchRequiresQuery(t *testing.T) {
	h := NewVideoHandler(&stubVideos{})
	c, rec := jsonCtx(t, http.MethodGet, "/v1/videos?query=+", nil)

	if err := h.Search(c); err != nil {
		t.Fatalf("search: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestVideoSearchPassesQueryAndMax(t *testing.T) {
	stub := &stubVideos{videos: []video.Video{{VideoID: "v1", Title: "Deadlift"}}}
	h := NewVideoHandler(stub)
	c, rec := jsonCtx(t, http.MethodGet, "/v1/videos?query=deadlift&max=3", nil)

	if err := h.Search(c); err != nil {
		t.Fatalf("search: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
	if stub.query != "deadlift" || stub.max != 3 {
		t.Fatalf("forwarded query: %q max=%d", stub.query, stub.max)
	}
	var got []video.Video
	decodeBody(t, rec, &got)
	if len(got) != 1 || got[0].VideoID != "v1" {
		t.Fatalf("body: %+v", got)
	}
}

func TestVideoSearchNoResultsIs404(t *testing.T) {
	h := NewVideoHandler(&stubVideos{err: video.ErrNoVideos})
	c, rec := jsonCtx(t, http.MethodGet, "/v1/videos?query=xyzzy", nil)

	if err := h.Search(c); err != nil {
		t.Fatalf("search: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestVideoSearchProviderFailureIs500(t *testing.T) {
	h := NewVideoHandler(&stubVideos{err: errors.New("quota exceeded")})
	c, rec := jsonCtx(t, http.MethodGet, "/v1/videos?query=plank", nil)

	if err := h.Search(c); err != nil {
		t.Fatalf("search: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
