// Package video is a thin client over the YouTube Data API v3 used to find
// instructional videos for an exercise.
package video

import (
	"context"
	"errors"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// defaultMaxResults is used when the caller does not constrain the result
// count.
const defaultMaxResults = 10

// ErrNoVideos is returned when the provider has no results for a query.
// Handlers translate this into an HTTP 404 response.
var ErrNoVideos = errors.New("no videos found")

// Video is one search hit projected to the fields the UI renders.
type Video struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// Client wraps the generated YouTube service.
type Client struct {
	svc *youtube.Service
}

// NewClient builds a client authenticated with an API key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	return NewClientWithOptions(ctx, option.WithAPIKey(apiKey))
}

// NewClientWithOptions accepts raw client options; tests use it to point
// the service at a stub endpoint.
func NewClientWithOptions(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{svc: svc}, nil
}

// Search runs a snippet search for videos matching the query.  max bounds
// the number of results; values below 1 fall back to the default.  An empty
// item list yields ErrNoVideos.
func (c *Client) Search(ctx context.Context, query string, max int) ([]Video, error) {
	if max < 1 {
		max = defaultMaxResults
	}
	resp, err := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(int64(max)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, ErrNoVideos
	}

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		v := Video{}
		if item.Id != nil {
			v.VideoID = item.Id.VideoId
		}
		if item.Snippet != nil {
			v.Title = item.Snippet.Title
			v.Description = item.Snippet.Description
			if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
				v.ThumbnailURL = item.Snippet.Thumbnails.High.Url
			}
		}
		videos = append(videos, v)
	}
	return videos, nil
}
