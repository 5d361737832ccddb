package youtube

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Sentinel errors for the upstream API.
var (
	// ErrAPIKeyMissing means no Data API credential is configured.
	ErrAPIKeyMissing = errors.New("YouTube API key not configured")
	// ErrRemoteUnavailable covers quota/permission denials, missing or
	// private playlists, and upstream timeouts.
	ErrRemoteUnavailable = errors.New("YouTube API unavailable")
)

const (
	defaultTimeout  = 15 * time.Second
	playlistPageMax = 50
)

// Video is one playlist entry mapped to lecture shape. Sequence is 1-based
// in playlist order.
type Video struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoID     string `json:"video_id"`
	URL         string `json:"url"`
	Sequence    int    `json:"sequence"`
}

// Client talks to the YouTube Data API v3.
type Client struct {
	http   *resty.Client
	apiKey string
}

// NewClient builds a client for the given base URL and API key. The key may
// be empty; calls will then fail with ErrAPIKeyMissing.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout),
		apiKey: apiKey,
	}
}

// SetTimeout overrides the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.http.SetTimeout(d)
}

type playlistItemsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			ResourceID  struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
}

type videosResponse struct {
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
}

// VideoExists checks whether a video ID resolves to an existing video.
func (c *Client) VideoExists(videoID string) (bool, error) {
	if c.apiKey == "" {
		return false, ErrAPIKeyMissing
	}

	var body videosResponse
	resp, err := c.http.R().
		SetQueryParams(map[string]string{
			"part": "snippet",
			"id":   videoID,
			"key":  c.apiKey,
		}).
		SetResult(&body).
		Get("/videos")
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return false, remoteError(resp.StatusCode())
	}

	return len(body.Items) > 0, nil
}

// PlaylistVideos fetches every item of a playlist, following the
// continuation token until the playlist is exhausted.
func (c *Client) PlaylistVideos(playlistID string) ([]Video, error) {
	if c.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	var videos []Video
	pageToken := ""
	sequence := 1

	for {
		params := map[string]string{
			"part":       "snippet",
			"maxResults": fmt.Sprintf("%d", playlistPageMax),
			"playlistId": playlistID,
			"key":        c.apiKey,
		}
		if pageToken != "" {
			params["pageToken"] = pageToken
		}

		var body playlistItemsResponse
		resp, err := c.http.R().
			SetQueryParams(params).
			SetResult(&body).
			Get("/playlistItems")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, remoteError(resp.StatusCode())
		}

		for _, item := range body.Items {
			videoID := item.Snippet.ResourceID.VideoID
			videos = append(videos, Video{
				Title:       item.Snippet.Title,
				Description: item.Snippet.Description,
				VideoID:     videoID,
				URL:         WatchURL(videoID),
				Sequence:    sequence,
			})
			sequence++
		}

		if body.NextPageToken == "" {
			return videos, nil
		}
		pageToken = body.NextPageToken
	}
}

// StatusCode maps a client error to the HTTP status the API should
// propagate: 403 for quota/permission denials, 404 for missing or private
// playlists, 503 for anything else upstream.
func StatusCode(err error) int {
	var re *remoteErr
	if errors.As(err, &re) {
		switch re.status {
		case http.StatusForbidden:
			return http.StatusForbidden
		case http.StatusNotFound:
			return http.StatusNotFound
		}
	}
	return http.StatusServiceUnavailable
}

type remoteErr struct {
	status int
}

func (e *remoteErr) Error() string {
	switch e.status {
	case http.StatusForbidden:
		return "YouTube API quota exceeded or access denied"
	case http.StatusNotFound:
		return "playlist not found or is private"
	}
	return fmt.Sprintf("YouTube API returned status %d", e.status)
}

func (e *remoteErr) Unwrap() error { return ErrRemoteUnavailable }

func remoteError(status int) error {
	return &remoteErr{status: status}
}
