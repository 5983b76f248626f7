package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultAPIBaseURL = "https://www.googleapis.com/youtube/v3"

// ErrNotFound is returned when the Data API reports no video for an ID.
var ErrNotFound = errors.New("youtube video not found")

// UpstreamError wraps a failure talking to the Data API (network, auth,
// quota). It is retryable from the caller's point of view.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("youtube api error: %s", e.Message)
}

// Metadata is the normalized result of a metadata lookup. Duration is already
// in display form and ThumbnailURL is derived from the video ID, so the value
// can be merged into a draft as-is.
type Metadata struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Author       string `json:"author"`
	Duration     string `json:"duration"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// Client calls the YouTube Data API v3 to resolve video metadata.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	logger     *logrus.Logger
}

// NewClient creates a Data API client. The key may be empty; lookups then
// fail with an upstream error when the API rejects the request.
func NewClient(apiKey string, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     apiKey,
		baseURL:    defaultAPIBaseURL,
		logger:     logger,
	}
}

// videosListResponse mirrors the parts of the videos.list response we read.
type videosListResponse struct {
	Items []struct {
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// FetchMetadata resolves the metadata for a YouTube video ID via the Data API
// (snippet and contentDetails parts). The thumbnail is derived from the video
// ID rather than taken from the response, so it stays available even when the
// API call fails for quota reasons.
func (c *Client) FetchMetadata(ctx context.Context, videoID string) (*Metadata, error) {
	query := url.Values{}
	query.Set("id", videoID)
	query.Set("part", "snippet,contentDetails")
	query.Set("key", c.apiKey)
	endpoint := fmt.Sprintf("%s/videos?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &UpstreamError{Message: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorf("YouTube Data API request failed for video %s: %v", videoID, err)
		return nil, &UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiErrorResponse
		message := fmt.Sprintf("unexpected status %d", resp.StatusCode)
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			message = apiErr.Error.Message
		}
		c.logger.Errorf("YouTube Data API returned %d for video %s: %s", resp.StatusCode, videoID, message)
		return nil, &UpstreamError{Message: message}
	}

	var listResp videosListResponse
	if err := json.Unmarshal(body, &listResp); err != nil {
		return nil, &UpstreamError{Message: fmt.Sprintf("malformed response: %v", err)}
	}
	if len(listResp.Items) == 0 {
		return nil, ErrNotFound
	}

	item := listResp.Items[0]
	return &Metadata{
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		Author:       item.Snippet.ChannelTitle,
		Duration:     NormalizeDuration(item.ContentDetails.Duration),
		ThumbnailURL: ThumbnailURL(videoID),
	}, nil
}

// ThumbnailURL returns the static highest-quality thumbnail for a video ID.
// No API call is needed; YouTube serves these at a fixed path.
func ThumbnailURL(videoID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", videoID)
}
