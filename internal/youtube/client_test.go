package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	c := NewClient("test-key", logger)
	c.baseURL = serverURL
	return c
}

func TestFetchMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc123def45", r.URL.Query().Get("id"))
		assert.Equal(t, "snippet,contentDetails", r.URL.Query().Get("part"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{
			"items": [{
				"snippet": {
					"title": "Building a Game Engine",
					"description": "A long stream.",
					"channelTitle": "TechMaster"
				},
				"contentDetails": {"duration": "PT2H15M30S"}
			}]
		}`))
	}))
	defer server.Close()

	meta, err := newTestClient(server.URL).FetchMetadata(context.Background(), "abc123def45")
	require.NoError(t, err)
	assert.Equal(t, "Building a Game Engine", meta.Title)
	assert.Equal(t, "A long stream.", meta.Description)
	assert.Equal(t, "TechMaster", meta.Author)
	assert.Equal(t, "2:15:30", meta.Duration)
	assert.Equal(t, "https://img.youtube.com/vi/abc123def45/maxresdefault.jpg", meta.ThumbnailURL)
}

func TestFetchMetadataNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchMetadata(context.Background(), "abc123def45")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchMetadataQuotaError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"message": "quotaExceeded"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchMetadata(context.Background(), "abc123def45")
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Contains(t, upstream.Message, "quotaExceeded")
}

func TestFetchMetadataNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := newTestClient(server.URL).FetchMetadata(context.Background(), "abc123def45")
	var upstream *UpstreamError
	assert.ErrorAs(t, err, &upstream)
}

func TestFetchMetadataDefaultsEmptyDescription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"items": [{
				"snippet": {"title": "No description", "channelTitle": "Someone"},
				"contentDetails": {"duration": "PT45S"}
			}]
		}`))
	}))
	defer server.Close()

	meta, err := newTestClient(server.URL).FetchMetadata(context.Background(), "abc123def45")
	require.NoError(t, err)
	assert.Equal(t, "", meta.Description)
	assert.Equal(t, "0:45", meta.Duration)
}
