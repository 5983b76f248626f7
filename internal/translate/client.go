// Package translate wraps the translate-text edge function deployed next to
// the Supabase project. Request and response shapes follow that function:
// {"text": ...} in, {"translatedText": ...} out.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// RequestError wraps a failed translation call. The source text is left
// untouched by the caller when this is returned.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("translation request failed: %s", e.Message)
}

// Client calls the external text-translation function.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	logger     *logrus.Logger
}

// NewClient creates a translation client for the given function endpoint.
// apiKey is sent as both the apikey header and bearer token, which is what
// Supabase edge functions expect.
func NewClient(endpoint, apiKey string, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		endpoint:   endpoint,
		apiKey:     apiKey,
		logger:     logger,
	}
}

type translateRequest struct {
	Text string `json:"text"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// Translate sends text to the translation function and returns the result.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(translateRequest{Text: text})
	if err != nil {
		return "", &RequestError{Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", &RequestError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorf("Translation request failed: %v", err)
		return "", &RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &RequestError{Message: err.Error()}
	}

	var result translateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &RequestError{Message: fmt.Sprintf("malformed response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK || result.Error != "" {
		message := result.Error
		if message == "" {
			message = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		c.logger.Errorf("Translation function returned an error: %s", message)
		return "", &RequestError{Message: message}
	}

	return result.TranslatedText, nil
}
