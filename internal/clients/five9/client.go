package five9

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"call-insights-server/internal/observability"
)

const recordingRequestTimeout = 30 * time.Second

// Client downloads call recordings from the Five9 REST surface. The basic-auth
// credential pair never leaves this package.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	logger     *observability.Logger
}

func NewClient(baseURL, username, password string, logger *observability.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: recordingRequestTimeout,
		},
		logger: logger,
	}
}

// FetchRecording retrieves the raw audio payload for a recording of an agent's
// call. Both identifiers are required; any non-200 response or transport error
// is a failure.
func (c *Client) FetchRecording(ctx context.Context, agentID, recordingID string) ([]byte, error) {
	if agentID == "" || recordingID == "" {
		return nil, fmt.Errorf("agent ID and recording ID are required")
	}

	recordingURL := fmt.Sprintf("%s/agents/%s/recordings/%s",
		c.baseURL, url.PathEscape(agentID), url.PathEscape(recordingID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, recordingURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create recording request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "recording request failed", err)
		return nil, fmt.Errorf("recording request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("recording request returned status %d: %s", resp.StatusCode, string(body))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read recording body: %w", err)
	}
	return audio, nil
}
