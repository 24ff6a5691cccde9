package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"
)

// Client fetches the product feed document over HTTP.
type Client struct {
	client    *http.Client
	url       string
	log       *slog.Logger
	userAgent string
}

func NewClient(url string, log *slog.Logger) *Client {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &Client{
		client:    client,
		url:       url,
		log:       log.With("component", "feed_client"),
		userAgent: "catalogsync/1.0",
	}
}

// Fetch issues one GET against the configured feed URL and returns the raw
// body. Non-200 responses are errors; an empty body is returned as-is and
// left to the caller to treat as a soft failure.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create feed request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.log.Debug("fetching feed", "url", c.url)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed body: %w", err)
	}
	return body, nil
}
