// Package feed fetches readings from the remote sensor endpoint.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/D-J-M-Rohit/Air-Pro/module/core/domain"
)

type Client struct {
	httpClient *http.Client
	url        string
}

func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// readingDocument matches the feed payload. json.Number tolerates
// feeds that quote their numeric fields.
type readingDocument struct {
	Field1 json.Number `json:"field1"`
	Field2 json.Number `json:"field2"`
}

func (c *Client) Fetch(ctx context.Context) (*domain.Reading, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch reading: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch reading: unexpected status %d", resp.StatusCode)
	}

	var doc readingDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode reading: %w", err)
	}

	a, err := doc.Field1.Float64()
	if err != nil {
		return nil, fmt.Errorf("parse field1: %w", err)
	}
	b, err := doc.Field2.Float64()
	if err != nil {
		return nil, fmt.Errorf("parse field2: %w", err)
	}

	return &domain.Reading{ChannelA: a, ChannelB: b}, nil
}
