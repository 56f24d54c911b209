// Package sources holds the news provider adapters. Each adapter fetches from
// one upstream API and returns raw items in whatever field shape that upstream
// uses; the aggregation layer normalizes them afterwards.
package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pulsefeed/pulsefeed/internal/models"
)

// Source fetches the current top items from one provider.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]models.RawItem, error)
}

// Searcher is implemented by sources that support a live keyword query in
// addition to the trending fetch.
type Searcher interface {
	Source
	Search(ctx context.Context, query string) ([]models.RawItem, error)
}

const userAgent = "pulsefeed/1.0"

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// getJSON issues a GET and decodes the JSON body into out. Non-2xx statuses
// are errors; the adapters treat every error the same way (skip the source).
func getJSON(ctx context.Context, client *http.Client, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request %s: unexpected status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
