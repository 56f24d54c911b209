package sources

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/pulsefeed/pulsefeed/internal/models"
)

const newsDataBaseURL = "https://newsdata.io/api/1/news"

// NewsData pulls technology headlines from newsdata.io. It is the only
// built-in source with a live keyword search (qInTitle).
type NewsData struct {
	apiKey string
	client *http.Client
}

func NewNewsData(apiKey string, timeout time.Duration) *NewsData {
	return &NewsData{apiKey: apiKey, client: newHTTPClient(timeout)}
}

func (n *NewsData) Name() string { return "NewsData" }

type newsDataResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Title       string `json:"title"`
		Link        string `json:"link"`
		Description string `json:"description"`
		SourceID    string `json:"source_id"`
		PubDate     string `json:"pubDate"`
	} `json:"results"`
}

func (n *NewsData) Fetch(ctx context.Context) ([]models.RawItem, error) {
	params := url.Values{}
	params.Set("apikey", n.apiKey)
	params.Set("category", "technology")
	params.Set("language", "en")

	return n.get(ctx, params, 10)
}

func (n *NewsData) Search(ctx context.Context, query string) ([]models.RawItem, error) {
	params := url.Values{}
	params.Set("apikey", n.apiKey)
	params.Set("qInTitle", query)
	params.Set("language", "en")
	params.Set("size", "5")

	return n.get(ctx, params, 0)
}

func (n *NewsData) get(ctx context.Context, params url.Values, limit int) ([]models.RawItem, error) {
	var resp newsDataResponse
	if err := getJSON(ctx, n.client, newsDataBaseURL+"?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	results := resp.Results
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	raw := make([]models.RawItem, 0, len(results))
	for _, r := range results {
		raw = append(raw, models.RawItem{
			Title:       r.Title,
			Link:        r.Link,
			Description: r.Description,
			Source:      n.Name(),
			PublishedAt: r.PubDate,
		})
	}
	return raw, nil
}
