package sources

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/pulsefeed/pulsefeed/internal/models"
)

const gnewsTopHeadlinesURL = "https://gnews.io/api/v4/top-headlines"

// GNews pulls English technology headlines from gnews.io.
type GNews struct {
	apiKey string
	client *http.Client
}

func NewGNews(apiKey string, timeout time.Duration) *GNews {
	return &GNews{apiKey: apiKey, client: newHTTPClient(timeout)}
}

func (g *GNews) Name() string { return "GNews" }

type gnewsResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

func (g *GNews) Fetch(ctx context.Context) ([]models.RawItem, error) {
	params := url.Values{}
	params.Set("token", g.apiKey)
	params.Set("topic", "technology")
	params.Set("lang", "en")
	params.Set("max", "10")

	var resp gnewsResponse
	if err := getJSON(ctx, g.client, gnewsTopHeadlinesURL+"?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	raw := make([]models.RawItem, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		raw = append(raw, models.RawItem{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      g.Name(),
			PublishedAt: a.PublishedAt,
		})
	}
	return raw, nil
}
