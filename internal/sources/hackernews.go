package sources

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/pulsefeed/pulsefeed/internal/models"
)

const (
	hnTopStoriesURL = "https://hacker-news.firebaseio.com/v0/topstories.json"
	hnItemURL       = "https://hacker-news.firebaseio.com/v0/item/%d.json"

	// The Firebase API returns up to 500 top story ids; only the first few
	// are fetched, one request per item.
	hnTopLimit = 10
)

// HackerNews pulls the current top stories from the official Firebase API.
type HackerNews struct {
	client *http.Client
}

func NewHackerNews(timeout time.Duration) *HackerNews {
	return &HackerNews{client: newHTTPClient(timeout)}
}

func (h *HackerNews) Name() string { return "HackerNews" }

type hnItem struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Text  string `json:"text"`
	Time  int64  `json:"time"`
	Score int    `json:"score"`
}

func (h *HackerNews) Fetch(ctx context.Context) ([]models.RawItem, error) {
	var ids []int
	if err := getJSON(ctx, h.client, hnTopStoriesURL, &ids); err != nil {
		return nil, err
	}
	if len(ids) > hnTopLimit {
		ids = ids[:hnTopLimit]
	}

	items := make([]*hnItem, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			var item hnItem
			if err := getJSON(ctx, h.client, fmt.Sprintf(hnItemURL, id), &item); err != nil {
				return
			}
			items[i] = &item
		}(i, id)
	}
	wg.Wait()

	raw := make([]models.RawItem, 0, len(items))
	for _, item := range items {
		// Ask HN and job posts carry no external URL; skip them.
		if item == nil || item.URL == "" {
			continue
		}
		raw = append(raw, models.RawItem{
			Title:         item.Title,
			URL:           item.URL,
			Text:          item.Text,
			Source:        h.Name(),
			PublishedUnix: item.Time,
		})
	}
	return raw, nil
}
