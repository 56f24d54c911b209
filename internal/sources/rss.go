package sources

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/pulsefeed/pulsefeed/internal/config"
	"github.com/pulsefeed/pulsefeed/internal/models"
)

const rssFeedLimit = 10

// RSS serves a configured list of RSS/Atom feeds through a single adapter.
// Feed failures are collected; the adapter only errors when every feed fails.
type RSS struct {
	feeds   []config.FeedConfig
	parser  *gofeed.Parser
	timeout time.Duration
}

func NewRSS(feeds []config.FeedConfig, timeout time.Duration) *RSS {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	return &RSS{feeds: feeds, parser: parser, timeout: timeout}
}

func (r *RSS) Name() string { return "RSS" }

func (r *RSS) Fetch(ctx context.Context) ([]models.RawItem, error) {
	var (
		raw    []models.RawItem
		failed int
		first  error
	)

	for _, fc := range r.feeds {
		feedCtx, cancel := context.WithTimeout(ctx, r.timeout)
		feed, err := r.parser.ParseURLWithContext(fc.URL, feedCtx)
		cancel()
		if err != nil {
			failed++
			if first == nil {
				first = fmt.Errorf("feed %s: %w", fc.Name, err)
			}
			continue
		}

		items := feed.Items
		if len(items) > rssFeedLimit {
			items = items[:rssFeedLimit]
		}
		for _, item := range items {
			ri := models.RawItem{
				Title:       item.Title,
				Link:        item.Link,
				Description: item.Description,
				Content:     item.Content,
				Source:      fc.Name,
				PublishedAt: item.Published,
			}
			if item.PublishedParsed != nil {
				ri.PublishedUnix = item.PublishedParsed.Unix()
			}
			raw = append(raw, ri)
		}
	}

	if failed == len(r.feeds) && first != nil {
		return nil, first
	}
	return raw, nil
}
