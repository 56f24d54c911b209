package sources

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pulsefeed/pulsefeed/internal/models"
	"github.com/pulsefeed/pulsefeed/internal/utils"
)

const redditTopURL = "https://www.reddit.com/r/%s/top.json?limit=10&t=day"

// Reddit pulls the top posts of the day from one subreddit. Post links are
// permalinks relative to reddit.com; the normalizer joins them. Selftext
// bodies arrive as markdown and are flattened to plain text here.
type Reddit struct {
	subreddit string
	client    *http.Client
}

func NewReddit(subreddit string, timeout time.Duration) *Reddit {
	return &Reddit{subreddit: subreddit, client: newHTTPClient(timeout)}
}

func (r *Reddit) Name() string { return "Reddit" }

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title      string  `json:"title"`
				Permalink  string  `json:"permalink"`
				Selftext   string  `json:"selftext"`
				CreatedUTC float64 `json:"created_utc"`
				Score      int     `json:"score"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func (r *Reddit) Fetch(ctx context.Context) ([]models.RawItem, error) {
	var listing redditListing
	url := fmt.Sprintf(redditTopURL, r.subreddit)
	if err := getJSON(ctx, r.client, url, &listing); err != nil {
		return nil, err
	}

	raw := make([]models.RawItem, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		post := child.Data
		raw = append(raw, models.RawItem{
			Title:         post.Title,
			Permalink:     post.Permalink,
			Body:          utils.MarkdownToText(post.Selftext),
			Source:        r.Name(),
			PublishedUnix: int64(post.CreatedUTC),
		})
	}
	return raw, nil
}
