package sources

import (
	"time"

	"github.com/pulsefeed/pulsefeed/internal/config"
)

// Build assembles the enabled adapter set from configuration. Keyed providers
// with no API key configured are left out rather than returned broken.
func Build(cfg *config.Config) []Source {
	timeout := time.Duration(cfg.FetchTimeoutSec) * time.Second

	var srcs []Source
	if cfg.Sources.HackerNews {
		srcs = append(srcs, NewHackerNews(timeout))
	}
	if cfg.Sources.NewsData && cfg.NewsDataAPIKey != "" {
		srcs = append(srcs, NewNewsData(cfg.NewsDataAPIKey, timeout))
	}
	if cfg.Sources.GNews && cfg.GNewsAPIKey != "" {
		srcs = append(srcs, NewGNews(cfg.GNewsAPIKey, timeout))
	}
	if cfg.Sources.Reddit {
		srcs = append(srcs, NewReddit(cfg.RedditSubreddit, timeout))
	}
	if len(cfg.Sources.Feeds) > 0 {
		srcs = append(srcs, NewRSS(cfg.Sources.Feeds, timeout))
	}
	return srcs
}
