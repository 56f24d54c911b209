// Package news implements the aggregation pipelines: normalization, dedup,
// the trending refresh, live search, and per-user saved articles.
package news

import (
	"strings"
	"time"

	"github.com/pulsefeed/pulsefeed/internal/models"
	"github.com/pulsefeed/pulsefeed/internal/utils"
)

const redditBaseURL = "https://www.reddit.com"

// Provider timestamp layouts tried in order after RFC3339.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
}

// Normalize resolves a raw item into a canonical Article. Fields are taken by
// priority; a missing description falls back to a synthesized one so an item
// with a title and link is never dropped for lack of a summary. Returns false
// when the item is unusable.
func Normalize(item models.RawItem) (models.Article, bool) {
	title := firstNonEmpty(item.Title, item.Headline, item.Name)
	link := resolveLink(item)
	description := utils.StripHTML(firstNonEmpty(item.Description, item.Snippet, item.Text, item.Content, item.Body))

	if description == "" && title != "" {
		description = "Article about: " + strings.TrimSpace(title)
	}
	if title == "" || link == "" || description == "" {
		return models.Article{}, false
	}

	source := item.Source
	if source == "" {
		source = "Unknown"
	}

	return models.Article{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Link:        strings.TrimSpace(link),
		Source:      source,
		PublishedAt: resolveTime(item),
		AIScore:     models.DefaultScore,
		Status:      models.ScoreStatusUnscored,
	}, true
}

// NormalizeAll maps raw items to articles, in order, dropping the unusable.
func NormalizeAll(items []models.RawItem) []models.Article {
	articles := make([]models.Article, 0, len(items))
	for _, item := range items {
		if article, ok := Normalize(item); ok {
			articles = append(articles, article)
		}
	}
	return articles
}

func resolveLink(item models.RawItem) string {
	if link := firstNonEmpty(item.Link, item.URL); link != "" {
		return link
	}
	if item.Permalink != "" {
		permalink := item.Permalink
		if !strings.HasPrefix(permalink, "/") {
			permalink = "/" + permalink
		}
		return redditBaseURL + permalink
	}
	return ""
}

func resolveTime(item models.RawItem) *time.Time {
	if item.PublishedUnix > 0 {
		t := time.Unix(item.PublishedUnix, 0).UTC()
		return &t
	}
	raw := strings.TrimSpace(item.PublishedAt)
	if raw == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
