package models

import (
	"strings"
	"time"
)

// ScoreStatus records how an article's AI fields were produced. The numeric
// score alone cannot distinguish "never scored" from "scoring failed", so the
// status is tracked explicitly.
type ScoreStatus string

const (
	ScoreStatusUnscored ScoreStatus = "unscored"
	ScoreStatusScored   ScoreStatus = "scored"
	ScoreStatusFailed   ScoreStatus = "failed"
)

// Sentiment values the scorer may assign.
const (
	SentimentBullish = "Bullish"
	SentimentBearish = "Bearish"
	SentimentNeutral = "Neutral"
)

// Categories the scorer chooses from. Anything unrecognized collapses to Other.
var Categories = []string{
	"AI/ML",
	"Web3/Crypto",
	"FinTech",
	"Cloud/Infra",
	"Mobile/Consumer",
	"Other",
}

const (
	CategoryOther = "Other"
	CategoryError = "Error"

	// DefaultScore is the numeric fallback for unscored and failed articles.
	DefaultScore = 1

	// FailedSummary marks articles whose scoring call failed.
	FailedSummary = "AI analysis failed."
)

// Article is the canonical normalized news item, enriched by the batch scorer.
type Article struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Link        string     `json:"link" binding:"required,url"`
	Source      string     `json:"source"`
	PublishedAt *time.Time `json:"published_at,omitempty"`

	AIScore    int         `json:"ai_score"`
	AISummary  string      `json:"ai_summary"`
	AICategory string      `json:"ai_category" binding:"omitempty,category"`
	Sentiment  string      `json:"sentiment"`
	Status     ScoreStatus `json:"score_status"`
}

// Valid reports whether the article carries the required fields. Candidates
// failing this never enter a cache.
func (a *Article) Valid() bool {
	return strings.TrimSpace(a.Title) != "" &&
		strings.TrimSpace(a.Description) != "" &&
		strings.TrimSpace(a.Link) != ""
}

// IsValidCategory reports whether c is one of the known categories.
func IsValidCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

// RawItem is the intermediate shape source adapters produce. Each adapter
// fills whatever fields its upstream exposes; the normalizer resolves them
// into an Article by priority.
type RawItem struct {
	Title    string
	Headline string
	Name     string

	Link      string
	URL       string
	Permalink string

	Description string
	Snippet     string
	Text        string
	Content     string
	Body        string

	Source string

	PublishedAt   string // RFC3339 or provider format
	PublishedUnix int64  // epoch seconds, 0 when absent
}
