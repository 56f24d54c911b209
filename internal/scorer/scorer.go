// Package scorer enriches normalized articles with AI relevance scores,
// summaries, categories, and sentiment. Articles are scored in batches with a
// single completion call per batch to stay under provider rate limits.
package scorer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pulsefeed/pulsefeed/internal/logging"
	"github.com/pulsefeed/pulsefeed/internal/models"
)

// Completer is one LLM backend. It takes a prompt and returns the raw
// completion text, expected to be a JSON document.
type Completer interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// BatchScorer chunks articles, prompts the completer once per chunk, and maps
// results back to articles by positional id. Scoring never fails the caller:
// a failed batch degrades every article in it to the default score.
type BatchScorer struct {
	completer Completer
	batchSize int
	timeout   time.Duration
	log       *logging.Logger
}

func New(completer Completer, batchSize int, timeout time.Duration, log *logging.Logger) *BatchScorer {
	if batchSize < 1 {
		batchSize = 20
	}
	return &BatchScorer{completer: completer, batchSize: batchSize, timeout: timeout, log: log}
}

type scoreResult struct {
	ID        int    `json:"id"`
	Score     int    `json:"score"`
	Summary   string `json:"summary"`
	Category  string `json:"category"`
	Sentiment string `json:"sentiment"`
}

type scoreResponse struct {
	Results []scoreResult `json:"results"`
}

// Score returns the articles enriched with AI fields, in input order. A nil
// completer degrades everything immediately.
func (s *BatchScorer) Score(ctx context.Context, articles []models.Article) []models.Article {
	if len(articles) == 0 {
		return articles
	}
	if s.completer == nil {
		return failBatch(articles)
	}

	out := make([]models.Article, 0, len(articles))
	for start := 0; start < len(articles); start += s.batchSize {
		end := start + s.batchSize
		if end > len(articles) {
			end = len(articles)
		}
		out = append(out, s.scoreBatch(ctx, articles[start:end])...)
	}
	return out
}

func (s *BatchScorer) scoreBatch(ctx context.Context, batch []models.Article) []models.Article {
	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.completer.Complete(callCtx, buildPrompt(batch))
	if err != nil {
		s.log.Errorf("batch scoring via %s failed: %v", s.completer.Name(), err)
		return failBatch(batch)
	}

	var parsed scoreResponse
	if err := json.Unmarshal([]byte(extractJSON(raw)), &parsed); err != nil {
		s.log.Errorf("batch scoring via %s returned unparseable JSON: %v", s.completer.Name(), err)
		return failBatch(batch)
	}

	// Positional correlation: result id N belongs to batch[N]. Out-of-range
	// ids are dropped, duplicate ids keep the first occurrence.
	byID := make(map[int]scoreResult, len(parsed.Results))
	for _, r := range parsed.Results {
		if r.ID < 0 || r.ID >= len(batch) {
			s.log.Warnf("scorer returned out-of-range id %d for batch of %d", r.ID, len(batch))
			continue
		}
		if _, seen := byID[r.ID]; !seen {
			byID[r.ID] = r
		}
	}

	scored := make([]models.Article, len(batch))
	for i, a := range batch {
		r, ok := byID[i]
		if !ok {
			// No result for this id: the article keeps its pre-scoring
			// values and stays unscored.
			scored[i] = a
			continue
		}
		a.AIScore = clampScore(r.Score)
		a.AISummary = strings.TrimSpace(r.Summary)
		if a.AISummary == "" {
			a.AISummary = fallbackSummary(a)
		}
		a.AICategory = r.Category
		if !models.IsValidCategory(a.AICategory) {
			a.AICategory = models.CategoryOther
		}
		a.Sentiment = normalizeSentiment(r.Sentiment)
		a.Status = models.ScoreStatusScored
		scored[i] = a
	}
	return scored
}

func buildPrompt(batch []models.Article) string {
	var list strings.Builder
	for i, a := range batch {
		fmt.Fprintf(&list, "[ID: %d] Title: %s\n", i, a.Title)
	}

	return fmt.Sprintf(`Analyze these %d news articles. Output a JSON object with a key "results" containing an array of objects.
Each object MUST have:
"id" (the number provided),
"score" (1-10 relevance to Tech/AI/Web3),
"summary" (1-sentence summary),
"category" (AI/ML, Cloud/Infra, Mobile/Consumer, Web3/Crypto, FinTech, or Other),
"sentiment" (Bullish, Bearish, or Neutral).

Articles to analyze:
%s`, len(batch), list.String())
}

// failBatch applies the degraded enrichment: articles stay servable, callers
// can tell scoring failed from the status and category.
func failBatch(batch []models.Article) []models.Article {
	out := make([]models.Article, len(batch))
	for i, a := range batch {
		a.AIScore = models.DefaultScore
		a.AISummary = models.FailedSummary
		a.AICategory = models.CategoryError
		a.Sentiment = models.SentimentNeutral
		a.Status = models.ScoreStatusFailed
		out[i] = a
	}
	return out
}

func fallbackSummary(a models.Article) string {
	if a.Description != "" {
		return a.Description
	}
	return "Summary unavailable."
}

func clampScore(score int) int {
	if score < 1 {
		return models.DefaultScore
	}
	if score > 10 {
		return 10
	}
	return score
}

func normalizeSentiment(s string) string {
	switch strings.TrimSpace(s) {
	case models.SentimentBullish, models.SentimentBearish, models.SentimentNeutral:
		return strings.TrimSpace(s)
	default:
		return models.SentimentNeutral
	}
}

// extractJSON trims markdown code fences some models wrap around JSON output.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(raw, "```")
	}
	return strings.TrimSpace(raw)
}
