package news

import (
	"context"
	"strings"
	"time"

	"github.com/pulsefeed/pulsefeed/internal/archive"
	"github.com/pulsefeed/pulsefeed/internal/cache"
	"github.com/pulsefeed/pulsefeed/internal/logging"
	"github.com/pulsefeed/pulsefeed/internal/models"
	"github.com/pulsefeed/pulsefeed/internal/scorer"
	"github.com/pulsefeed/pulsefeed/internal/sources"
)

const archiveSearchLimit = 10

// Search composes three result tiers for a keyword query: matches already in
// the trending cache, historical hits from the archive, and a live fetch from
// the searchable sources. Earlier tiers win on duplicate titles, so an
// already-scored cached article beats a freshly fetched copy of itself.
type Search struct {
	sources []sources.Source
	scorer  *scorer.BatchScorer
	store   cache.Store
	archive *archive.Archive
	log     *logging.Logger
	ttl     time.Duration
}

func NewSearch(srcs []sources.Source, sc *scorer.BatchScorer, store cache.Store, arc *archive.Archive, ttl time.Duration, log *logging.Logger) *Search {
	return &Search{
		sources: srcs,
		scorer:  sc,
		store:   store,
		archive: arc,
		log:     log,
		ttl:     ttl,
	}
}

// Query runs a search for one user. Results are cached per (user, query) so
// a repeated identical search within the TTL costs nothing.
func (s *Search) Query(ctx context.Context, userID, query string) (*models.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.ErrQueryRequired
	}

	key := cache.SearchKey(userID, query)
	var cached models.SearchResponse
	if cache.GetJSON(s.store, key, &cached) {
		return &cached, nil
	}

	merged := s.cachedMatches(query)

	if hits, err := s.archive.SearchTitles(ctx, query, archiveSearchLimit); err != nil {
		s.log.Warnf("archive search for %q failed: %v", query, err)
	} else {
		merged = append(merged, hits...)
	}

	live := NormalizeAll(sources.Flatten(sources.SearchAll(ctx, s.sources, query, s.log)))
	if len(live) > 0 {
		merged = append(merged, s.scorer.Score(ctx, Dedupe(live))...)
	}

	merged = Dedupe(merged)
	sortByScore(merged)
	if merged == nil {
		merged = []models.Article{}
	}

	resp := &models.SearchResponse{
		Query:    query,
		Count:    len(merged),
		Articles: merged,
	}
	cache.SetJSON(s.store, key, resp, s.ttl)
	return resp, nil
}

// cachedMatches filters the trending cache by case-insensitive title match.
func (s *Search) cachedMatches(query string) []models.Article {
	var trending []models.Article
	if !cache.GetJSON(s.store, cache.TrendingKey, &trending) {
		return nil
	}
	needle := strings.ToLower(query)
	var matches []models.Article
	for _, a := range trending {
		if strings.Contains(strings.ToLower(a.Title), needle) {
			matches = append(matches, a)
		}
	}
	return matches
}
