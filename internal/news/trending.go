package news

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pulsefeed/pulsefeed/internal/archive"
	"github.com/pulsefeed/pulsefeed/internal/cache"
	"github.com/pulsefeed/pulsefeed/internal/logging"
	"github.com/pulsefeed/pulsefeed/internal/models"
	"github.com/pulsefeed/pulsefeed/internal/scorer"
	"github.com/pulsefeed/pulsefeed/internal/sources"
)

// At most this many deduplicated articles go to the scorer per refresh; one
// completion call covers them all.
const trendingBatchLimit = 20

// Trending owns the aggregate-score-filter pipeline behind /trending. The
// filtered list lives in the cache under one key and is replaced wholesale on
// every refresh; reads only slice it.
type Trending struct {
	sources   []sources.Source
	scorer    *scorer.BatchScorer
	store     cache.Store
	archive   *archive.Archive
	log       *logging.Logger
	threshold int
	ttl       time.Duration

	// Serializes refreshes so concurrent cold reads trigger one fetch.
	refreshMu sync.Mutex
}

func NewTrending(srcs []sources.Source, sc *scorer.BatchScorer, store cache.Store, arc *archive.Archive, threshold int, ttl time.Duration, log *logging.Logger) *Trending {
	return &Trending{
		sources:   srcs,
		scorer:    sc,
		store:     store,
		archive:   arc,
		log:       log,
		threshold: threshold,
		ttl:       ttl,
	}
}

// Get serves one page of the cached trending list, refreshing first on a
// cache miss. An empty filtered list is data, not an error; only a fully
// failed refresh surfaces as one.
func (t *Trending) Get(ctx context.Context, page, limit int) (*models.TrendingResponse, error) {
	articles, ok := t.cached()
	if !ok {
		if err := t.Refresh(ctx); err != nil {
			return nil, err
		}
		articles, _ = t.cached()
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start, end, hasMore := models.NewPagination(page, limit, len(articles))
	if articles == nil {
		articles = []models.Article{}
	}

	return &models.TrendingResponse{
		Count:    len(articles),
		Page:     page,
		Limit:    limit,
		HasMore:  hasMore,
		Articles: articles[start:end],
	}, nil
}

// Refresh runs the full pipeline: fan out to every source, normalize, dedup,
// score one batch, filter by threshold, sort, and replace the cached list.
func (t *Trending) Refresh(ctx context.Context) error {
	t.refreshMu.Lock()
	defer t.refreshMu.Unlock()

	if len(t.sources) == 0 {
		return models.ErrNoSources
	}

	results := sources.FetchAll(ctx, t.sources, t.log)
	raw := sources.Flatten(results)
	if len(raw) == 0 {
		return models.ErrNoData
	}

	articles := Dedupe(NormalizeAll(raw))
	if len(articles) > trendingBatchLimit {
		articles = articles[:trendingBatchLimit]
	}

	scored := t.scorer.Score(ctx, articles)

	filtered := make([]models.Article, 0, len(scored))
	for _, a := range scored {
		if a.AIScore >= t.threshold {
			filtered = append(filtered, a)
		}
	}
	sortByScore(filtered)

	cache.SetJSON(t.store, cache.TrendingKey, filtered, t.ttl)
	t.log.Infof("trending refresh: %d raw, %d deduped, %d kept (threshold %d)",
		len(raw), len(articles), len(filtered), t.threshold)

	// Archiving is best-effort and off the serving path.
	go t.archive.Upsert(context.WithoutCancel(ctx), scored)

	return nil
}

func (t *Trending) cached() ([]models.Article, bool) {
	var articles []models.Article
	ok := cache.GetJSON(t.store, cache.TrendingKey, &articles)
	return articles, ok
}

// sortByScore orders descending by score. The sort is stable so equal scores
// keep their aggregation order.
func sortByScore(articles []models.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].AIScore > articles[j].AIScore
	})
}
