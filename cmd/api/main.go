package main

import (
	"context"
	"log"
	"time"

	_ "github.com/pulsefeed/pulsefeed/docs"
	"github.com/pulsefeed/pulsefeed/internal/api/handlers"
	"github.com/pulsefeed/pulsefeed/internal/api/routes"
	"github.com/pulsefeed/pulsefeed/internal/archive"
	"github.com/pulsefeed/pulsefeed/internal/cache"
	"github.com/pulsefeed/pulsefeed/internal/config"
	"github.com/pulsefeed/pulsefeed/internal/logging"
	"github.com/pulsefeed/pulsefeed/internal/news"
	"github.com/pulsefeed/pulsefeed/internal/observability"
	"github.com/pulsefeed/pulsefeed/internal/scheduler"
	"github.com/pulsefeed/pulsefeed/internal/scorer"
	"github.com/pulsefeed/pulsefeed/internal/sources"
)

// @title           PulseFeed API
// @version         1.0
// @description     AI-scored tech news aggregation API. Fetches from multiple providers, scores articles in batches with an LLM, and serves trending, search and saved-article endpoints.

// @license.name  MIT

// @BasePath  /
func main() {
	cfg := config.Load()

	logger, err := logging.New("pulsefeed", logging.Options{
		Path:       cfg.LogFile,
		MaxSizeMB:  100,
		MaxBackups: 3,
		MaxAgeDays: 28,
		Level:      logging.ParseLevel(cfg.LogLevel),
	})
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	store := cache.NewMemory(cfg.CacheCapacity)
	cleanup := store.StartCleanupRoutine(5 * time.Minute)
	defer cleanup.Stop()

	ctx := context.Background()

	completer, err := scorer.NewCompleter(ctx, cfg)
	if err != nil {
		logger.Warnf("LLM backend unavailable, serving degraded scores: %v", err)
	}
	batchScorer := scorer.New(completer, cfg.ScorerBatchSize, time.Duration(cfg.ScorerTimeoutSec)*time.Second, logger)

	arc := archive.New(cfg, logger)
	if arc.Available() {
		if err := arc.EnsureCollection(ctx); err != nil {
			logger.Warnf("article archive unavailable: %v", err)
		}
	}

	srcs := sources.Build(cfg)
	logger.Infof("configured %d news sources", len(srcs))

	trendingTTL := time.Duration(cfg.TrendingTTLSec) * time.Second
	searchTTL := time.Duration(cfg.SearchTTLSec) * time.Second

	trending := news.NewTrending(srcs, batchScorer, store, arc, cfg.QualityThreshold, trendingTTL, logger)
	search := news.NewSearch(srcs, batchScorer, store, arc, searchTTL, logger)
	saved := news.NewSaved(store)

	cronJob, err := scheduler.Start(cfg.RefreshCron, trending, logger)
	if err != nil {
		logger.Errorf("scheduler init failed: %v", err)
	}
	defer scheduler.Stop(cronJob)

	h := handlers.NewTrendingHandler(trending, search, saved, logger)
	r := routes.SetupRouter(h)

	logger.Infof("server listening on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
