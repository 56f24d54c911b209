package sources

import (
	"context"
	"sync"

	"github.com/pulsefeed/pulsefeed/internal/logging"
	"github.com/pulsefeed/pulsefeed/internal/models"
)

// Result is the settled outcome for one source. Exactly one of Items or Err
// is meaningful.
type Result struct {
	Source string
	Items  []models.RawItem
	Err    error
}

// FetchAll runs every source concurrently and waits for all of them to settle.
// A failing source yields a Result with Err set; it never aborts the batch.
// Results come back in source order so downstream merging is deterministic.
func FetchAll(ctx context.Context, srcs []Source, log *logging.Logger) []Result {
	results := make([]Result, len(srcs))

	var wg sync.WaitGroup
	for i, src := range srcs {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			items, err := src.Fetch(ctx)
			results[i] = Result{Source: src.Name(), Items: items, Err: err}
		}(i, src)
	}
	wg.Wait()

	for _, r := range results {
		if r.Err != nil {
			log.Warnf("source %s failed: %v", r.Source, r.Err)
		} else {
			log.Infof("source %s returned %d items", r.Source, len(r.Items))
		}
	}
	return results
}

// SearchAll runs a live keyword query against every source that supports one.
// Same settle-all contract as FetchAll.
func SearchAll(ctx context.Context, srcs []Source, query string, log *logging.Logger) []Result {
	var searchers []Searcher
	for _, src := range srcs {
		if s, ok := src.(Searcher); ok {
			searchers = append(searchers, s)
		}
	}

	results := make([]Result, len(searchers))

	var wg sync.WaitGroup
	for i, src := range searchers {
		wg.Add(1)
		go func(i int, src Searcher) {
			defer wg.Done()
			items, err := src.Search(ctx, query)
			results[i] = Result{Source: src.Name(), Items: items, Err: err}
		}(i, src)
	}
	wg.Wait()

	for _, r := range results {
		if r.Err != nil {
			log.Warnf("source %s search failed: %v", r.Source, r.Err)
		}
	}
	return results
}

// Flatten concatenates the successful results in order.
func Flatten(results []Result) []models.RawItem {
	var items []models.RawItem
	for _, r := range results {
		if r.Err == nil {
			items = append(items, r.Items...)
		}
	}
	return items
}
