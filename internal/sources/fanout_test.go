package sources

import (
	"context"
	"errors"
	"testing"

	"github.com/pulsefeed/pulsefeed/internal/logging"
	"github.com/pulsefeed/pulsefeed/internal/models"
)

type staticSource struct {
	name  string
	items []models.RawItem
	err   error
}

func (s *staticSource) Name() string { return s.name }

func (s *staticSource) Fetch(context.Context) ([]models.RawItem, error) {
	return s.items, s.err
}

type staticSearcher struct {
	staticSource
}

func (s *staticSearcher) Search(context.Context, string) ([]models.RawItem, error) {
	return s.items, s.err
}

func TestFetchAllSettlesEverySource(t *testing.T) {
	srcs := []Source{
		&staticSource{name: "a", items: []models.RawItem{{Title: "1"}}},
		&staticSource{name: "b", err: errors.New("down")},
		&staticSource{name: "c", items: []models.RawItem{{Title: "2"}, {Title: "3"}}},
	}

	results := FetchAll(context.Background(), srcs, logging.Discard())

	if len(results) != 3 {
		t.Fatalf("results = %d, want one per source", len(results))
	}
	// Results keep source order regardless of goroutine completion order.
	for i, want := range []string{"a", "b", "c"} {
		if results[i].Source != want {
			t.Errorf("results[%d].Source = %q, want %q", i, results[i].Source, want)
		}
	}
	if results[1].Err == nil {
		t.Error("expected error for source b")
	}

	flat := Flatten(results)
	if len(flat) != 3 {
		t.Errorf("flattened = %d, want 3 items from the healthy sources", len(flat))
	}
	if flat[0].Title != "1" || flat[1].Title != "2" || flat[2].Title != "3" {
		t.Errorf("flatten order wrong: %v", flat)
	}
}

func TestSearchAllSkipsNonSearchers(t *testing.T) {
	srcs := []Source{
		&staticSource{name: "fetch-only", items: []models.RawItem{{Title: "x"}}},
		&staticSearcher{staticSource{name: "searchable", items: []models.RawItem{{Title: "y"}}}},
	}

	results := SearchAll(context.Background(), srcs, "query", logging.Discard())

	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Source != "searchable" {
		t.Errorf("source = %q", results[0].Source)
	}
}
