package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pulsefeed/pulsefeed/internal/api/handlers"
	"github.com/pulsefeed/pulsefeed/internal/api/routes"
	"github.com/pulsefeed/pulsefeed/internal/cache"
	"github.com/pulsefeed/pulsefeed/internal/logging"
	"github.com/pulsefeed/pulsefeed/internal/models"
	"github.com/pulsefeed/pulsefeed/internal/news"
	"github.com/pulsefeed/pulsefeed/internal/scorer"
	"github.com/pulsefeed/pulsefeed/internal/sources"
)

type stubSource struct {
	items []models.RawItem
	err   error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Fetch(context.Context) ([]models.RawItem, error) {
	return s.items, s.err
}

// stubCompleter scores every article in the prompt with a fixed value.
type stubCompleter struct{ score int }

func (s *stubCompleter) Name() string { return "stub" }

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	n := strings.Count(prompt, "[ID: ")
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, fmt.Sprintf(
			`{"id":%d,"score":%d,"summary":"s","category":"AI/ML","sentiment":"Neutral"}`, i, s.score))
	}
	return `{"results":[` + strings.Join(parts, ",") + `]}`, nil
}

func newTestRouter(srcs []sources.Source) (*gin.Engine, cache.Store) {
	gin.SetMode(gin.TestMode)

	log := logging.Discard()
	store := cache.NewMemory(100)
	sc := scorer.New(&stubCompleter{score: 7}, 20, 0, log)

	trending := news.NewTrending(srcs, sc, store, nil, 3, time.Hour, log)
	search := news.NewSearch(srcs, sc, store, nil, 30*time.Minute, log)
	saved := news.NewSaved(store)

	h := handlers.NewTrendingHandler(trending, search, saved, log)
	return routes.SetupRouter(h), store
}

func doRequest(r *gin.Engine, method, path, userID string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetTrendingOK(t *testing.T) {
	src := &stubSource{items: []models.RawItem{
		{Title: "story one", URL: "https://x.test/1", Description: "d"},
		{Title: "story two", URL: "https://x.test/2", Description: "d"},
	}}
	r, _ := newTestRouter([]sources.Source{src})

	w := doRequest(r, http.MethodGet, "/api/v1/trending?page=1&limit=10", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp models.TrendingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if resp.Count != 2 || len(resp.Articles) != 2 {
		t.Errorf("resp = %+v", resp)
	}
	if resp.Articles[0].AIScore != 7 {
		t.Errorf("score = %d, want 7", resp.Articles[0].AIScore)
	}
}

func TestGetTrendingNotFoundWhenSourcesFail(t *testing.T) {
	src := &stubSource{err: fmt.Errorf("upstream down")}
	r, _ := newTestRouter([]sources.Source{src})

	w := doRequest(r, http.MethodGet, "/api/v1/trending", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestSearchRequiresQueryParam(t *testing.T) {
	r, _ := newTestRouter(nil)

	w := doRequest(r, http.MethodGet, "/api/v1/trending/search", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSearchServesCachedTrendingMatches(t *testing.T) {
	r, store := newTestRouter(nil)
	cache.SetJSON(store, cache.TrendingKey, []models.Article{
		{Title: "Rust rewrite finished", Link: "https://c.test/1", AIScore: 8},
	}, 0)

	w := doRequest(r, http.MethodGet, "/api/v1/trending/search?q=rust", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp models.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if resp.Count != 1 || resp.Articles[0].Title != "Rust rewrite finished" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestSaveAndListRoundTrip(t *testing.T) {
	r, _ := newTestRouter(nil)

	body, _ := json.Marshal(models.SaveRequest{Article: models.Article{
		Title: "keeper", Description: "d", Link: "https://x.test/keep",
	}})

	w := doRequest(r, http.MethodPost, "/api/v1/trending/save", "alice", body)
	if w.Code != http.StatusOK {
		t.Fatalf("save status = %d, body = %s", w.Code, w.Body.String())
	}

	// Same link again is a no-op.
	w = doRequest(r, http.MethodPost, "/api/v1/trending/save", "alice", body)
	var save models.SaveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &save); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if save.Message != "Article already saved." || save.Count != 1 {
		t.Errorf("save = %+v", save)
	}

	w = doRequest(r, http.MethodGet, "/api/v1/trending/saved", "alice", nil)
	var saved models.SavedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if saved.Count != 1 || saved.Articles[0].Link != "https://x.test/keep" {
		t.Errorf("saved = %+v", saved)
	}

	// Another user sees an empty list.
	w = doRequest(r, http.MethodGet, "/api/v1/trending/saved", "bob", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if saved.Count != 0 {
		t.Errorf("bob count = %d, want 0", saved.Count)
	}
}

func TestSaveRejectsInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing link", `{"article":{"title":"no link","description":"d"}}`},
		{"missing title", `{"article":{"description":"d","link":"https://x.test/nt"}}`},
		{"missing description", `{"article":{"title":"no description","link":"https://x.test/nd"}}`},
		{"not json", `not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter(nil)

			w := doRequest(r, http.MethodPost, "/api/v1/trending/save", "alice", []byte(tt.body))
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}

			// Nothing invalid may land in the saved cache.
			w = doRequest(r, http.MethodGet, "/api/v1/trending/saved", "alice", nil)
			var saved models.SavedResponse
			if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
				t.Fatalf("bad JSON: %v", err)
			}
			if saved.Count != 0 {
				t.Errorf("saved count = %d, want 0", saved.Count)
			}
		})
	}
}

func TestMissingUserHeaderDefaultsToAnonymous(t *testing.T) {
	r, _ := newTestRouter(nil)

	body, _ := json.Marshal(models.SaveRequest{Article: models.Article{
		Title: "anon", Description: "d", Link: "https://x.test/anon",
	}})
	doRequest(r, http.MethodPost, "/api/v1/trending/save", "", body)

	w := doRequest(r, http.MethodGet, "/api/v1/trending/saved", "anonymous", nil)
	var saved models.SavedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if saved.Count != 1 {
		t.Errorf("count = %d, want 1", saved.Count)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	r, _ := newTestRouter(nil)

	w := doRequest(r, http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID response header")
	}
}
