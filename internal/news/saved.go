package news

import (
	"sync"

	"github.com/pulsefeed/pulsefeed/internal/cache"
	"github.com/pulsefeed/pulsefeed/internal/models"
)

// Saved keeps per-user reading lists in the cache with no expiry. The mutex
// makes the read-modify-write of a save atomic within this process; with the
// in-memory store there is no other writer.
type Saved struct {
	store cache.Store
	mu    sync.Mutex
}

func NewSaved(store cache.Store) *Saved {
	return &Saved{store: store}
}

// Save appends the article to the user's list unless an article with the
// same link is already there. Saving is idempotent by link.
func (s *Saved) Save(userID string, article models.Article) *models.SaveResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := cache.SavedKey(userID)
	var saved []models.Article
	cache.GetJSON(s.store, key, &saved)

	for _, existing := range saved {
		if existing.Link == article.Link {
			return &models.SaveResponse{Message: "Article already saved.", Count: len(saved)}
		}
	}

	saved = append(saved, article)
	cache.SetJSON(s.store, key, saved, 0)
	return &models.SaveResponse{Message: "Article saved.", Count: len(saved)}
}

// List returns the user's saved articles in save order.
func (s *Saved) List(userID string) *models.SavedResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	var saved []models.Article
	cache.GetJSON(s.store, cache.SavedKey(userID), &saved)
	if saved == nil {
		saved = []models.Article{}
	}
	return &models.SavedResponse{Count: len(saved), Articles: saved}
}
