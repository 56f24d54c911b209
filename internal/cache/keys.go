package cache

import "strings"

// Key families. Trending is global, search is scoped per user and normalized
// query, saved is scoped per user.
const (
	TrendingKey  = "trending:filtered"
	searchPrefix = "search:"
	savedPrefix  = "saved:"
)

// SearchKey builds the per-user, per-query search cache key.
func SearchKey(userID, query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	return searchPrefix + userID + ":" + normalized
}

// SavedKey builds the per-user saved-articles key.
func SavedKey(userID string) string {
	return savedPrefix + userID
}
