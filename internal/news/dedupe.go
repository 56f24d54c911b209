package news

import (
	"github.com/pulsefeed/pulsefeed/internal/models"
	"github.com/pulsefeed/pulsefeed/internal/utils"
)

// Dedupe removes later articles whose folded title key was already seen, and
// drops articles with no usable title at all. Order is preserved, so whichever
// source listed an article first wins.
func Dedupe(articles []models.Article) []models.Article {
	seen := make(map[string]struct{}, len(articles))
	out := make([]models.Article, 0, len(articles))
	for _, article := range articles {
		key := utils.TitleKey(article.Title)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, article)
	}
	return out
}
