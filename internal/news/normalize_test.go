package news

import (
	"testing"
	"time"

	"github.com/pulsefeed/pulsefeed/internal/models"
)

func TestNormalizeFieldPriorities(t *testing.T) {
	tests := []struct {
		name     string
		item     models.RawItem
		wantOK   bool
		wantArt  models.Article
		skipTime bool
	}{
		{
			name:   "title beats headline",
			item:   models.RawItem{Title: "primary", Headline: "secondary", URL: "https://x.test/a", Description: "d"},
			wantOK: true,
			wantArt: models.Article{
				Title: "primary", Description: "d", Link: "https://x.test/a", Source: "Unknown",
			},
		},
		{
			name:   "headline used when title empty",
			item:   models.RawItem{Headline: "secondary", Link: "https://x.test/b", Snippet: "s"},
			wantOK: true,
			wantArt: models.Article{
				Title: "secondary", Description: "s", Link: "https://x.test/b", Source: "Unknown",
			},
		},
		{
			name:   "link beats url",
			item:   models.RawItem{Title: "t", Link: "https://x.test/link", URL: "https://x.test/url", Description: "d"},
			wantOK: true,
			wantArt: models.Article{
				Title: "t", Description: "d", Link: "https://x.test/link", Source: "Unknown",
			},
		},
		{
			name:   "missing description synthesized from title",
			item:   models.RawItem{Title: "Big Launch", URL: "https://x.test/c", Source: "GNews"},
			wantOK: true,
			wantArt: models.Article{
				Title: "Big Launch", Description: "Article about: Big Launch", Link: "https://x.test/c", Source: "GNews",
			},
		},
		{
			name:   "permalink joined onto reddit base",
			item:   models.RawItem{Title: "post", Permalink: "/r/golang/comments/1/post/", Source: "Reddit"},
			wantOK: true,
			wantArt: models.Article{
				Title: "post", Description: "Article about: post", Link: "https://www.reddit.com/r/golang/comments/1/post/", Source: "Reddit",
			},
		},
		{
			name:   "missing title drops item",
			item:   models.RawItem{URL: "https://x.test/d", Description: "d"},
			wantOK: false,
		},
		{
			name:   "missing link drops item",
			item:   models.RawItem{Title: "t", Description: "d"},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.item)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Title != tt.wantArt.Title {
				t.Errorf("title = %q, want %q", got.Title, tt.wantArt.Title)
			}
			if got.Description != tt.wantArt.Description {
				t.Errorf("description = %q, want %q", got.Description, tt.wantArt.Description)
			}
			if got.Link != tt.wantArt.Link {
				t.Errorf("link = %q, want %q", got.Link, tt.wantArt.Link)
			}
			if got.Source != tt.wantArt.Source {
				t.Errorf("source = %q, want %q", got.Source, tt.wantArt.Source)
			}
			if got.Status != models.ScoreStatusUnscored {
				t.Errorf("status = %q, want unscored", got.Status)
			}
			if got.AIScore != models.DefaultScore {
				t.Errorf("ai score = %d, want %d", got.AIScore, models.DefaultScore)
			}
		})
	}
}

func TestNormalizeStripsHTMLDescription(t *testing.T) {
	item := models.RawItem{
		Title:       "t",
		URL:         "https://x.test/e",
		Description: "<p>clean <b>me</b></p>",
	}
	got, ok := Normalize(item)
	if !ok {
		t.Fatal("expected item to normalize")
	}
	if got.Description != "clean me" {
		t.Errorf("description = %q, want %q", got.Description, "clean me")
	}
}

func TestNormalizeTimestamps(t *testing.T) {
	t.Run("epoch seconds", func(t *testing.T) {
		got, ok := Normalize(models.RawItem{Title: "t", URL: "https://x.test/f", Description: "d", PublishedUnix: 1700000000})
		if !ok || got.PublishedAt == nil {
			t.Fatal("expected published time")
		}
		if got.PublishedAt.Unix() != 1700000000 {
			t.Errorf("unix = %d", got.PublishedAt.Unix())
		}
	})

	t.Run("rfc3339 string", func(t *testing.T) {
		got, ok := Normalize(models.RawItem{Title: "t", URL: "https://x.test/g", Description: "d", PublishedAt: "2025-06-01T12:00:00Z"})
		if !ok || got.PublishedAt == nil {
			t.Fatal("expected published time")
		}
		want := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		if !got.PublishedAt.Equal(want) {
			t.Errorf("time = %v, want %v", got.PublishedAt, want)
		}
	})

	t.Run("newsdata layout", func(t *testing.T) {
		got, ok := Normalize(models.RawItem{Title: "t", URL: "https://x.test/h", Description: "d", PublishedAt: "2025-06-01 12:00:00"})
		if !ok || got.PublishedAt == nil {
			t.Fatal("expected published time")
		}
	})

	t.Run("garbage is nil", func(t *testing.T) {
		got, ok := Normalize(models.RawItem{Title: "t", URL: "https://x.test/i", Description: "d", PublishedAt: "yesterday-ish"})
		if !ok {
			t.Fatal("expected item to normalize")
		}
		if got.PublishedAt != nil {
			t.Errorf("time = %v, want nil", got.PublishedAt)
		}
	})
}

func TestNormalizeAllDropsUnusable(t *testing.T) {
	items := []models.RawItem{
		{Title: "one", URL: "https://x.test/1", Description: "d"},
		{Description: "no title or link"},
		{Title: "two", URL: "https://x.test/2", Description: "d"},
	}
	got := NormalizeAll(items)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Title != "one" || got[1].Title != "two" {
		t.Errorf("order not preserved: %v", got)
	}
}
