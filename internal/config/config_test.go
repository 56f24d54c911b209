package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("port = %q, want 8080", cfg.ServerPort)
	}
	if cfg.ScorerBatchSize != 20 {
		t.Errorf("batch size = %d, want 20", cfg.ScorerBatchSize)
	}
	if cfg.QualityThreshold != 3 {
		t.Errorf("threshold = %d, want 3", cfg.QualityThreshold)
	}
	if cfg.TrendingTTLSec != 3600 || cfg.SearchTTLSec != 1800 {
		t.Errorf("ttls = %d/%d", cfg.TrendingTTLSec, cfg.SearchTTLSec)
	}
	if !cfg.Sources.HackerNews || !cfg.Sources.Reddit {
		t.Error("built-in sources should default on")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("QUALITY_THRESHOLD", "5")
	t.Setenv("LLM_PROVIDER", "groq")

	cfg := Load()

	if cfg.ServerPort != "9999" {
		t.Errorf("port = %q", cfg.ServerPort)
	}
	if cfg.QualityThreshold != 5 {
		t.Errorf("threshold = %d", cfg.QualityThreshold)
	}
	if cfg.LLMProvider != "groq" {
		t.Errorf("provider = %q", cfg.LLMProvider)
	}
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("CACHE_CAPACITY", "lots")

	cfg := Load()
	if cfg.CacheCapacity != 1000 {
		t.Errorf("capacity = %d, want default 1000", cfg.CacheCapacity)
	}
}

func TestLoadSourcesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	yaml := `hackernews: true
newsdata: false
gnews: false
reddit: true
feeds:
  - name: Go Blog
    url: https://go.dev/blog/feed.atom
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SOURCES_CONFIG", path)

	cfg := Load()

	if cfg.Sources.NewsData || cfg.Sources.GNews {
		t.Error("yaml should disable newsdata and gnews")
	}
	if !cfg.Sources.HackerNews || !cfg.Sources.Reddit {
		t.Error("yaml should keep hackernews and reddit on")
	}
	if len(cfg.Sources.Feeds) != 1 || cfg.Sources.Feeds[0].Name != "Go Blog" {
		t.Errorf("feeds = %+v", cfg.Sources.Feeds)
	}
}

func TestLoadMissingSourcesFileKeepsDefaults(t *testing.T) {
	t.Setenv("SOURCES_CONFIG", "/nonexistent/sources.yaml")

	cfg := Load()
	if !cfg.Sources.HackerNews {
		t.Error("unreadable file should fall back to built-ins")
	}
}
