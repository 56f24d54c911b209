// Package config loads application settings from environment variables.
//
// # Environment variables
//
// ## Server
//   - SERVER_PORT: HTTP listen port (default: 8080)
//   - LOG_LEVEL: DEBUG/INFO/WARN/ERROR (default: INFO)
//   - LOG_FILE: rotated log file path; empty logs to stdout only
//
// ## Providers
//   - NEWSDATA_API_KEY: newsdata.io key; adapter disabled when empty
//   - GNEWS_API_KEY: gnews.io key; adapter disabled when empty
//   - REDDIT_SUBREDDIT: subreddit to pull top posts from (default: technology)
//   - SOURCES_CONFIG: optional YAML file adding RSS feeds and toggling adapters
//   - FETCH_TIMEOUT_SECONDS: per-adapter HTTP timeout (default: 10)
//
// ## AI scoring
//   - LLM_PROVIDER: gemini or groq (default: gemini)
//   - GEMINI_API_KEY: Google Gemini key
//   - GEMINI_CHAT_MODEL: chat model (default: gemini-2.0-flash)
//   - GROQ_API_KEY: Groq key (OpenAI-compatible API)
//   - GROQ_MODEL: Groq model (default: llama-3.1-8b-instant)
//   - GROQ_BASE_URL: API base (default: https://api.groq.com/openai/v1)
//   - SCORER_BATCH_SIZE: max articles per scoring call (default: 20)
//   - SCORER_TIMEOUT_SECONDS: completion call timeout (default: 30)
//   - QUALITY_THRESHOLD: minimum ai_score served (default: 3)
//
// ## Cache
//   - CACHE_CAPACITY: max in-memory entries (default: 1000)
//   - TRENDING_TTL_SECONDS: trending cache TTL (default: 3600)
//   - SEARCH_TTL_SECONDS: per-query search cache TTL (default: 1800)
//
// ## Archive (Typesense)
//   - TYPESENSE_HOST / TYPESENSE_PORT / TYPESENSE_PROTOCOL / TYPESENSE_API_KEY:
//     article archive server; archive disabled when the key is empty
//   - TYPESENSE_COLLECTION: collection name (default: pulsefeed_articles)
//
// ## Background refresh
//   - REFRESH_CRON: cron expression for trending refresh; empty disables it
//
// ## Tracing
//   - TRACING_ENABLED: true/false (default: false)
//   - TRACING_ENDPOINT: OTLP gRPC endpoint (default: localhost:4317)
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every runtime setting.
type Config struct {
	ServerPort string
	LogLevel   string
	LogFile    string

	NewsDataAPIKey  string
	GNewsAPIKey     string
	RedditSubreddit string
	FetchTimeoutSec int

	LLMProvider      string
	GeminiAPIKey     string
	GeminiChatModel  string
	GroqAPIKey       string
	GroqModel        string
	GroqBaseURL      string
	ScorerBatchSize  int
	ScorerTimeoutSec int
	QualityThreshold int

	CacheCapacity  int
	TrendingTTLSec int
	SearchTTLSec   int

	TypesenseHost       string
	TypesensePort       string
	TypesenseProtocol   string
	TypesenseAPIKey     string
	TypesenseCollection string

	RefreshCron string

	TracingEnabled  bool
	TracingEndpoint string

	Sources SourcesConfig
}

// SourcesConfig describes the configurable adapter set. Built-in adapters are
// on by default; the YAML file can disable them and add RSS feeds.
type SourcesConfig struct {
	HackerNews bool         `yaml:"hackernews"`
	NewsData   bool         `yaml:"newsdata"`
	GNews      bool         `yaml:"gnews"`
	Reddit     bool         `yaml:"reddit"`
	Feeds      []FeedConfig `yaml:"feeds"`
}

// FeedConfig is one RSS/Atom feed served by the RSS adapter.
type FeedConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Load reads .env (if present), the environment, and the optional YAML
// source list.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "INFO"),
		LogFile:    getEnv("LOG_FILE", ""),

		NewsDataAPIKey:  getEnv("NEWSDATA_API_KEY", ""),
		GNewsAPIKey:     getEnv("GNEWS_API_KEY", ""),
		RedditSubreddit: getEnv("REDDIT_SUBREDDIT", "technology"),
		FetchTimeoutSec: getEnvInt("FETCH_TIMEOUT_SECONDS", 10),

		LLMProvider:      getEnv("LLM_PROVIDER", "gemini"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiChatModel:  getEnv("GEMINI_CHAT_MODEL", "gemini-2.0-flash"),
		GroqAPIKey:       getEnv("GROQ_API_KEY", ""),
		GroqModel:        getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
		GroqBaseURL:      getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		ScorerBatchSize:  getEnvInt("SCORER_BATCH_SIZE", 20),
		ScorerTimeoutSec: getEnvInt("SCORER_TIMEOUT_SECONDS", 30),
		QualityThreshold: getEnvInt("QUALITY_THRESHOLD", 3),

		CacheCapacity:  getEnvInt("CACHE_CAPACITY", 1000),
		TrendingTTLSec: getEnvInt("TRENDING_TTL_SECONDS", 3600),
		SearchTTLSec:   getEnvInt("SEARCH_TTL_SECONDS", 1800),

		TypesenseHost:       getEnv("TYPESENSE_HOST", "localhost"),
		TypesensePort:       getEnv("TYPESENSE_PORT", "8108"),
		TypesenseProtocol:   getEnv("TYPESENSE_PROTOCOL", "http"),
		TypesenseAPIKey:     getEnv("TYPESENSE_API_KEY", ""),
		TypesenseCollection: getEnv("TYPESENSE_COLLECTION", "pulsefeed_articles"),

		RefreshCron: getEnv("REFRESH_CRON", "@every 1h"),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),

		Sources: SourcesConfig{
			HackerNews: true,
			NewsData:   true,
			GNews:      true,
			Reddit:     true,
		},
	}

	if path := os.Getenv("SOURCES_CONFIG"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Printf("config: cannot read %s: %v (using built-in sources)", path, err)
		} else if err := yaml.Unmarshal(raw, &cfg.Sources); err != nil {
			log.Printf("config: cannot parse %s: %v (using built-in sources)", path, err)
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
