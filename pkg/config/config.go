package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the digest pipeline.
// Every environment variable is read here and nowhere else.
type Config struct {
	Env string // development, staging, production

	// Snapshot source (jsDelivr CDN)
	Snapshot SnapshotConfig

	// Digest behavior
	Digest DigestConfig

	// GitHub issue publishing
	GitHub GitHubConfig

	// Optional OpenAI thread forwarding
	OpenAI OpenAIConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// SnapshotConfig holds CDN snapshot source configuration
type SnapshotConfig struct {
	BaseURL        string
	Branch         string
	UserAgent      string
	TimeoutSeconds int
}

// DigestConfig holds the behavioral knobs that differed across the
// legacy digest script variants
type DigestConfig struct {
	StaleMinutes       int
	ManifestFieldOrder []string // manifest timestamp field names, tried in order
	EarningsWindowDays int
	MaxBuyCandidates   int
}

// GitHubConfig holds issue publishing configuration
type GitHubConfig struct {
	Token       string // GH_PAT preferred, GITHUB_TOKEN fallback
	Repository  string // "owner/repo"
	APIBaseURL  string
	IssueNumber int    // explicit issue wins over title lookup
	IssueTitle  string // empty means derived "Watchlist Digest — YYYY-MM"
	IssueLabels []string
	IssueLookup string // "list" or "search"
}

// OpenAIConfig holds the optional assistant-thread forward
type OpenAIConfig struct {
	APIKey      string
	ThreadID    string
	AssistantID string
}

// Load reads configuration from environment variables.
// Only this function calls os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		Snapshot: SnapshotConfig{
			BaseURL:        getEnv("CDN_BASE_URL", "https://cdn.jsdelivr.net/gh/vaibhavrajebhosale/us-swing-trade-management"),
			Branch:         getEnv("BRANCH", "Strategy_4_1"),
			UserAgent:      getEnv("GH_API_USER_AGENT", "us-swing-trade-bot/1.0"),
			TimeoutSeconds: getEnvAsInt("FETCH_TIMEOUT", 30),
		},

		Digest: DigestConfig{
			StaleMinutes:       getEnvAsInt("STALE_MINUTES", 120),
			ManifestFieldOrder: splitCSV(getEnv("MANIFEST_TS_FIELDS", "snapshot_iso,timestamp")),
			EarningsWindowDays: getEnvAsInt("EARNINGS_WINDOW_DAYS", 14),
			MaxBuyCandidates:   getEnvAsInt("MAX_BUY_CANDIDATES", 8),
		},

		GitHub: GitHubConfig{
			Token:       firstEnv("GH_PAT", "GITHUB_TOKEN"),
			Repository:  getEnv("GITHUB_REPOSITORY", ""),
			APIBaseURL:  getEnv("GITHUB_API_URL", "https://api.github.com"),
			IssueNumber: getEnvAsInt("ISSUE_NUMBER", 0),
			IssueTitle:  getEnv("ISSUE_TITLE", ""),
			IssueLabels: splitCSV(getEnv("ISSUE_LABELS", "digest,automation")),
			IssueLookup: getEnv("ISSUE_LOOKUP", "list"),
		},

		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			ThreadID:    getEnv("THREAD_ID", ""),
			AssistantID: getEnv("ASSISTANT_ID", ""),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks configuration consistency. Credentials are deliberately
// not required here: the digest is still built and printed without them,
// only the publish step needs the token and checks for it itself.
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Digest.StaleMinutes <= 0 {
		return fmt.Errorf("STALE_MINUTES must be positive")
	}

	if len(c.Digest.ManifestFieldOrder) == 0 {
		return fmt.Errorf("MANIFEST_TS_FIELDS must name at least one field")
	}

	if c.GitHub.IssueLookup != "list" && c.GitHub.IssueLookup != "search" {
		return fmt.Errorf("ISSUE_LOOKUP must be one of: list, search")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// firstEnv returns the first non-empty value among the named variables
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
