package config

import (
	"log"
	"os"
	"slices"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	DatabaseDSN   string
	AppEnv        string
	IsStaging     bool
	IsProduction  bool
	// IsOpenAIEnabled gates calls to the completion API (env: "1" or "0")
	IsOpenAIEnabled bool

	JWTSecret string
	Port      string

	// runtime tunables
	RateLimitWindowSeconds int
	RateLimitCapacity      int
	HistoryWindow          int
	MaxCompletionTokens    int
	FreeDailyMessageLimit  int
	// ScopeHistoryByUser switches chat history from one shared stream per
	// mode to per-user streams. Off by default to match the original
	// shared-history behavior.
	ScopeHistoryByUser bool
)

// loadAppEnv loads .env only outside production; production deployments are
// expected to carry real environment variables.
func loadAppEnv() {
	AppEnv = os.Getenv("APP_ENV")
	if AppEnv == "production" {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Printf("[config] no .env file loaded: %v", err)
	}
}

func init() {
	loadAppEnv()

	OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	OpenAIBaseURL = os.Getenv("OPENAI_BASE_URL")
	OpenAIModel = os.Getenv("OPENAI_MODEL")
	DatabaseDSN = os.Getenv("DATABASE_DSN")

	AppEnv = os.Getenv("APP_ENV")
	if AppEnv == "" {
		AppEnv = "staging"
	}
	if !slices.Contains([]string{"staging", "production"}, AppEnv) {
		log.Fatal("environment variable APP_ENV must be 'staging' or 'production'")
	}
	IsStaging = AppEnv == "staging"
	IsProduction = AppEnv == "production"

	IsOpenAIEnabled = os.Getenv("IS_OPENAI_ENABLED") == "1"

	if OpenAIBaseURL == "" {
		OpenAIBaseURL = "https://api.openai.com/v1"
	}
	if OpenAIModel == "" {
		OpenAIModel = "gpt-4o"
	}

	JWTSecret = os.Getenv("JWT_SECRET_KEY")
	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "5000"
	}

	RateLimitWindowSeconds = atoiOr(os.Getenv("RATE_LIMIT_WINDOW_SECONDS"), 10)
	RateLimitCapacity = atoiOr(os.Getenv("RATE_LIMIT_CAPACITY"), 5)
	HistoryWindow = atoiOr(os.Getenv("HISTORY_WINDOW"), 4)
	MaxCompletionTokens = atoiOr(os.Getenv("MAX_COMPLETION_TOKENS"), 500)
	FreeDailyMessageLimit = atoiOr(os.Getenv("FREE_DAILY_MESSAGE_LIMIT"), 50)
	ScopeHistoryByUser = os.Getenv("SCOPE_HISTORY_BY_USER") == "1"

	if IsProduction && JWTSecret == "" {
		log.Fatal("JWT_SECRET_KEY must be set in production")
	}

	log.Printf("[config] AppEnv=%s IsStaging=%v IsProduction=%v", AppEnv, IsStaging, IsProduction)
	log.Printf("[config] IsOpenAIEnabled=%v OpenAIAPIKeyPresent=%v OpenAIModel=%s", IsOpenAIEnabled, OpenAIAPIKey != "", OpenAIModel)
	log.Printf("[config] RateLimit window=%ds capacity=%d historyWindow=%d maxTokens=%d scopeByUser=%v",
		RateLimitWindowSeconds, RateLimitCapacity, HistoryWindow, MaxCompletionTokens, ScopeHistoryByUser)
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
