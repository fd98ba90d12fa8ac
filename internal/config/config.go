package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	LLM      LLMConfig
	Scrape   ScrapeConfig
	Cache    CacheConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type LLMConfig struct {
	Provider      string // "openai" or "ollama"
	Model         string
	APIKey        string
	BaseURL       string // optional override for OpenAI-compatible endpoints
	OllamaBaseURL string
}

type ScrapeConfig struct {
	Domain             string
	Timeout            time.Duration
	MinRequestInterval time.Duration
	MaxChunkSize       int
	MaxContextTokens   int
}

type CacheConfig struct {
	Backend  string // "memory", "redis" or "database"
	RedisURL string
	TTL      time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3001"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		LLM: LLMConfig{
			Provider:      getEnv("LLM_PROVIDER", "openai"),
			Model:         getEnv("LLM_MODEL", "gpt-4o-mini"),
			APIKey:        getEnv("OPENAI_API_KEY", ""),
			BaseURL:       getEnv("OPENAI_BASE_URL", ""),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Scrape: ScrapeConfig{
			Domain:             getEnv("SCRAPE_DOMAIN", "www.fs.usda.gov"),
			Timeout:            getEnvAsDuration("SCRAPE_TIMEOUT", 10*time.Second),
			MinRequestInterval: getEnvAsDuration("SCRAPE_MIN_INTERVAL", time.Second),
			MaxChunkSize:       getEnvAsInt("CHUNK_MAX_SIZE", 1500),
			MaxContextTokens:   getEnvAsInt("CONTEXT_MAX_TOKENS", 6000),
		},
		Cache: CacheConfig{
			Backend:  getEnv("CACHE_BACKEND", "memory"),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
			TTL:      getEnvAsDuration("CACHE_TTL", 24*time.Hour),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
