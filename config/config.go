package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	FrontendURL string
	// Storage
	StoreDriver       string
	SQLitePath        string
	DBUrl             string
	PostgresSlotTable string
	RedisURL          string
	RedisPassword     string
	RedisKeyPrefix    string
	// Search simulation
	SearchStageDelayScale float64 // 0 = no delay between stages
	MaxActiveSearches     int
	RateLimitPerMinute    int // searches and exports per client; 0 disables
	// Export
	ExportDialect string
}

func LoadConfig() (*Config, error) {
	// Load .env file when present; the real environment wins
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Storage
		StoreDriver:       strings.ToLower(getEnv("STORE_DRIVER", StoreSQLite)),
		SQLitePath:        getEnv("SQLITE_PATH", "talent.db"),
		DBUrl:             getEnv("DATABASE_URL", ""),
		PostgresSlotTable: getEnv("POSTGRES_SLOT_TABLE", "kv_slots"),
		RedisURL:          getEnv("REDIS_URL", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisKeyPrefix:    getEnv("REDIS_KEY_PREFIX", "talent:"),
		// Search simulation
		SearchStageDelayScale: getEnvFloat("SEARCH_STAGE_DELAY_SCALE", 1.0),
		MaxActiveSearches:     getEnvInt("MAX_ACTIVE_SEARCHES", 16),
		RateLimitPerMinute:    getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		// Export
		ExportDialect: strings.ToLower(getEnv("EXPORT_DIALECT", "json")),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvFloat returns a float environment variable or fallback if not set/invalid
func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil && floatVal >= 0 {
			return floatVal
		}
	}
	return fallback
}
