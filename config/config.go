package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	DBPath        string
	CORSOrigins   string
	RateLimitMax  int
	LogLevel      string
	LogFormat     string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

// Load reads .env (when present) and the environment into a new Config
func Load() *Config {
	_ = godotenv.Load()

	env := GetEnv("ENV", "development")

	defaultFormat := "text"
	if env == "production" {
		defaultFormat = "json"
	}

	return &Config{
		Port:          GetEnv("PORT", "3000"),
		Env:           env,
		DBPath:        GetEnv("DB_PATH", "tasks.db"),
		CORSOrigins:   GetEnv("CORS_ORIGINS", "*"),
		RateLimitMax:  GetEnvInt("RATE_LIMIT_MAX", 200),
		LogLevel:      GetEnv("LOG_LEVEL", "info"),
		LogFormat:     GetEnv("LOG_FORMAT", defaultFormat),
		LogFile:       GetEnv("LOG_FILE", ""),
		LogMaxSizeMB:  GetEnvInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups: GetEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: GetEnvInt("LOG_MAX_AGE_DAYS", 30),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt returns defaultValue when key is unset or not an integer
func GetEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
