package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL     string        `env:"DATABASE_URL" validate:"required"`
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"8080" validate:"required,numeric"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release" validate:"oneof=debug release test"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s" validate:"gt=0"`

	// Redis Config
	RedisAddr string        `env:"REDIS_ADDR" envDefault:"localhost:6379" validate:"required"`
	RedisPass string        `env:"REDIS_PASSWORD"`
	RedisDB   int           `env:"REDIS_DB" envDefault:"0" validate:"min=0"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"5m" validate:"gt=0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL" validate:"omitempty,url"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s" validate:"gt=0"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3" validate:"min=1"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s" validate:"gt=0"`
	EventPollTimeout  time.Duration `env:"EVENT_POLL_TIMEOUT" envDefault:"1s" validate:"gte=1s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		GinMode:           getEnv("GIN_MODE", "release"),
		ShutdownTimeout:   getEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		CacheTTL:          getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		EventPollTimeout:  getEnvAsDuration("EVENT_POLL_TIMEOUT", time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации по тегам validate
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
