package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"5"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// SIGO backend
	BackendURL       string        `env:"BACKEND_URL"`
	BackendTimeout   time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`
	IdentityCacheTTL time.Duration `env:"IDENTITY_CACHE_TTL" envDefault:"0"`

	// Geocoding
	MapsProvider     string `env:"MAPS_PROVIDER" envDefault:"nominatim"`
	GoogleMapsAPIKey string `env:"GOOGLE_MAPS_API_KEY"`
	NominatimURL     string `env:"NOMINATIM_URL" envDefault:"https://nominatim.openstreetmap.org"`

	// Photos
	PhotoMaxDimension int `env:"PHOTO_MAX_DIMENSION" envDefault:"1280"`
	PhotoJPEGQuality  int `env:"PHOTO_JPEG_QUALITY" envDefault:"70"`

	// Offline export
	ShareProvider  string        `env:"SHARE_PROVIDER" envDefault:"local"`
	ShareLocalPath string        `env:"SHARE_LOCAL_PATH" envDefault:"./exports"`
	S3Region       string        `env:"AWS_S3_REGION"`
	S3Bucket       string        `env:"AWS_S3_BUCKET"`
	ShareURLTTL    time.Duration `env:"SHARE_URL_TTL" envDefault:"24h"`
	PDFTimeout     time.Duration `env:"PDF_TIMEOUT" envDefault:"30s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию сервера из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	return cfg, nil
}

// LoadCLIConfig загружает конфигурацию для sigo-cli, база данных не нужна
func LoadCLIConfig() (*Config, error) {
	return load()
}

func load() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 5),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		BackendURL:        os.Getenv("BACKEND_URL"),
		BackendTimeout:    getEnvAsDuration("BACKEND_TIMEOUT", 15*time.Second),
		IdentityCacheTTL:  getEnvAsDuration("IDENTITY_CACHE_TTL", 0),
		MapsProvider:      getEnv("MAPS_PROVIDER", "nominatim"),
		GoogleMapsAPIKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
		NominatimURL:      getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		PhotoMaxDimension: getEnvAsInt("PHOTO_MAX_DIMENSION", 1280),
		PhotoJPEGQuality:  getEnvAsInt("PHOTO_JPEG_QUALITY", 70),
		ShareProvider:     getEnv("SHARE_PROVIDER", "local"),
		ShareLocalPath:    getEnv("SHARE_LOCAL_PATH", "./exports"),
		S3Region:          os.Getenv("AWS_S3_REGION"),
		S3Bucket:          os.Getenv("AWS_S3_BUCKET"),
		ShareURLTTL:       getEnvAsDuration("SHARE_URL_TTL", 24*time.Hour),
		PDFTimeout:        getEnvAsDuration("PDF_TIMEOUT", 30*time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL environment variable is required")
	}
	if cfg.PhotoJPEGQuality < 1 || cfg.PhotoJPEGQuality > 100 {
		return nil, fmt.Errorf("PHOTO_JPEG_QUALITY must be between 1 and 100, got %d", cfg.PhotoJPEGQuality)
	}

	return cfg, nil
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
