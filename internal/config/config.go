package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Media    MediaConfig
	Notifier NotifierConfig
	Telegram TelegramConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
	// APIPrefix is where the API is mounted; "/" serves it at the root.
	APIPrefix string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration. An empty URL disables idempotency keys.
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// MediaConfig controls where uploads are written and how they are addressed.
type MediaConfig struct {
	Root      string
	PublicURL string
}

// NotifierConfig tunes outbound chat notifications
type NotifierConfig struct {
	BaseURL   string
	Timeout   time.Duration
	Workers   int
	QueueSize int
}

// TelegramDestination is a bot token and chat id pair
type TelegramDestination struct {
	Token  string
	ChatID string
}

// TelegramConfig holds one destination per submission kind
type TelegramConfig struct {
	Career    TelegramDestination
	Contact   TelegramDestination
	CPU       TelegramDestination
	Hackathon TelegramDestination
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8000"),
			Env:            getEnv("SERVER_ENV", "development"),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			APIPrefix:      getEnv("API_PREFIX", "/api"),
		},
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnvAsInt("DB_PORT", 5432),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			DBName:      getEnv("DB_NAME", "corpsite"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		Media: MediaConfig{
			Root:      getEnv("MEDIA_ROOT", "./media"),
			PublicURL: getEnv("MEDIA_PUBLIC_URL", "http://localhost:8000/media/"),
		},
		Notifier: NotifierConfig{
			BaseURL:   getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
			Timeout:   getEnvAsDuration("NOTIFY_TIMEOUT", 5*time.Second),
			Workers:   getEnvAsInt("NOTIFY_WORKERS", 2),
			QueueSize: getEnvAsInt("NOTIFY_QUEUE_SIZE", 256),
		},
		Telegram: TelegramConfig{
			Career: TelegramDestination{
				Token:  getEnv("TELEGRAM_CAREER_BOT_TOKEN", ""),
				ChatID: getEnv("TELEGRAM_CAREER_CHAT_ID", ""),
			},
			Contact: TelegramDestination{
				Token:  getEnv("TELEGRAM_CONTACT_BOT_TOKEN", ""),
				ChatID: getEnv("TELEGRAM_CONTACT_CHAT_ID", ""),
			},
			CPU: TelegramDestination{
				Token:  getEnv("TELEGRAM_CPU_BOT_TOKEN", ""),
				ChatID: getEnv("TELEGRAM_CPU_CHAT_ID", ""),
			},
			Hackathon: TelegramDestination{
				Token:  getEnv("TELEGRAM_HACKATHON_TOKEN", ""),
				ChatID: getEnv("TELEGRAM_HACKATHON_ID", ""),
			},
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
