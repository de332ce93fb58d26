package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddress string
	Database    DatabaseConfig
	Auth        AuthConfig
	Scheduler   SchedulerConfig
	Events      EventsConfig
	Analytics   AnalyticsConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AuthConfig struct {
	JWTSecret string
	JWTIssuer string
}

type SchedulerConfig struct {
	TickInterval time.Duration
	TickTimeout  time.Duration
	// RedisURL пустой - аренда лидера выключена, тик выполняется всегда
	RedisURL string
	LeaseTTL time.Duration
}

type EventsConfig struct {
	// KafkaBrokers пустой - события не публикуются
	KafkaBrokers []string
	Topic        string
}

type AnalyticsConfig struct {
	// ReportingTimezone - канонический пояс отчётности для окон и распределений
	ReportingTimezone string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPAddress: getEnv("HTTP_ADDRESS", ":8080"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "standup"),
			Password: getEnv("DB_PASSWORD", "standup"),
			DBName:   getEnv("DB_NAME", "standup_tracker"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
			JWTIssuer: getEnv("JWT_ISSUER", "standup-tracker"),
		},
		Scheduler: SchedulerConfig{
			TickInterval: getDurationEnv("SCHEDULER_TICK_INTERVAL", time.Minute),
			TickTimeout:  getDurationEnv("SCHEDULER_TICK_TIMEOUT", 30*time.Second),
			RedisURL:     getEnv("REDIS_URL", ""),
			LeaseTTL:     getDurationEnv("SCHEDULER_LEASE_TTL", 50*time.Second),
		},
		Events: EventsConfig{
			KafkaBrokers: splitAndTrim(getEnv("KAFKA_BROKERS", "")),
			Topic:        getEnv("KAFKA_TOPIC", "standup.lifecycle"),
		},
		Analytics: AnalyticsConfig{
			ReportingTimezone: getEnv("REPORTING_TIMEZONE", "UTC"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
