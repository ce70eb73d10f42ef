package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Database struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type Config struct {
	Port            string
	DB              Database
	RedisAddr       string
	KafkaBroker     string
	ConnectRetries  int
	OutboxInterval  time.Duration
	BatchCron       string
	BatchConsumerID string

	RateLimitPerSecond float64
	RateLimitBurst     int
	ShutdownTimeout    time.Duration
}

// Load reads .env (when present) and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port: getEnv("PORT", "3000"),
		DB: Database{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:     os.Getenv("KAFKA_BROKER"),
		ConnectRetries:  getEnvInt("CONNECT_RETRIES", 5),
		OutboxInterval:  getEnvDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
		BatchCron:       getEnv("PAYROLL_BATCH_CRON", "0 3 1 * *"),
		BatchConsumerID: getEnv("PAYROLL_BATCH_GROUP_ID", "go-fleetpay-payroll-batch"),

		RateLimitPerSecond: getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 40),
		ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
