package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config is built once at process start and handed to constructors.
type Config struct {
	HTTPAddr string

	DBHost string
	DBUser string
	DBPass string
	DBName string

	UserServiceURL    string
	CatalogServiceURL string
	RemoteTimeout     time.Duration

	RedisAddr    string
	KafkaBrokers []string
	ServiceName  string
}

func Load() Config {
	return Config{
		HTTPAddr:          getenv("HTTP_ADDR", ":8080"),
		DBHost:            getenv("DB_HOST", "localhost"),
		DBUser:            getenv("DB_USER", "order_service_user"),
		DBPass:            getenv("DB_PASS", "order_service_pass"),
		DBName:            getenv("DB_NAME", "order_service_db"),
		UserServiceURL:    getenv("USER_SERVICE_URL", "http://user-service:5001"),
		CatalogServiceURL: getenv("CATALOG_SERVICE_URL", "http://catalog-service:5000"),
		RemoteTimeout:     getdur("REMOTE_TIMEOUT", 3*time.Second),
		RedisAddr:         getenv("REDIS_ADDR", "redis:6379"),
		KafkaBrokers:      splitCSV(getenv("KAFKA_BROKERS", "kafka:9092")),
		ServiceName:       getenv("SERVICE_NAME", "order-service"),
	}
}

// PostgresDSN assembles the store DSN from the DB_* variables.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		c.DBUser, c.DBPass, c.DBHost, c.DBName)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
