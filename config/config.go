package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const (
	CartStoreMemory   = "memory"
	CartStoreRedis    = "redis"
	CartStorePostgres = "postgres"
)

type Config struct {
	Port               string
	BackendURL         string
	AdminToken         string
	BackendTimeout     time.Duration
	PollInterval       time.Duration
	PostSubmitDelay    time.Duration
	CartStore          string
	CartTTL            time.Duration
	SessionIdleTimeout time.Duration
	ShutdownTimeout    time.Duration
	KafkaBroker        string
	OrderEventsTopic   string
	AllowedOrigins     []string
}

// LoadDotEnv reads .env from the working directory when present. Variables
// already set in the environment win.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

// Load reads the service configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             GetEnv("PORT", "8090"),
		BackendURL:       GetEnv("BACKEND_URL", "http://localhost:8000"),
		AdminToken:       os.Getenv("ADMIN_TOKEN"),
		CartStore:        strings.ToLower(GetEnv("CART_STORE", CartStoreMemory)),
		KafkaBroker:      os.Getenv("KAFKA_BROKER"),
		OrderEventsTopic: GetEnv("ORDER_EVENTS_TOPIC", "order-events"),
		AllowedOrigins:   splitList(os.Getenv("ALLOWED_ORIGINS")),
	}

	durations := []struct {
		key      string
		fallback string
		target   *time.Duration
	}{
		{"BACKEND_TIMEOUT", "0s", &cfg.BackendTimeout},
		{"POLL_INTERVAL", "10s", &cfg.PollInterval},
		{"POST_SUBMIT_DELAY", "2s", &cfg.PostSubmitDelay},
		{"CART_TTL", "168h", &cfg.CartTTL},
		{"SESSION_IDLE_TIMEOUT", "2h", &cfg.SessionIdleTimeout},
		{"SHUTDOWN_TIMEOUT", "10s", &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		value, err := time.ParseDuration(GetEnv(d.key, d.fallback))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.key, err)
		}
		if value < 0 {
			return nil, fmt.Errorf("invalid %s: must not be negative", d.key)
		}
		*d.target = value
	}

	switch cfg.CartStore {
	case CartStoreMemory, CartStoreRedis, CartStorePostgres:
	default:
		return nil, fmt.Errorf("invalid CART_STORE %q: want memory, redis or postgres", cfg.CartStore)
	}

	return cfg, nil
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

// NewKafkaWriter returns nil when no broker is configured.
func NewKafkaWriter(broker, topic string) *kafka.Writer {
	if broker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}
