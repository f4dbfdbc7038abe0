package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Redis Redis `validate:"required"`

	Carrier Carrier `validate:"required"`

	Search Search `validate:"required"`

	Sync Sync `validate:"required"`

	Cache Cache

	Managers Managers `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Kafka struct {
	Brokers      []string      `validate:"required,min=1,dive,hostname_port"`
	Topic        string        `validate:"required"`
	BatchTimeout time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`
}

type Carrier struct {
	BaseURL string        `validate:"required,url"`
	APIKey  string        `validate:"required"`
	Sender  SenderContact `validate:"required"`
	Timeout time.Duration `validate:"gt=0"`
}

type SenderContact struct {
	Name    string `validate:"required"`
	Phone   string `validate:"required"`
	City    string `validate:"required"`
	Address string `validate:"required"`
}

type Search struct {
	BaseURL string        `validate:"required,url"`
	APIKey  string
	Timeout time.Duration `validate:"gt=0"`
	Buffer  int           `validate:"gte=1"`
}

type Sync struct {
	Interval  time.Duration `validate:"gt=0"`
	LockTTL   time.Duration `validate:"gt=0"`
	BatchSize int           `validate:"gte=1"`
	Workers   int           `validate:"gte=1"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

// Managers holds the deterministic fallback assignment rule: orders with
// a gilding-category product go to GildingManager, everything else to
// DefaultManager.
type Managers struct {
	DefaultManager    string `validate:"required"`
	GildingManager    string `validate:"required"`
	GildingCategoryID int64  `validate:"required"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			Brokers:      strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:        env("KAFKA_TOPIC", "order-events"),
			BatchTimeout: envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "orders"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
		},

		Carrier: Carrier{
			BaseURL: env("CARRIER_BASE_URL", "https://api.carrier.example"),
			APIKey:  env("CARRIER_API_KEY", ""),
			Timeout: envDuration("CARRIER_TIMEOUT", 15*time.Second),
			Sender: SenderContact{
				Name:    env("CARRIER_SENDER_NAME", ""),
				Phone:   env("CARRIER_SENDER_PHONE", ""),
				City:    env("CARRIER_SENDER_CITY", ""),
				Address: env("CARRIER_SENDER_ADDRESS", ""),
			},
		},

		Search: Search{
			BaseURL: env("SEARCH_BASE_URL", "http://localhost:7700"),
			APIKey:  env("SEARCH_API_KEY", ""),
			Timeout: envDuration("SEARCH_TIMEOUT", 5*time.Second),
			Buffer:  envInt("SEARCH_BUFFER", 256),
		},

		Sync: Sync{
			Interval:  envDuration("SHIPMENT_SYNC_INTERVAL", time.Hour),
			LockTTL:   envDuration("SHIPMENT_SYNC_LOCK_TTL", 10*time.Minute),
			BatchSize: envInt("SHIPMENT_SYNC_BATCH_SIZE", 100),
			Workers:   envInt("SHIPMENT_SYNC_WORKERS", 8),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Managers: Managers{
			DefaultManager:    env("DEFAULT_MANAGER", "manager-a"),
			GildingManager:    env("GILDING_MANAGER", "manager-b"),
			GildingCategoryID: int64(envInt("GILDING_CATEGORY_ID", 7)),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
