package config

import (
	"fmt"

	pkgconfig "github.com/Jathavedas/memento-backend/pkg/config"
)

// Config holds all configuration for the catalog service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"3000"`

	// Cross-origin policy: the one browser origin allowed to call the API.
	AllowedOrigin string `env:"CORS_ALLOWED_ORIGIN" envDefault:"https://memento-world.vercel.app"`

	// Payload ceiling for multipart create requests (default 50 MiB).
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"52428800"`

	// PostgreSQL
	PostgresHost string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser string `env:"POSTGRES_USER" envDefault:"catalog"`
	PostgresPass string `env:"POSTGRES_PASSWORD" envDefault:"catalog_secret"`
	PostgresDB   string `env:"POSTGRES_DB" envDefault:"catalog_db"`
	PostgresSSL  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`

	// External media store. An empty endpoint selects the in-memory store
	// (development only).
	MediaEndpoint  string `env:"MEDIA_ENDPOINT" envDefault:""`
	MediaAccessKey string `env:"MEDIA_ACCESS_KEY" envDefault:""`
	MediaSecretKey string `env:"MEDIA_SECRET_KEY" envDefault:""`
	MediaBucket    string `env:"MEDIA_BUCKET" envDefault:"memento-products"`
	MediaUseSSL    bool   `env:"MEDIA_USE_SSL" envDefault:"true"`
	MediaFolder    string `env:"MEDIA_FOLDER" envDefault:"products"`

	// Kafka
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// Tracing
	TracingEnabled  bool    `env:"OTEL_TRACING_ENABLED" envDefault:"false"`
	OTLPEndpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	TraceSampleRate float64 `env:"OTEL_TRACE_SAMPLE_RATE" envDefault:"1.0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load catalog config: %w", err)
	}
	return cfg, nil
}

// PostgresDSN returns the PostgreSQL connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.PostgresUser, c.PostgresPass, c.PostgresHost, c.PostgresPort, c.PostgresDB, c.PostgresSSL,
	)
}
