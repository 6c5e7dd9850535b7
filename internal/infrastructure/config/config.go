package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	pkgkafka "github.com/bibbank/eligibility-service/pkg/kafka"
	pkgpostgres "github.com/bibbank/eligibility-service/pkg/postgres"
)

// Catalog sources.
const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Port     int
}

// Postgres converts the settings into the shared pool configuration.
func (d DatabaseConfig) Postgres() pkgpostgres.Config {
	return pkgpostgres.Config{
		Host:     d.Host,
		Port:     d.Port,
		User:     d.User,
		Password: d.Password,
		Database: d.Name,
		SSLMode:  d.SSLMode,
	}
}

type KafkaConfig struct {
	Topic         string
	SASLMechanism string
	SASLUsername  string
	SASLPassword  string
	Brokers       []string
	TLS           bool
}

// Enabled reports whether any broker is configured.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// Producer converts the settings into the shared producer configuration.
func (k KafkaConfig) Producer(clientID string) pkgkafka.Config {
	return pkgkafka.Config{
		ClientID:      clientID,
		Brokers:       k.Brokers,
		TLS:           k.TLS,
		SASLEnabled:   k.SASLUsername != "",
		SASLMechanism: k.SASLMechanism,
		SASLUsername:  k.SASLUsername,
		SASLPassword:  k.SASLPassword,
	}
}

type LogConfig struct {
	Level  string
	Format string
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

// Enabled reports whether both halves of the key pair are configured.
func (t TLSConfig) Enabled() bool {
	return t.CertFile != "" && t.KeyFile != ""
}

type Config struct {
	ServiceName   string
	CatalogSource string
	CatalogFile   string
	OTLPEndpoint  string
	Log           LogConfig
	DB            DatabaseConfig
	Kafka         KafkaConfig
	TLS           TLSConfig
	GRPCPort      int
	HTTPPort      int
	Reflection    bool
}

// Validate reports configuration that cannot start the service.
func (c Config) Validate() error {
	switch c.CatalogSource {
	case CatalogSourceFile:
	case CatalogSourcePostgres:
		if c.DB.Password == "" {
			return errors.New("DB_PASSWORD environment variable is required when CATALOG_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.CatalogSource)
	}
	if (c.TLS.CertFile == "") != (c.TLS.KeyFile == "") {
		return errors.New("GRPC_TLS_CERT_FILE and GRPC_TLS_KEY_FILE must be set together")
	}
	return nil
}

func Load() Config {
	return Config{
		GRPCPort:      getEnvInt("GRPC_PORT", 9095),
		HTTPPort:      getEnvInt("HTTP_PORT", 8095),
		ServiceName:   "eligibility-service",
		CatalogSource: strings.ToLower(getEnv("CATALOG_SOURCE", CatalogSourceFile)),
		CatalogFile:   getEnv("CATALOG_FILE", ""),
		OTLPEndpoint:  getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		Reflection:    getEnvBool("GRPC_REFLECTION", false),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "bib"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "bib_eligibility"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers:       getEnvList("KAFKA_BROKERS"),
			Topic:         getEnv("KAFKA_TOPIC", "eligibility.events"),
			TLS:           getEnvBool("KAFKA_TLS", false),
			SASLMechanism: getEnv("KAFKA_SASL_MECHANISM", "PLAIN"),
			SASLUsername:  getEnv("KAFKA_SASL_USERNAME", ""),
			SASLPassword:  getEnv("KAFKA_SASL_PASSWORD", ""),
		},
		TLS: TLSConfig{
			CertFile: getEnv("GRPC_TLS_CERT_FILE", ""),
			KeyFile:  getEnv("GRPC_TLS_KEY_FILE", ""),
		},
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blank entries.
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
