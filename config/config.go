package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment  string
	Name         string
	Version      string
	LogLevel     string
	GeminiAPIKey string
	HTTP         HTTPConfig
	Postgres     PostgresConfig
	JWT          JWTConfig
	S3           S3Config
	Kiosk        KioskConfig
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxHeaderMB  int
}

type PostgresConfig struct {
	Host               string
	Port               string
	Username           string
	Password           string
	DBName             string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	MaxLifetime        time.Duration
	MigrationsDir      string
}

type JWTConfig struct {
	SigningKey string
	SessionTTL time.Duration
}

type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UseSSL          bool
	PresignTTL      time.Duration
}

// Enabled reports whether specialist photos are served from object storage.
func (c S3Config) Enabled() bool {
	return c.Endpoint != ""
}

type KioskConfig struct {
	VerificationLatency time.Duration
	SuccessRate         float64
	NoticeTTL           time.Duration
	CalendarHorizon     int
	Timezone            string
	SessionCapacity     int
	SessionIdleTTL      time.Duration
	SweepSchedule       string
	CatalogSource       string
}

const (
	CatalogSourceMemory   = "memory"
	CatalogSourcePostgres = "postgres"
)

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	httpReadTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	httpWriteTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	postgresMaxLifetime, err := time.ParseDuration(getEnv("POSTGRES_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, err
	}

	sessionTTL, err := time.ParseDuration(getEnv("JWT_SESSION_TTL", "12h"))
	if err != nil {
		return nil, err
	}

	presignTTL, err := time.ParseDuration(getEnv("S3_PRESIGN_TTL", "1h"))
	if err != nil {
		return nil, err
	}

	verificationLatency, err := time.ParseDuration(getEnv("KIOSK_VERIFICATION_LATENCY", "1500ms"))
	if err != nil {
		return nil, err
	}

	noticeTTL, err := time.ParseDuration(getEnv("KIOSK_NOTICE_TTL", "5s"))
	if err != nil {
		return nil, err
	}

	sessionIdleTTL, err := time.ParseDuration(getEnv("KIOSK_SESSION_IDLE_TTL", "30m"))
	if err != nil {
		return nil, err
	}

	successRate := getEnvAsFloat("KIOSK_SUCCESS_RATE", 0.9)
	if successRate < 0 || successRate > 1 {
		return nil, fmt.Errorf("KIOSK_SUCCESS_RATE fora do intervalo [0,1]: %v", successRate)
	}

	catalogSource := getEnv("KIOSK_CATALOG_SOURCE", CatalogSourceMemory)
	if catalogSource != CatalogSourceMemory && catalogSource != CatalogSourcePostgres {
		return nil, fmt.Errorf("KIOSK_CATALOG_SOURCE desconhecida: %s", catalogSource)
	}

	return &Config{
		Environment:  getEnv("APP_ENV", "development"),
		Name:         getEnv("APP_NAME", "Secretaria Digital Amanhecer"),
		Version:      getEnv("VERSION", "1.0.0"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		HTTP: HTTPConfig{
			Port:         getEnv("HTTP_PORT", "8080"),
			ReadTimeout:  httpReadTimeout,
			WriteTimeout: httpWriteTimeout,
			MaxHeaderMB:  getEnvAsInt("HTTP_MAX_HEADER_MB", 1),
		},
		Postgres: PostgresConfig{
			Host:               getEnv("POSTGRES_HOST", "localhost"),
			Port:               getEnv("POSTGRES_PORT", "5432"),
			Username:           getEnv("POSTGRES_USER", "postgres"),
			Password:           getEnv("POSTGRES_PASSWORD", "postgres"),
			DBName:             getEnv("POSTGRES_DB", "kiosk"),
			SSLMode:            getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConnections:     getEnvAsInt("POSTGRES_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("POSTGRES_MAX_IDLE_CONNECTIONS", 2),
			MaxLifetime:        postgresMaxLifetime,
			MigrationsDir:      getEnv("POSTGRES_MIGRATIONS_DIR", "migrations"),
		},
		JWT: JWTConfig{
			SigningKey: getEnv("JWT_SIGNING_KEY", "your_secret_key"),
			SessionTTL: sessionTTL,
		},
		S3: S3Config{
			Endpoint:        getEnv("S3_ENDPOINT", ""),
			Region:          getEnv("S3_REGION", "us-east-1"),
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
			Bucket:          getEnv("S3_BUCKET", "kiosk"),
			UseSSL:          getEnv("S3_USE_SSL", "true") == "true",
			PresignTTL:      presignTTL,
		},
		Kiosk: KioskConfig{
			VerificationLatency: verificationLatency,
			SuccessRate:         successRate,
			NoticeTTL:           noticeTTL,
			CalendarHorizon:     getEnvAsInt("KIOSK_CALENDAR_HORIZON", 14),
			Timezone:            getEnv("KIOSK_TIMEZONE", "America/Sao_Paulo"),
			SessionCapacity:     getEnvAsInt("KIOSK_SESSION_CAPACITY", 256),
			SessionIdleTTL:      sessionIdleTTL,
			SweepSchedule:       getEnv("KIOSK_SWEEP_SCHEDULE", "@every 1m"),
			CatalogSource:       catalogSource,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value := 0
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}
