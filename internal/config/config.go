package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Upstream UpstreamConfig
	Payment  PaymentConfig
	Session  SessionConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
	ContactTo  string
}

// UpstreamConfig points at the external travel API the stores collaborate with.
type UpstreamConfig struct {
	AuthBaseURL    string
	FlightsBaseURL string
	TimeoutSeconds int
}

type PaymentConfig struct {
	MidtransServerKey string
	MidtransProd      bool
}

type SessionConfig struct {
	JWTSecret       string
	TTLMinutes      int
	DraftDebounceMs int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Melcom Travels"),
			ContactTo:  getEnv("CONTACT_INBOX_EMAIL", "support@melcomtravels.com"),
		},
		Upstream: UpstreamConfig{
			AuthBaseURL:    getEnv("TRAVEL_API_AUTH_URL", "https://api.melcomtravels.com/v1"),
			FlightsBaseURL: getEnv("TRAVEL_API_FLIGHTS_URL", "https://api.melcomtravels.com/v1"),
			TimeoutSeconds: getEnvAsInt("TRAVEL_API_TIMEOUT_SECONDS", 30),
		},
		Payment: PaymentConfig{
			MidtransServerKey: getEnv("MIDTRANS_SERVER_KEY", ""),
			MidtransProd:      getEnv("MIDTRANS_IS_PRODUCTION", "false") == "true",
		},
		Session: SessionConfig{
			JWTSecret:       getEnv("SESSION_JWT_SECRET", "dev-only-secret"),
			TTLMinutes:      getEnvAsInt("SESSION_TTL_MINUTES", 60),
			DraftDebounceMs: getEnvAsInt("DRAFT_DEBOUNCE_MS", 400),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
