package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Blob storage backends.
const (
	BlobBackendS3    = "s3"
	BlobBackendLocal = "local"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`

	// HTTP
	CORSAllowedOrigins []string
	LoginRateLimit     string
	APIRateLimit       string

	// Blob storage
	BlobBackend   string
	S3BucketName  string
	AWSS3Region   string
	S3PresignTTL  time.Duration
	LocalBlobDir  string
	PublicBaseURL string

	// Reminders and counterparty workflow
	ReminderEnabled    bool
	ReminderInterval   time.Duration
	InactiveStatusCode string
	DefaultStatusCode  string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "counterparty-portal")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("API_RATE_LIMIT", "300-M")
	viper.SetDefault("BLOB_BACKEND", BlobBackendLocal)
	viper.SetDefault("S3_BUCKET_NAME", "")
	viper.SetDefault("AWS_S3_REGION", "us-east-1")
	viper.SetDefault("S3_PRESIGN_TTL", "15m")
	viper.SetDefault("LOCAL_BLOB_DIR", "./uploads")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	viper.SetDefault("REMINDER_ENABLED", true)
	viper.SetDefault("REMINDER_INTERVAL", "24h")
	viper.SetDefault("INACTIVE_STATUS_CODE", "inactive")
	viper.SetDefault("DEFAULT_STATUS_CODE", "active")

	// Environment variables override .env values and defaults.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = durationOr("JWT_EXPIRY_DURATION", 8*time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.APIRateLimit = viper.GetString("API_RATE_LIMIT")

	cfg.BlobBackend = strings.ToLower(viper.GetString("BLOB_BACKEND"))
	cfg.S3BucketName = viper.GetString("S3_BUCKET_NAME")
	cfg.AWSS3Region = viper.GetString("AWS_S3_REGION")
	cfg.S3PresignTTL = durationOr("S3_PRESIGN_TTL", 15*time.Minute)
	cfg.LocalBlobDir = viper.GetString("LOCAL_BLOB_DIR")
	cfg.PublicBaseURL = strings.TrimRight(viper.GetString("PUBLIC_BASE_URL"), "/")
	switch cfg.BlobBackend {
	case BlobBackendS3:
		if cfg.S3BucketName == "" {
			log.Println("Warning: BLOB_BACKEND is s3 but S3_BUCKET_NAME is not set. Uploads will fail.")
		}
	case BlobBackendLocal:
	default:
		log.Printf("Warning: unknown BLOB_BACKEND %q. Defaulting to %s.\n", cfg.BlobBackend, BlobBackendLocal)
		cfg.BlobBackend = BlobBackendLocal
	}

	cfg.ReminderEnabled = viper.GetBool("REMINDER_ENABLED")
	cfg.ReminderInterval = durationOr("REMINDER_INTERVAL", 24*time.Hour)
	cfg.InactiveStatusCode = viper.GetString("INACTIVE_STATUS_CODE")
	cfg.DefaultStatusCode = viper.GetString("DEFAULT_STATUS_CODE")

	return cfg, nil
}

// durationOr parses key as a duration, logging and returning def when invalid.
func durationOr(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
