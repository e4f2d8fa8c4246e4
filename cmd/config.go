package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/sbilibin2017/gw-template-studio/internal/models"
	"github.com/sbilibin2017/gw-template-studio/internal/services"
)

// config holds every setting read from the environment.
type config struct {
	AppHost      string
	AppPort      string
	PublicURL    string
	LogLevel     string
	CookieSecure bool

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExp       time.Duration

	GenAIBaseURL   string
	GenAIAPIKey    string
	GenAITimeout   time.Duration
	FaceShapeModel string
	MaxImageBytes  int64
	LockTTL        time.Duration
	SignupBonusXP  int64

	StorageBackend string
	UploadDir      string
	S3             s3Settings

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	GoogleClientID     string
	GoogleClientSecret string
	OAuthStateTTL      time.Duration

	PaymentBaseURL       string
	PaymentKeyID         string
	PaymentKeySecret     string
	PaymentWebhookSecret string
	Packages             []models.XPPackage

	RateLimitPerMinute float64
	RateLimitBurst     int

	ReconcileSchedule  string
	StaleGenerationAge time.Duration
	StaleOrderAge      time.Duration
}

type s3Settings struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
	UsePathStyle  bool
}

// parseConfig loads environment variables from a file and the process
// environment. Process variables win over the file.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	atoi := func(key, def string) int {
		if err != nil {
			return 0
		}
		var v int
		if v, err = strconv.Atoi(getEnv(key, def)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return v
	}
	duration := func(key, def string) time.Duration {
		if err != nil {
			return 0
		}
		var v time.Duration
		if v, err = time.ParseDuration(getEnv(key, def)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return v
	}
	boolean := func(key, def string) bool {
		if err != nil {
			return false
		}
		var v bool
		if v, err = strconv.ParseBool(getEnv(key, def)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return v
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.PublicURL = strings.TrimSuffix(getEnv("APP_PUBLIC_URL", "http://localhost:8080"), "/")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.CookieSecure = boolean("APP_COOKIE_SECURE", "false")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	cfg.PGPort = atoi("POSTGRES_PORT", "5432")
	cfg.PGMaxOpenConns = atoi("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.PGMaxIdleConns = atoi("POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = atoi("REDIS_PORT", "6379")
	cfg.RedisDB = atoi("REDIS_DB", "0")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisPoolSize = atoi("REDIS_POOL_SIZE", "10")
	cfg.RedisMinIdleConns = atoi("REDIS_MIN_IDLE_CONNS", "2")

	// Kafka config, empty brokers disable ledger events
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_LEDGER_TOPIC", "xp-ledger")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWTExp = duration("JWT_EXP", "168h")

	// Generation config
	cfg.GenAIBaseURL = getEnv("GENAI_BASE_URL", "https://generativelanguage.googleapis.com")
	cfg.GenAIAPIKey = getEnv("GENAI_API_KEY", "")
	cfg.GenAITimeout = duration("GENAI_TIMEOUT", "120s")
	cfg.FaceShapeModel = getEnv("FACE_SHAPE_MODEL", "gemini-2.5-flash")
	cfg.MaxImageBytes = int64(atoi("MAX_IMAGE_BYTES", "10485760"))
	cfg.LockTTL = duration("GENERATION_LOCK_TTL", "3m")
	cfg.SignupBonusXP = int64(atoi("SIGNUP_BONUS_XP", "0"))

	// Storage config
	cfg.StorageBackend = getEnv("STORAGE_BACKEND", "local")
	cfg.UploadDir = getEnv("UPLOAD_DIR", "uploads")
	cfg.S3 = s3Settings{
		Endpoint:      getEnv("S3_ENDPOINT", ""),
		Region:        getEnv("S3_REGION", "us-east-1"),
		AccessKey:     getEnv("S3_ACCESS_KEY", ""),
		SecretKey:     getEnv("S3_SECRET_KEY", ""),
		Bucket:        getEnv("S3_BUCKET", ""),
		PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),
		UsePathStyle:  boolean("S3_USE_PATH_STYLE", "false"),
	}

	// SMTP config, empty host disables mail
	cfg.SMTPHost = getEnv("SMTP_HOST", "")
	cfg.SMTPPort = atoi("SMTP_PORT", "587")
	cfg.SMTPUsername = getEnv("SMTP_USERNAME", "")
	cfg.SMTPPassword = getEnv("SMTP_PASSWORD", "")
	cfg.SMTPFrom = getEnv("SMTP_FROM", "no-reply@localhost")

	// OAuth config
	cfg.GoogleClientID = getEnv("GOOGLE_CLIENT_ID", "")
	cfg.GoogleClientSecret = getEnv("GOOGLE_CLIENT_SECRET", "")
	cfg.OAuthStateTTL = duration("OAUTH_STATE_TTL", "10m")

	// Payment config
	cfg.PaymentBaseURL = getEnv("PAYMENT_BASE_URL", "https://api.razorpay.com")
	cfg.PaymentKeyID = getEnv("PAYMENT_KEY_ID", "")
	cfg.PaymentKeySecret = getEnv("PAYMENT_KEY_SECRET", "")
	cfg.PaymentWebhookSecret = getEnv("PAYMENT_WEBHOOK_SECRET", "")
	if err == nil {
		cfg.Packages, err = services.ParsePackages(getEnv("XP_PACKAGES", "starter:100:49900:INR,pro:500:199900:INR"))
	}

	// Rate limit config
	if err == nil {
		cfg.RateLimitPerMinute, err = strconv.ParseFloat(getEnv("RATE_LIMIT_PER_MINUTE", "10"), 64)
	}
	cfg.RateLimitBurst = atoi("RATE_LIMIT_BURST", "5")

	// Reconciler config
	cfg.ReconcileSchedule = getEnv("RECONCILE_SCHEDULE", "@every 5m")
	cfg.StaleGenerationAge = duration("STALE_GENERATION_AGE", "15m")
	cfg.StaleOrderAge = duration("STALE_ORDER_AGE", "24h")

	return cfg, err
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
