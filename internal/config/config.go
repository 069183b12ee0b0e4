package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Chat   ChatConfig
	CORS   CORSConfig
	Email  EmailConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings. Uploaded source documents and generated
// filled PDFs live in separate buckets.
type S3Config struct {
	Region          string `mapstructure:"region"`
	UploadsBucket   string `mapstructure:"uploads_bucket"`
	GeneratedBucket string `mapstructure:"generated_bucket"`
	Endpoint        string `mapstructure:"endpoint"`
	PublicBaseURL   string `mapstructure:"public_base_url"`
	AccessKey       string `mapstructure:"access_key"`
	SecretKey       string `mapstructure:"secret_key"`
	MaxFileSizeMB   int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry   int64  `mapstructure:"presign_expiry"`
}

// ChatConfig holds LLM chat provider settings.
type ChatConfig struct {
	BaseURL     string  `mapstructure:"base_url"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
	TimeoutSecs int     `mapstructure:"timeout_secs"`
	HistorySize int     `mapstructure:"history_size"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the BROKERDOC_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BROKERDOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "0s") // 0 = no write timeout; SSE streams are long-lived
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "brokerdoc")
	v.SetDefault("db.password", "brokerdoc_secret")
	v.SetDefault("db.name", "brokerdoc_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "brokerdoc")

	// S3 defaults
	v.SetDefault("s3.region", "ca-central-1")
	v.SetDefault("s3.uploads_bucket", "brokerdoc-documents")
	v.SetDefault("s3.generated_bucket", "brokerdoc-generated-documents")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.public_base_url", "")
	v.SetDefault("s3.max_file_size_mb", 10)
	v.SetDefault("s3.presign_expiry", 3600)

	// Chat provider defaults (OpenAI-compatible endpoint)
	v.SetDefault("chat.base_url", "https://api.openai.com/v1")
	v.SetDefault("chat.api_key", "")
	v.SetDefault("chat.model", "gpt-4")
	v.SetDefault("chat.max_tokens", 2000)
	v.SetDefault("chat.temperature", 0.7)
	v.SetDefault("chat.timeout_secs", 120)
	v.SetDefault("chat.history_size", 20)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ca-central-1")
	v.SetDefault("email.from_address", "noreply@brokerdoc.app")
	v.SetDefault("email.from_name", "BrokerDoc")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "BROKERDOC_SERVER_PORT",
		"server.read_timeout":  "BROKERDOC_SERVER_READ_TIMEOUT",
		"server.write_timeout": "BROKERDOC_SERVER_WRITE_TIMEOUT",
		"server.environment":   "BROKERDOC_SERVER_ENVIRONMENT",
		"db.host":              "BROKERDOC_DB_HOST",
		"db.port":              "BROKERDOC_DB_PORT",
		"db.user":              "BROKERDOC_DB_USER",
		"db.password":          "BROKERDOC_DB_PASSWORD",
		"db.name":              "BROKERDOC_DB_NAME",
		"db.sslmode":           "BROKERDOC_DB_SSLMODE",
		"db.max_open":          "BROKERDOC_DB_MAX_OPEN",
		"db.max_idle":          "BROKERDOC_DB_MAX_IDLE",
		"jwt.secret":           "BROKERDOC_JWT_SECRET",
		"jwt.access_expiry":    "BROKERDOC_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "BROKERDOC_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "BROKERDOC_JWT_ISSUER",
		"s3.region":            "BROKERDOC_S3_REGION",
		"s3.uploads_bucket":    "BROKERDOC_S3_UPLOADS_BUCKET",
		"s3.generated_bucket":  "BROKERDOC_S3_GENERATED_BUCKET",
		"s3.endpoint":          "BROKERDOC_S3_ENDPOINT",
		"s3.public_base_url":   "BROKERDOC_S3_PUBLIC_BASE_URL",
		"s3.access_key":        "BROKERDOC_S3_ACCESS_KEY",
		"s3.secret_key":        "BROKERDOC_S3_SECRET_KEY",
		"s3.max_file_size_mb":  "BROKERDOC_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":    "BROKERDOC_S3_PRESIGN_EXPIRY",
		"chat.base_url":        "BROKERDOC_CHAT_BASE_URL",
		"chat.api_key":         "BROKERDOC_CHAT_API_KEY",
		"chat.model":           "BROKERDOC_CHAT_MODEL",
		"chat.max_tokens":      "BROKERDOC_CHAT_MAX_TOKENS",
		"chat.temperature":     "BROKERDOC_CHAT_TEMPERATURE",
		"chat.timeout_secs":    "BROKERDOC_CHAT_TIMEOUT_SECS",
		"chat.history_size":    "BROKERDOC_CHAT_HISTORY_SIZE",
		"cors.allowed_origins": "BROKERDOC_CORS_ALLOWED_ORIGINS",
		"email.provider":       "BROKERDOC_EMAIL_PROVIDER",
		"email.region":         "BROKERDOC_EMAIL_REGION",
		"email.from_address":   "BROKERDOC_EMAIL_FROM_ADDRESS",
		"email.from_name":      "BROKERDOC_EMAIL_FROM_NAME",
		"email.frontend_url":   "BROKERDOC_EMAIL_FRONTEND_URL",
		"log.level":            "BROKERDOC_LOG_LEVEL",
		"log.format":           "BROKERDOC_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BROKERDOC_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BROKERDOC_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:          v.GetString("s3.region"),
		UploadsBucket:   v.GetString("s3.uploads_bucket"),
		GeneratedBucket: v.GetString("s3.generated_bucket"),
		Endpoint:        v.GetString("s3.endpoint"),
		PublicBaseURL:   v.GetString("s3.public_base_url"),
		AccessKey:       v.GetString("s3.access_key"),
		SecretKey:       v.GetString("s3.secret_key"),
		MaxFileSizeMB:   v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry:   v.GetInt64("s3.presign_expiry"),
	}
	cfg.Chat = ChatConfig{
		BaseURL:     v.GetString("chat.base_url"),
		APIKey:      v.GetString("chat.api_key"),
		Model:       v.GetString("chat.model"),
		MaxTokens:   v.GetInt("chat.max_tokens"),
		Temperature: v.GetFloat64("chat.temperature"),
		TimeoutSecs: v.GetInt("chat.timeout_secs"),
		HistorySize: v.GetInt("chat.history_size"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
