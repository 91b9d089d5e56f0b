package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Storage    StorageConfig    `yaml:"storage"`
	Pagination PaginationConfig `yaml:"pagination"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins returns AllowedOrigins split on commas.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods returns AllowedMethods split on commas.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers returns AllowedHeaders split on commas.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	PublicURL       string        `yaml:"public_url"       env:"SERVER_PUBLIC_URL"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"10485760"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token and password hashing settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"foodgram"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"10"`
}

// StorageConfig holds S3-compatible object storage settings for recipe
// images and avatars.
type StorageConfig struct {
	Bucket          string `yaml:"bucket"            env:"STORAGE_BUCKET"            env-required:"true"`
	Region          string `yaml:"region"            env:"STORAGE_REGION"            env-default:"us-east-1"`
	Endpoint        string `yaml:"endpoint"          env:"STORAGE_ENDPOINT"`
	AccessKeyID     string `yaml:"access_key_id"     env:"STORAGE_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"STORAGE_SECRET_ACCESS_KEY"`
	PublicBaseURL   string `yaml:"public_base_url"   env:"STORAGE_PUBLIC_BASE_URL"`
	UsePathStyle    bool   `yaml:"use_path_style"    env:"STORAGE_USE_PATH_STYLE"    env-default:"false"`
	MaxImageBytes   int    `yaml:"max_image_bytes"   env:"STORAGE_MAX_IMAGE_BYTES"   env-default:"5242880"`
}

// PaginationConfig holds page sizes for paginated listings.
type PaginationConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"PAGINATION_DEFAULT_PAGE_SIZE" env-default:"6"`
	MaxPageSize     int `yaml:"max_page_size"     env:"PAGINATION_MAX_PAGE_SIZE"     env-default:"100"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerMinute int  `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"300"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
