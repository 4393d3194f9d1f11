package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Search   SearchConfig   `yaml:"search"`
	Exhibit  ExhibitConfig  `yaml:"exhibit"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds catalog store (PostgreSQL) connection settings.
// QueryTimeout is enforced by the server as statement_timeout, so every
// catalog lookup either completes or fails within it.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	QueryTimeout    time.Duration `yaml:"query_timeout"      env:"DATABASE_QUERY_TIMEOUT"      env-default:"5s"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
}

// AuthConfig holds bearer token validation settings. Tokens are issued by
// the external login service; an empty secret disables token validation
// and every request is served anonymously.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"exhibit"`
}

// SearchConfig holds search and browse settings. ResultLimit and
// RateLimitPerMinute carry no env-default tag because cleanenv would replace
// an explicit zero with the default; their defaults come from defaults().
type SearchConfig struct {
	ResultLimit       int    `yaml:"result_limit"       env:"SEARCH_RESULT_LIMIT"`
	AnonymousIdentity string `yaml:"anonymous_identity" env:"SEARCH_ANONYMOUS_IDENTITY" env-default:"Anonymous"`
	// RateLimitPerMinute caps search requests per caller. Zero disables it.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SEARCH_RATE_LIMIT_PER_MINUTE"`
}

// Defaults for settings where zero is a meaningful value.
const (
	DefaultResultLimit        = 1000
	DefaultRateLimitPerMinute = 120
)

// defaults returns the configuration that file and environment values are
// layered on.
func defaults() Config {
	return Config{
		Search: SearchConfig{
			ResultLimit:        DefaultResultLimit,
			RateLimitPerMinute: DefaultRateLimitPerMinute,
		},
	}
}

// ExhibitConfig holds presentation settings for catalog items.
type ExhibitConfig struct {
	ImageBaseURL string `yaml:"image_base_url" env:"EXHIBIT_IMAGE_BASE_URL" env-default:"/images/exhibit/"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// TokensEnabled reports whether bearer tokens can be validated.
func (c AuthConfig) TokensEnabled() bool {
	return c.JWTSecret != ""
}
