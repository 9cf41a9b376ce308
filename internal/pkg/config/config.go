package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - every value has a default usable for local development
// - ADMIN_KEY and the DB settings must be overridden for deployment
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Log       LogConfig
	Locale    string `envconfig:"LOCALE" default:"ru"`
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
}

type DBConfig struct {
	// URL takes precedence over the discrete fields when set.
	URL         string `envconfig:"DATABASE_URL"`
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"codes"`
	Password    string `envconfig:"DB_PASSWORD" default:"codes"`
	DBName      string `envconfig:"DB_NAME" default:"codes"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns    int32  `envconfig:"DB_MIN_CONNS" default:"1"`
	SeedOnEmpty bool   `envconfig:"SEED_ON_EMPTY" default:"true"`
}

type AdminConfig struct {
	Key           string  `envconfig:"ADMIN_KEY" default:"changeme"`
	Header        string  `envconfig:"ADMIN_HEADER" default:"X-Admin-Key"`
	ThrottleRPS   float64 `envconfig:"ADMIN_THROTTLE_RPS" default:"5"`
	ThrottleBurst int     `envconfig:"ADMIN_THROTTLE_BURST" default:"20"`
}

type RateLimitConfig struct {
	Attempts   int `envconfig:"RATE_LIMIT_ATTEMPTS" default:"10"`
	WindowSec  int `envconfig:"RATE_LIMIT_WINDOW" default:"60"`
	Shards     int `envconfig:"RATE_LIMIT_SHARDS" default:"32"`
	SweepEvery int `envconfig:"RATE_LIMIT_SWEEP_EVERY" default:"1024"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Admin-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func (c *DBConfig) BuildDSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowSec) * time.Second
}

func (c RateLimitConfig) Validate() error {
	if c.Attempts <= 0 {
		return fmt.Errorf("RATE_LIMIT_ATTEMPTS must be positive, got %d", c.Attempts)
	}
	if c.WindowSec <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %d", c.WindowSec)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.RateLimit.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:        "localhost",
			Port:        "15433", // Test DB port
			User:        "test",
			Password:    "test",
			DBName:      "test_db",
			SSLMode:     "disable",
			TimeZone:    "UTC",
			MaxConns:    5,
			MinConns:    1,
			SeedOnEmpty: true,
		},
		Admin: AdminConfig{
			Key:           "test-admin-key",
			Header:        "X-Admin-Key",
			ThrottleRPS:   1000,
			ThrottleBurst: 1000,
		},
		RateLimit: RateLimitConfig{
			Attempts:   10,
			WindowSec:  60,
			Shards:     4,
			SweepEvery: 16,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Admin-Key"},
			ExposeHeaders: []string{"Content-Length", "Retry-After"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Locale: "en",
	}
}
