// Package config defines the application configuration structure and loading
// mechanisms using the cleanenv library. Values come from a yaml file with
// environment variable overrides.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// the breach intelligence provider, scan jobs and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"breachwatch" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Intel contains settings for the upstream breach intelligence provider
	Intel struct {
		// APIKey authenticates account-level breach lookups. Password range
		// queries work without it.
		APIKey string `env:"INTEL_API_KEY" env-default:"" yaml:"apiKey"`
		// UserAgent is sent with every provider request
		UserAgent string `env:"INTEL_USER_AGENT" env-default:"breachwatch/1.0" yaml:"userAgent"`
		// RangeEndpoint overrides the password range query base URL
		RangeEndpoint string `env:"INTEL_RANGE_ENDPOINT" env-default:"" yaml:"rangeEndpoint"`
		// AccountEndpoint overrides the account breach lookup base URL
		AccountEndpoint string `env:"INTEL_ACCOUNT_ENDPOINT" env-default:"" yaml:"accountEndpoint"`
		// MinInterval is the minimum spacing enforced between outbound provider requests
		MinInterval time.Duration `env:"INTEL_MIN_INTERVAL" env-default:"150ms" yaml:"minInterval"`
		// CacheStaleAfter is how long a cached account lookup stays fresh
		CacheStaleAfter time.Duration `env:"INTEL_CACHE_STALE_AFTER" env-default:"168h" yaml:"cacheStaleAfter"`
		// RequestTimeout bounds each outbound provider request
		RequestTimeout time.Duration `env:"INTEL_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
	} `yaml:"intel"`

	// Scan contains settings for background scan jobs
	Scan struct {
		// MaxAttempts is the number of times a failed scan job is retried
		MaxAttempts int `env:"SCAN_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// UniquePeriod is the window within which duplicate scan jobs for the same email are skipped
		UniquePeriod time.Duration `env:"SCAN_UNIQUE_PERIOD" env-default:"1m" yaml:"uniquePeriod"`
		// MaxWorkers caps how many scan jobs run concurrently
		MaxWorkers int `env:"SCAN_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"scan"`

	// JWT contains the RS256 key pair used for API authentication
	JWT struct {
		// PublicKey is the PEM-encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
		// PrivateKey is the PEM-encoded RSA private key, only needed by the jwt subcommand
		PrivateKey string `env:"JWT_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
