package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

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
		DatabaseName string `env:"DATABASE_NAME" env-default:"skychart" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Ephemeris selects and configures the source of body positions
	Ephemeris struct {
		// Provider is either "http" (remote ephemeris service) or "file" (recorded YAML fixture)
		Provider string `env:"EPHEMERIS_PROVIDER" env-default:"http" yaml:"provider"`
		// BaseURL is the absolute base URL of the ephemeris service
		BaseURL string `env:"EPHEMERIS_BASE_URL" env-default:"http://localhost:9090" yaml:"baseURL"`
		// Token is sent in the Api-Key header
		Token string `env:"EPHEMERIS_TOKEN" yaml:"token"`
		// Timeout bounds a single positions request
		Timeout time.Duration `env:"EPHEMERIS_TIMEOUT" env-default:"30s" yaml:"timeout"`
		// FixturePath is the YAML file read by the file provider
		FixturePath string `env:"EPHEMERIS_FIXTURE_PATH" env-default:"testdata/j2000.yml" yaml:"fixturePath"`
	} `yaml:"ephemeris"`

	// JWT holds the RS256 key pair used to sign and verify API tokens
	JWT struct {
		// PublicKey is the PEM encoded key used to verify bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded key used by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Charts configures how chart requests are computed and de-duplicated
	Charts struct {
		// MaxAttempts is how many times a chart is computed before it is marked failed
		MaxAttempts int `env:"CHARTS_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// ResultCacheTTL is how long a completed chart is reused for identical requests
		ResultCacheTTL time.Duration `env:"CHARTS_RESULT_CACHE_TTL" env-default:"24h" yaml:"resultCacheTTL"`
		// DefaultFrame is used when a request names no frame
		DefaultFrame string `env:"CHARTS_DEFAULT_FRAME" env-default:"geocentric" yaml:"defaultFrame"`
	} `yaml:"charts"`

	// Worker configures the background job runner
	Worker struct {
		// MaxWorkers bounds the number of charts computed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"100" yaml:"maxWorkers"`
		// SnapshotSchedule is a cron expression for the periodic sky snapshot; empty disables it
		SnapshotSchedule string `env:"WORKER_SNAPSHOT_SCHEDULE" env-default:"0 * * * *" yaml:"snapshotSchedule"`
		// SnapshotFrame is the frame of the periodic sky snapshot
		SnapshotFrame string `env:"WORKER_SNAPSHOT_FRAME" env-default:"geocentric" yaml:"snapshotFrame"`
	} `yaml:"worker"`

	// Report configures the chart command output
	Report struct {
		// Concurrency bounds how many instants are fetched at once
		Concurrency int `env:"REPORT_CONCURRENCY" env-default:"4" yaml:"concurrency"`
	} `yaml:"report"`

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
