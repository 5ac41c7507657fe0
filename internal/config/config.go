package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the HTTP server, database, cache, probes, static
// lists, background workers and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

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
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"45s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// RateLimit throttles API requests per client IP
	RateLimit struct {
		// Enabled turns the per-client limiter on
		Enabled bool `env:"RATE_LIMIT_ENABLED" env-default:"true" yaml:"enabled"`
		// PerMinute is the sustained number of requests allowed per client
		PerMinute int `env:"RATE_LIMIT_PER_MINUTE" env-default:"10" yaml:"perMinute"`
		// Burst is the number of requests a client may issue at once
		Burst int `env:"RATE_LIMIT_BURST" env-default:"10" yaml:"burst"`
	} `yaml:"rateLimit"`

	// JWT holds the RS256 key pair used for API bearer tokens. Authentication is
	// disabled when PublicKey is empty.
	JWT struct {
		PublicKey  string `env:"JWT_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
		PrivateKey string `env:"JWT_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
	} `yaml:"jwt"`

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
		DatabaseName string `env:"DATABASE_NAME" env-default:"emailrep" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Cache configures the Redis verdict cache
	Cache struct {
		// Enabled turns verdict caching on
		Enabled bool `env:"CACHE_ENABLED" env-default:"false" yaml:"enabled"`
		// Addr is the Redis host:port
		Addr string `env:"CACHE_ADDR" env-default:"localhost:6379" yaml:"addr"`
		// Password for Redis authentication
		Password string `env:"CACHE_PASSWORD" env-default:"" yaml:"password"`
		// DB is the Redis logical database
		DB int `env:"CACHE_DB" env-default:"0" yaml:"db"`
		// TTL is how long a verdict is served from cache; it also bounds batch job uniqueness
		TTL time.Duration `env:"CACHE_TTL" env-default:"24h" yaml:"ttl"`
	} `yaml:"cache"`

	// Probes configures the network probes
	Probes struct {
		DNS struct {
			// Servers are host:port resolvers; empty uses /etc/resolv.conf
			Servers []string `env:"PROBES_DNS_SERVERS" env-separator:"," yaml:"servers"`
			// Timeout bounds each DNS query
			Timeout time.Duration `env:"PROBES_DNS_TIMEOUT" env-default:"3s" yaml:"timeout"`
		} `yaml:"dns"`
		SMTP struct {
			// Port is the mail exchanger port
			Port int `env:"PROBES_SMTP_PORT" env-default:"25" yaml:"port"`
			// Timeout bounds the whole SMTP session
			Timeout time.Duration `env:"PROBES_SMTP_TIMEOUT" env-default:"10s" yaml:"timeout"`
			// HeloName is announced in EHLO
			HeloName string `env:"PROBES_SMTP_HELO_NAME" env-default:"localhost" yaml:"heloName"`
		} `yaml:"smtp"`
		Age struct {
			// WhoisTimeout bounds a WHOIS lookup
			WhoisTimeout time.Duration `env:"PROBES_AGE_WHOIS_TIMEOUT" env-default:"10s" yaml:"whoisTimeout"`
			// RDAPBaseURL is the RDAP domain endpoint; empty disables the RDAP fallback
			RDAPBaseURL string `env:"PROBES_AGE_RDAP_BASE_URL" env-default:"https://rdap.org/domain/" yaml:"rdapBaseURL"`
			// RDAPTimeout bounds an RDAP request
			RDAPTimeout time.Duration `env:"PROBES_AGE_RDAP_TIMEOUT" env-default:"10s" yaml:"rdapTimeout"`
		} `yaml:"age"`
		Blocklist struct {
			// Zone is the DNS blocklist zone appended to the query name
			Zone string `env:"PROBES_BLOCKLIST_ZONE" env-default:"dbl.spamhaus.org" yaml:"zone"`
		} `yaml:"blocklist"`
	} `yaml:"probes"`

	// Lists are line-delimited files loaded once at start
	Lists struct {
		Disposable     string `env:"LISTS_DISPOSABLE" env-default:"lists/disposable_domains.txt" yaml:"disposable"`
		Phishing       string `env:"LISTS_PHISHING" env-default:"lists/phishing_domains.txt" yaml:"phishing"`
		Malicious      string `env:"LISTS_MALICIOUS" env-default:"lists/malicious_domains.txt" yaml:"malicious"`
		SuspiciousTLDs string `env:"LISTS_SUSPICIOUS_TLDS" env-default:"lists/suspicious_tlds.txt" yaml:"suspiciousTLDs"`
	} `yaml:"lists"`

	// Worker configures background batch evaluation
	Worker struct {
		// MaxWorkers is the number of batch evaluations run concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// EvaluationTimeout bounds one evaluation, probes included
	EvaluationTimeout time.Duration `env:"EVALUATION_TIMEOUT" env-default:"30s" yaml:"evaluationTimeout"`

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
