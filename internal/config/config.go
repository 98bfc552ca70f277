package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// payment and object storage providers, and graceful shutdown behavior.
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
		DatabaseName string `env:"DATABASE_NAME" env-default:"landlordheaven" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT contains the signing material and lifetime for issued access tokens
	JWT struct {
		// PrivateKey is the PEM-encoded RSA private key used to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM-encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// TTL is how long issued tokens stay valid
		TTL time.Duration `env:"JWT_TTL" env-default:"168h" yaml:"ttl"`
	} `yaml:"jwt"`

	// Auth contains settings for credential handling
	Auth struct {
		// BcryptCost is the cost factor used when hashing passwords
		BcryptCost int `env:"AUTH_BCRYPT_COST" env-default:"10" yaml:"bcryptCost"`
	} `yaml:"auth"`

	// Stripe contains payment provider credentials and redirect targets
	Stripe struct {
		// APIKey is the secret API key used for server-side Stripe calls
		APIKey string `env:"STRIPE_API_KEY" yaml:"apiKey"`
		// WebhookSecret is the endpoint secret used to verify webhook signatures
		WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET" yaml:"webhookSecret"`
		// SuccessURL is where Stripe redirects the browser after a paid checkout
		SuccessURL string `env:"STRIPE_SUCCESS_URL" env-default:"http://localhost:3000/checkout/success" yaml:"successURL"`
		// CancelURL is where Stripe redirects the browser after an abandoned checkout
		CancelURL string `env:"STRIPE_CANCEL_URL" env-default:"http://localhost:3000/checkout/cancel" yaml:"cancelURL"`
	} `yaml:"stripe"`

	// ObjectStore contains settings for the S3-compatible document store
	ObjectStore struct {
		// Endpoint is the host:port of the object store
		Endpoint string `env:"OBJECT_STORE_ENDPOINT" env-default:"localhost:9000" yaml:"endpoint"`
		// AccessKey for object store authentication
		AccessKey string `env:"OBJECT_STORE_ACCESS_KEY" env-default:"minioadmin" yaml:"accessKey"`
		// SecretKey for object store authentication
		SecretKey string `env:"OBJECT_STORE_SECRET_KEY" env-default:"minioadmin" yaml:"secretKey"`
		// Bucket is the bucket holding generated documents
		Bucket string `env:"OBJECT_STORE_BUCKET" env-default:"documents" yaml:"bucket"`
		// UseSSL toggles TLS for object store connections
		UseSSL bool `env:"OBJECT_STORE_USE_SSL" env-default:"false" yaml:"useSSL"`
		// Region is the object store region
		Region string `env:"OBJECT_STORE_REGION" env-default:"us-east-1" yaml:"region"`
		// PresignTTL is how long generated download links stay valid
		PresignTTL time.Duration `env:"OBJECT_STORE_PRESIGN_TTL" env-default:"15m" yaml:"presignTTL"`
	} `yaml:"objectStore"`

	// Cases contains settings for the case lifecycle
	Cases struct {
		// EditWindow is how long after fulfillment a case's facts may still be
		// edited, triggering document regeneration
		EditWindow time.Duration `env:"CASES_EDIT_WINDOW" env-default:"720h" yaml:"editWindow"`
		// AnonRetention is how long anonymous cases are kept before the sweep
		// job archives them
		AnonRetention time.Duration `env:"CASES_ANON_RETENTION" env-default:"720h" yaml:"anonRetention"`
	} `yaml:"cases"`

	// Worker contains settings for background job processing
	Worker struct {
		// FulfillMaxAttempts is the maximum number of attempts for a fulfillment
		// job before the order is marked failed
		FulfillMaxAttempts int `env:"WORKER_FULFILL_MAX_ATTEMPTS" env-default:"5" yaml:"fulfillMaxAttempts"`
		// MaxWorkers limits how many jobs run concurrently on the default queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"100" yaml:"maxWorkers"`
	} `yaml:"worker"`

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
