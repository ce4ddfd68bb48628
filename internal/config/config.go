package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Service
	Environment     string
	ServiceName     string
	Version         string
	Port            int
	APIKey          string // API key for authentication
	TrustedProxies  []string
	ShutdownTimeout time.Duration

	// Logging
	LogLevel  string
	LogFormat string
	LogDir    string

	// Garden store
	StoreBackend      string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	RedisURL          string
	RedisKeyPrefix    string
	RedisSessionTTL   time.Duration
	DataDir           string

	// Garden service
	TickInterval     time.Duration
	SessionCacheSize int
	SessionCacheTTL  time.Duration
	PersistRetry     time.Duration

	// Workers
	WorkerCount     int
	WorkerQueueSize int
	JobTimeout      time.Duration

	// Events
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	// Discord (optional)
	DiscordWebhookURL  string
	DiscordNotifyKinds []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:     strings.ToLower(getEnv("ENVIRONMENT", DefaultEnvironment)),
		ServiceName:     getEnv("SERVICE_NAME", DefaultServiceName),
		Version:         getEnv("VERSION", DefaultVersion),
		APIKey:          getEnv("API_KEY", ""),
		TrustedProxies:  getEnvAsList("TRUSTED_PROXIES"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),

		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:    getEnv("LOG_DIR", DefaultLogDir),

		StoreBackend:      strings.ToLower(getEnv("STORE_BACKEND", DefaultStoreBackend)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		RedisURL:          getEnv("REDIS_URL", DefaultRedisURL),
		RedisKeyPrefix:    getEnv("REDIS_KEY_PREFIX", DefaultRedisKeyPrefix),
		RedisSessionTTL:   getEnvAsDuration("REDIS_SESSION_TTL", 0),
		DataDir:           getEnv("DATA_DIR", DefaultDataDir),

		TickInterval:     getEnvAsDuration("TICK_INTERVAL", DefaultTickInterval),
		SessionCacheSize: getEnvAsInt("SESSION_CACHE_SIZE", DefaultSessionCacheSize),
		SessionCacheTTL:  getEnvAsDuration("SESSION_CACHE_TTL", DefaultSessionCacheTTL),
		PersistRetry:     getEnvAsDuration("PERSIST_RETRY", DefaultPersistRetry),

		WorkerCount:     getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize: getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),
		JobTimeout:      getEnvAsDuration("JOB_TIMEOUT", DefaultJobTimeout),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),

		DiscordWebhookURL:  getEnv("DISCORD_WEBHOOK_URL", ""),
		DiscordNotifyKinds: getEnvAsList("DISCORD_NOTIFY_KINDS"),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values, reporting every problem at once
func (c *Config) Validate() error {
	var errs []error

	if c.APIKey == "" && c.Environment != EnvironmentDev {
		errs = append(errs, errors.New(ErrMsgAPIKeyRequired))
	}

	switch c.StoreBackend {
	case StoreBackendPostgres:
	case StoreBackendRedis:
		if c.RedisURL == "" {
			errs = append(errs, errors.New(ErrMsgRedisURLRequired))
		}
	case StoreBackendFile:
		if c.DataDir == "" {
			errs = append(errs, errors.New(ErrMsgDataDirRequired))
		}
	default:
		errs = append(errs, fmt.Errorf("%s (got %q)", ErrMsgInvalidStoreBackend, c.StoreBackend))
	}

	if c.TickInterval <= 0 {
		errs = append(errs, errors.New(ErrMsgInvalidTickInterval))
	}
	if c.SessionCacheSize <= 0 {
		errs = append(errs, errors.New(ErrMsgInvalidCacheSize))
	}
	if c.SessionCacheTTL <= 0 {
		errs = append(errs, errors.New(ErrMsgInvalidCacheTTL))
	}
	if c.WorkerCount <= 0 {
		errs = append(errs, errors.New(ErrMsgInvalidWorkerCount))
	}

	return errors.Join(errs...)
}

// IsDev reports whether the service runs in local development mode
func (c *Config) IsDev() bool {
	return c.Environment == EnvironmentDev
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to defaultValue when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration ("5s", "1m30s"), falling back to defaultValue
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
