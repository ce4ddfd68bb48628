package config

import "time"

// Store backends
const (
	StoreBackendPostgres = "postgres"
	StoreBackendRedis    = "redis"
	StoreBackendFile     = "file"
)

// Environments
const (
	EnvironmentDev  = "dev"
	EnvironmentProd = "prod"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultEnvironment       = EnvironmentDev
	DefaultServiceName       = "garden-bot"
	DefaultVersion           = "dev"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultLogDir            = "logs"
	DefaultStoreBackend      = StoreBackendPostgres
	DefaultDBName            = "garden"
	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = time.Hour
	DefaultRedisURL          = "redis://localhost:6379/0"
	DefaultRedisKeyPrefix    = "garden:session:"
	DefaultDataDir           = "data/gardens"
	DefaultTickInterval      = 5 * time.Second
	DefaultSessionCacheSize  = 1024
	DefaultSessionCacheTTL   = 2 * time.Hour
	DefaultPersistRetry      = 200 * time.Millisecond
	DefaultWorkerCount       = 2
	DefaultWorkerQueueSize   = 64
	DefaultJobTimeout        = 30 * time.Second
	DefaultEventMaxRetries   = 5
	DefaultEventRetryDelay   = 2 * time.Second
	DefaultDeadLetterPath    = "logs/event_deadletter.jsonl"
	DefaultShutdownTimeout   = 15 * time.Second
)

// Error messages
const (
	ErrMsgInvalidPort         = "invalid PORT value"
	ErrMsgAPIKeyRequired      = "API_KEY environment variable must be set outside dev"
	ErrMsgInvalidStoreBackend = "STORE_BACKEND must be one of postgres, redis, file"
	ErrMsgInvalidTickInterval = "TICK_INTERVAL must be positive"
	ErrMsgInvalidCacheSize    = "SESSION_CACHE_SIZE must be positive"
	ErrMsgInvalidCacheTTL     = "SESSION_CACHE_TTL must be positive"
	ErrMsgRedisURLRequired    = "REDIS_URL must be set when STORE_BACKEND=redis"
	ErrMsgDataDirRequired     = "DATA_DIR must be set when STORE_BACKEND=file"
	ErrMsgInvalidWorkerCount  = "WORKER_COUNT must be positive"
)
