package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr string
	LogLevel string

	// Toolkit selection: a remote verification service wins over a local
	// pinned binary when both are configured.
	ToolkitURL            string
	ToolkitBin            string
	ToolkitVersion        string
	ToolkitTimeoutSeconds int

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CacheTTLSeconds int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioRegion    string
	MinioUseSSL    bool

	RateLimitRequests      int
	RateLimitWindowSeconds int
	RateLimitMaxKeys       int

	MaxAssetBytes int64
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:               addr,
		LogLevel:               envDefault("LOG_LEVEL", "info"),
		ToolkitURL:             os.Getenv("TOOLKIT_URL"),
		ToolkitBin:             os.Getenv("TOOLKIT_BIN"),
		ToolkitVersion:         os.Getenv("TOOLKIT_VERSION"),
		ToolkitTimeoutSeconds:  envIntDefault("TOOLKIT_TIMEOUT_SECONDS", 30),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:                envIntDefault("REDIS_DB", 0),
		CacheTTLSeconds:        envIntDefault("CACHE_TTL_SECONDS", 300),
		MinioEndpoint:          os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey:         os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:         os.Getenv("MINIO_SECRET_KEY"),
		MinioRegion:            os.Getenv("MINIO_REGION"),
		MinioUseSSL:            envBoolDefault("MINIO_USE_SSL", false),
		RateLimitRequests:      envIntDefault("RATE_LIMIT_REQUESTS", 0),
		RateLimitWindowSeconds: envIntDefault("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitMaxKeys:       envIntDefault("RATE_LIMIT_MAX_KEYS", 10000),
		MaxAssetBytes:          envInt64Default("MAX_ASSET_BYTES", 64<<20),
	}
}

func envDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func envInt64Default(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func envBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "Yes":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "No":
		return false
	default:
		return def
	}
}

func (c Config) ToolkitTimeout() time.Duration {
	if c.ToolkitTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.ToolkitTimeoutSeconds) * time.Second
}

func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
