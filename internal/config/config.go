package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppName         = "SalonPay"
	defaultAppEnv          = "development"
	defaultPort            = "8080"
	defaultMetricsPort     = "9091"
	defaultLogLevel        = "info"
	defaultBaseCurrency    = "AED"
	defaultRefreshInterval = time.Hour
	defaultShutdownDelay   = 10 * time.Second
	defaultValidateLimit   = 30

	refreshSecondsEnvVar   = "RATE_REFRESH_SECONDS"
	refreshDurationEnvVar  = "RATE_REFRESH_INTERVAL"
	shutdownSecondsEnvVar  = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar = "SHUTDOWN_TIMEOUT"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName             string
	AppEnv              string
	Port                string
	MetricsPort         string
	LogLevel            string
	DatabaseURL         string
	RedisURL            string
	RateProviderURL     string
	BaseCurrency        string
	RateRefreshInterval time.Duration
	ShutdownPeriod      time.Duration
	ValidateRateLimit   int
}

// Load reads configuration values from the environment (and an optional .env
// file) and populates a Config instance. Database and Redis URLs are only
// mandatory outside development; route wiring enforces that.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppName:             getEnv("APP_NAME", defaultAppName),
		AppEnv:              getEnv("APP_ENV", defaultAppEnv),
		Port:                getEnv("PORT", defaultPort),
		MetricsPort:         getEnv("METRICS_PORT", defaultMetricsPort),
		LogLevel:            strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		RedisURL:            os.Getenv("REDIS_URL"),
		RateProviderURL:     os.Getenv("RATE_PROVIDER_URL"),
		BaseCurrency:        strings.ToUpper(getEnv("BASE_CURRENCY", defaultBaseCurrency)),
		RateRefreshInterval: defaultRefreshInterval,
		ShutdownPeriod:      defaultShutdownDelay,
		ValidateRateLimit:   defaultValidateLimit,
	}

	if v := os.Getenv(refreshSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", refreshSecondsEnvVar, err)
		}
		cfg.RateRefreshInterval = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(refreshDurationEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", refreshDurationEnvVar, err)
		}
		cfg.RateRefreshInterval = d
	}

	if v := os.Getenv(shutdownSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownSecondsEnvVar, err)
		}
		cfg.ShutdownPeriod = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(shutdownDurationEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownDurationEnvVar, err)
		}
		cfg.ShutdownPeriod = d
	}

	if v := os.Getenv("VALIDATE_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid VALIDATE_RATE_LIMIT: %w", err)
		}
		cfg.ValidateRateLimit = n
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	return listenAddr(c.Port)
}

// MetricsAddress returns the listen address for the metrics endpoint.
func (c Config) MetricsAddress() string {
	return listenAddr(c.MetricsPort)
}

// IsDev reports whether the service runs in a development environment.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

func listenAddr(port string) string {
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
