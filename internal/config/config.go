package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Server         ServerConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	Features       FeatureFlags
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host         string
	Port         int
	Name         string
	User         string
	Password     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

func (d *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int

	// OpTimeout bounds every individual cache operation. It must stay
	// well below the server's request timeouts so a degraded cache
	// backend costs latency, not availability.
	OpTimeout time.Duration

	// BreakerCooldown is how long the cache circuit breaker stays open
	// after tripping before probing the backend again.
	BreakerCooldown time.Duration
}

func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type FeatureFlags struct {
	// EnableCatalogCache enables Redis caching for catalog, order and
	// review reads. When off, every read goes to Postgres.
	EnableCatalogCache bool

	// EnableRevenueCache enables caching of derived revenue figures.
	EnableRevenueCache bool

	// EnableDebugMode enables debug logging and endpoints.
	EnableDebugMode bool
}

func Load() *Config {
	return &Config{
		ServiceName:    getEnv("SERVICE_NAME", "catalog-service"),
		ServiceVersion: getEnv("SERVICE_VERSION", "1.0.0"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvInt("SERVER_PORT", 8082),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnvInt("DB_PORT", 5432),
			Name:         getEnv("DB_NAME", "acme_catalog"),
			User:         getEnv("DB_USER", "acme"),
			Password:     getEnv("DB_PASSWORD", ""),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getEnvDuration("DB_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:            getEnv("REDIS_HOST", "localhost"),
			Port:            getEnvInt("REDIS_PORT", 6379),
			Password:        getEnv("REDIS_PASSWORD", ""),
			DB:              getEnvInt("REDIS_DB", 0),
			OpTimeout:       getEnvDuration("REDIS_OP_TIMEOUT", 250*time.Millisecond),
			BreakerCooldown: getEnvDuration("REDIS_BREAKER_COOLDOWN", 30*time.Second),
		},
		Features: FeatureFlags{
			EnableCatalogCache: getEnvBool("ENABLE_CATALOG_CACHE", true),
			EnableRevenueCache: getEnvBool("ENABLE_REVENUE_CACHE", true),
			EnableDebugMode:    getEnvBool("ENABLE_DEBUG_MODE", false),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
