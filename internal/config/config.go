package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	AppEnv string

	StoreDriver string
	StoreDir    string
	KeyPrefix   string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret  string
	SessionTTL time.Duration

	// Checkout pricing policy.
	TaxRate               float64
	FreeShippingThreshold float64
	ShippingFee           float64

	// Simulated backend behaviour.
	AuthLatency    time.Duration
	OrderLatency   time.Duration
	AuthRateLimit  float64
	AuthRateBurst  int
	OrderRateLimit float64
	OrderRateBurst int
}

// LoadConfig reads .env (if any) and the process environment. Malformed
// numeric values fall back to their defaults.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv: envString("APP_ENV", "development"),

		StoreDriver: envString("STORE_DRIVER", DriverFile),
		StoreDir:    envString("STORE_DIR", ".shopuniverse"),
		KeyPrefix:   envString("STORE_KEY_PREFIX", "shopUniverse_"),

		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     envString("DB_PORT", "5432"),

		JWTSecret:  envString("JWT_SECRET", "shopuniverse-dev-secret"),
		SessionTTL: envDuration("SESSION_TTL", 24*time.Hour),

		TaxRate:               envFloat("TAX_RATE", 0.08),
		FreeShippingThreshold: envFloat("FREE_SHIPPING_THRESHOLD", 100),
		ShippingFee:           envFloat("SHIPPING_FEE", 10),

		AuthLatency:    envDuration("AUTH_LATENCY", time.Second),
		OrderLatency:   envDuration("ORDER_LATENCY", 1500*time.Millisecond),
		AuthRateLimit:  envFloat("AUTH_RATE_LIMIT", 2),
		AuthRateBurst:  envInt("AUTH_RATE_BURST", 5),
		OrderRateLimit: envFloat("ORDER_RATE_LIMIT", 10),
		OrderRateBurst: envInt("ORDER_RATE_BURST", 20),
	}
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverFile:
		if c.StoreDir == "" {
			return fmt.Errorf("%w: STORE_DIR is required for the file driver", ErrInvalidConfig)
		}
	case DriverPostgres:
		if c.DBHost == "" {
			return fmt.Errorf("%w: DB_HOST is required for the postgres driver", ErrInvalidConfig)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown STORE_DRIVER %q", ErrInvalidConfig, c.StoreDriver)
	}

	if c.TaxRate < 0 || c.FreeShippingThreshold < 0 || c.ShippingFee < 0 {
		return fmt.Errorf("%w: pricing values must not be negative", ErrInvalidConfig)
	}
	if c.AuthLatency < 0 || c.OrderLatency < 0 {
		return fmt.Errorf("%w: latency must not be negative", ErrInvalidConfig)
	}
	if c.AuthRateLimit < 0 || c.OrderRateLimit < 0 || c.AuthRateBurst < 0 || c.OrderRateBurst < 0 {
		return fmt.Errorf("%w: rate limits must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DSN builds the lib/pq connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return def
	}
	return v
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func envDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
