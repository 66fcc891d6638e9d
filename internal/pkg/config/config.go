package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Laminito/ameublement-market/internal/pkg/logger"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds server-level config
type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	LogLevel string `yaml:"level"`
}

// Redis connection config
type RedisConfig struct {
	Addr           string        `yaml:"addr"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	EnableTLS      bool          `yaml:"enable_tls"`
	ConnectTimeout time.Duration `yaml:"connect_timeout_seconds"`
	CertContent    string        `yaml:"cert_content"`
}

// BackendConfig describes the commerce backend this storefront calls.
type BackendConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout_seconds"`
}

// CreditConfig carries the financing rate table. The duration domain is
// configuration, not code: unknown durations fall back to DefaultRate.
type CreditConfig struct {
	DefaultRate float64         `yaml:"default_rate"`
	Rates       map[int]float64 `yaml:"rates"`
}

// CheckoutConfig tunes the checkout attempt fence.
type CheckoutConfig struct {
	FenceTTL time.Duration `yaml:"fence_ttl_seconds"`
}

// SessionConfig tunes the cached-profile store.
type SessionConfig struct {
	ProfileTTL time.Duration `yaml:"profile_ttl_minutes"`
}

// AppConfig is the main config struct that holds all configs
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Logging  LogConfig      `yaml:"logging"`
	Redis    RedisConfig    `yaml:"redis"`
	Backend  BackendConfig  `yaml:"backend"`
	Credit   CreditConfig   `yaml:"credit"`
	Checkout CheckoutConfig `yaml:"checkout"`
	Session  SessionConfig  `yaml:"session"`
}

func assignDefaultConfigValues(cfg *AppConfig) *AppConfig {

	// server config defaults
	cfg.Server.Port = GetEnvOrDefaultAsInt("SERVER_PORT", cfg.Server.Port)
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}

	// log config defaults
	cfg.Logging.LogLevel = GetEnvOrDefaultAsString("LOGGING_LEVEL", "info")

	// Redis config defaults
	cfg.Redis.Addr = GetEnvOrDefaultAsString("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = GetEnvOrDefaultAsString("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = GetEnvOrDefaultAsInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.EnableTLS = GetEnvOrDefaultAsInt("REDIS_ENABLE_TLS", 0) == 1
	cfg.Redis.ConnectTimeout = time.Duration(GetEnvOrDefaultAsInt("REDIS_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second
	cfg.Redis.CertContent = GetEnvOrDefaultAsString("REDIS_TLS_CERT", cfg.Redis.CertContent)

	// Backend config defaults
	cfg.Backend.BaseURL = GetEnvOrDefaultAsString("BACKEND_BASE_URL", cfg.Backend.BaseURL)
	cfg.Backend.Timeout = time.Duration(GetEnvOrDefaultAsInt("BACKEND_TIMEOUT_SECONDS", 15)) * time.Second

	// Credit config defaults: the canonical rate table of the store.
	if cfg.Credit.DefaultRate == 0 {
		cfg.Credit.DefaultRate = 0.15
	}
	if len(cfg.Credit.Rates) == 0 {
		cfg.Credit.Rates = map[int]float64{
			1: 0.01,
			2: 0.02,
			3: 0.05,
			4: 0.06,
			5: 0.07,
			6: 0.08,
		}
	}

	// Checkout config defaults
	cfg.Checkout.FenceTTL = time.Duration(GetEnvOrDefaultAsInt("CHECKOUT_FENCE_TTL_SECONDS", 30)) * time.Second

	// Session config defaults
	cfg.Session.ProfileTTL = time.Duration(GetEnvOrDefaultAsInt("SESSION_PROFILE_TTL_MINUTES", 15)) * time.Minute

	return cfg
}

func validateConfig(cfg *AppConfig) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if strings.TrimSpace(cfg.Backend.BaseURL) == "" {
		return fmt.Errorf("backend.base_url must not be empty")
	}
	if cfg.Backend.Timeout < time.Second || cfg.Backend.Timeout > time.Minute {
		return fmt.Errorf("backend.timeout_seconds must be between 1s and 60s, got %v", cfg.Backend.Timeout)
	}

	// Rate table invariants: rates are fractions, the fallback is a
	// fraction, and every configured duration is a positive month count.
	if cfg.Credit.DefaultRate <= 0 || cfg.Credit.DefaultRate >= 1 {
		return fmt.Errorf("credit.default_rate must be a fraction between 0 and 1, got %v", cfg.Credit.DefaultRate)
	}
	for duration, rate := range cfg.Credit.Rates {
		if duration < 1 {
			return fmt.Errorf("credit.rates: duration must be a positive month count, got %d", duration)
		}
		if rate < 0 || rate >= 1 {
			return fmt.Errorf("credit.rates[%d]: rate must be a fraction in [0, 1), got %v", duration, rate)
		}
	}

	if cfg.Checkout.FenceTTL < 5*time.Second || cfg.Checkout.FenceTTL > 5*time.Minute {
		return fmt.Errorf("checkout.fence_ttl_seconds must be between 5s and 5m, got %v", cfg.Checkout.FenceTTL)
	}

	return nil
}

// LoadFromConfigFilePath loads and parses a config file into AppConfig
func LoadFromConfigFilePath(configPath string) (*AppConfig, error) {

	// #nosec G304: configPath comes from deployment configuration
	data, err := os.ReadFile(configPath)
	if err != nil {
		logger.Error("Failed to read config file", err, slog.String("path", configPath))
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("Failed to unmarshal config", err)
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	defaultCfg := assignDefaultConfigValues(&cfg)

	if err := validateConfig(defaultCfg); err != nil {
		logger.Error("Config validation failed", err)
		return nil, err
	}

	logger.Info("Configuration loaded successfully", slog.String("path", configPath))

	return defaultCfg, nil
}

// GetEnvOrDefaultAsInt returns the value of the given env variable
// as an int or the default value if not set or invalid.
func GetEnvOrDefaultAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return int(value)
}

func GetEnvOrDefaultAsString(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		if strings.TrimSpace(val) != "" {
			return val
		}
	}
	return defaultVal
}

// LoadFromConfig loads a .env file if present and then the config file
// pointed to by CONFIG_PATH.
func LoadFromConfig() (*AppConfig, error) {
	_ = godotenv.Load()

	configPath := GetEnvOrDefaultAsString("CONFIG_PATH", "configs/config.yaml")

	cfg, err := LoadFromConfigFilePath(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	return cfg, nil
}
