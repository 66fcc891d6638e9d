package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var baseValidConfig = AppConfig{
	Server:  ServerConfig{Port: 8080},
	Logging: LogConfig{LogLevel: "info"},
	Redis: RedisConfig{
		Addr:           "localhost:6379",
		Password:       "pass",
		DB:             1,
		ConnectTimeout: 10 * time.Second,
	},
	Backend: BackendConfig{
		BaseURL: "http://localhost:3000/api",
		Timeout: 15 * time.Second,
	},
	Credit: CreditConfig{
		DefaultRate: 0.15,
		Rates: map[int]float64{
			1: 0.01, 2: 0.02, 3: 0.05, 4: 0.06, 5: 0.07, 6: 0.08,
		},
	},
	Checkout: CheckoutConfig{FenceTTL: 30 * time.Second},
	Session:  SessionConfig{ProfileTTL: 15 * time.Minute},
}

func writeTempConfig(t *testing.T, cfg AppConfig) string {
	t.Helper()
	data, _ := yaml.Marshal(cfg)
	tmp := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmp, data, 0644))
	return tmp
}

func TestValidateConfigErrors(t *testing.T) {
	t.Run("port out of range", func(t *testing.T) {
		c := baseValidConfig
		c.Server.Port = 0
		assert.Error(t, validateConfig(&c))
	})

	t.Run("empty backend base url", func(t *testing.T) {
		c := baseValidConfig
		c.Backend.BaseURL = "  "
		assert.Error(t, validateConfig(&c))
	})

	t.Run("backend timeout out of range", func(t *testing.T) {
		c := baseValidConfig
		c.Backend.Timeout = 2 * time.Minute
		assert.Error(t, validateConfig(&c))
	})

	t.Run("default rate not a fraction", func(t *testing.T) {
		c := baseValidConfig
		c.Credit.DefaultRate = 1.5
		assert.Error(t, validateConfig(&c))
	})

	t.Run("non-positive duration in rate table", func(t *testing.T) {
		c := baseValidConfig
		c.Credit.Rates = map[int]float64{0: 0.05}
		assert.Error(t, validateConfig(&c))
	})

	t.Run("rate out of range", func(t *testing.T) {
		c := baseValidConfig
		c.Credit.Rates = map[int]float64{3: 1.2}
		assert.Error(t, validateConfig(&c))
	})

	t.Run("fence ttl out of range", func(t *testing.T) {
		c := baseValidConfig
		c.Checkout.FenceTTL = time.Second
		assert.Error(t, validateConfig(&c))
	})

	t.Run("valid config passes", func(t *testing.T) {
		c := baseValidConfig
		assert.NoError(t, validateConfig(&c))
	})
}

func TestLoadFromConfigFilePath(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromConfigFilePath(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		tmp := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(tmp, []byte("server: [not a map"), 0644))
		_, err := LoadFromConfigFilePath(tmp)
		assert.Error(t, err)
	})

	t.Run("valid file with defaults applied", func(t *testing.T) {
		cfg := AppConfig{
			Backend: BackendConfig{BaseURL: "http://backend.local/api"},
		}
		path := writeTempConfig(t, cfg)

		loaded, err := LoadFromConfigFilePath(path)
		require.NoError(t, err)

		assert.Equal(t, 8080, loaded.Server.Port)
		assert.Equal(t, "info", loaded.Logging.LogLevel)
		assert.Equal(t, 15*time.Second, loaded.Backend.Timeout)
		assert.Equal(t, 0.15, loaded.Credit.DefaultRate)
		assert.Equal(t, 0.08, loaded.Credit.Rates[6])
		assert.Equal(t, 30*time.Second, loaded.Checkout.FenceTTL)
		assert.Equal(t, 15*time.Minute, loaded.Session.ProfileTTL)
	})
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("STOREFRONT_TEST_INT", "42")
	assert.Equal(t, 42, GetEnvOrDefaultAsInt("STOREFRONT_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvOrDefaultAsInt("STOREFRONT_TEST_INT_MISSING", 7))

	t.Setenv("STOREFRONT_TEST_INT_BAD", "abc")
	assert.Equal(t, 7, GetEnvOrDefaultAsInt("STOREFRONT_TEST_INT_BAD", 7))

	t.Setenv("STOREFRONT_TEST_STR", "value")
	assert.Equal(t, "value", GetEnvOrDefaultAsString("STOREFRONT_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnvOrDefaultAsString("STOREFRONT_TEST_STR_MISSING", "fallback"))

	t.Setenv("STOREFRONT_TEST_STR_BLANK", "   ")
	assert.Equal(t, "fallback", GetEnvOrDefaultAsString("STOREFRONT_TEST_STR_BLANK", "fallback"))
}
