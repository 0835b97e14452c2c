package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webglot/webglot/pkg/config"
)

// Each test uses its own struct type because parsed types are cached per
// process. Tests mutating the environment cannot run in parallel.

func TestLoad(t *testing.T) {
	type serverConfig struct {
		Addr      string   `env:"TEST_SERVER_ADDR" envDefault:":8080"`
		Languages []string `env:"TEST_SERVER_LANGUAGES" envDefault:"ru,en"`
		Debug     bool     `env:"TEST_SERVER_DEBUG" envDefault:"false"`
	}

	t.Setenv("TEST_SERVER_ADDR", ":9000")
	t.Setenv("TEST_SERVER_DEBUG", "true")

	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, []string{"ru", "en"}, cfg.Languages)
	assert.True(t, cfg.Debug)
}

func TestLoadDefaults(t *testing.T) {
	type defaultsConfig struct {
		Addr string `env:"TEST_DEFAULTS_ADDR" envDefault:":8080"`
		Lang string `env:"TEST_DEFAULTS_LANG" envDefault:"en"`
	}

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "en", cfg.Lang)
}

func TestLoadCachesParsedValues(t *testing.T) {
	type cachedConfig struct {
		Value string `env:"TEST_CACHED_VALUE" envDefault:"first"`
	}

	t.Setenv("TEST_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	require.Equal(t, "first", first.Value)

	// A later load of the same type returns the cached value even after the
	// environment changed.
	t.Setenv("TEST_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestLoadNilPointer(t *testing.T) {
	t.Parallel()

	type nilConfig struct {
		Value string `env:"TEST_NIL_VALUE"`
	}

	var cfg *nilConfig
	err := config.Load(cfg)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadParseError(t *testing.T) {
	type badConfig struct {
		Port int `env:"TEST_BAD_PORT"`
	}

	t.Setenv("TEST_BAD_PORT", "not-a-number")

	var cfg badConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoadPanicsOnError(t *testing.T) {
	type requiredConfig struct {
		Secret string `env:"TEST_REQUIRED_SECRET,required"`
	}

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
