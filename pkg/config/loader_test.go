package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/polyglot/pkg/config"
)

type defaultsConfig struct {
	Lang    string `env:"TEST_POLYGLOT_LANG" envDefault:"en_us"`
	Dynamic bool   `env:"TEST_POLYGLOT_DYNAMIC" envDefault:"true"`
	Workers int    `env:"TEST_POLYGLOT_WORKERS" envDefault:"4"`
}

type overrideConfig struct {
	Lang string `env:"TEST_POLYGLOT_OVERRIDE_LANG" envDefault:"en_us"`
}

type cachedConfig struct {
	Version string `env:"TEST_POLYGLOT_CACHED_VERSION"`
}

type requiredConfig struct {
	URL string `env:"TEST_POLYGLOT_REQUIRED_URL,required"`
}

type fileConfig struct {
	Base string `env:"TEST_POLYGLOT_FILE_BASE"`
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("TEST_POLYGLOT_LANG")
	os.Unsetenv("TEST_POLYGLOT_DYNAMIC")
	os.Unsetenv("TEST_POLYGLOT_WORKERS")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "en_us", cfg.Lang)
	assert.True(t, cfg.Dynamic)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_POLYGLOT_OVERRIDE_LANG", "ru_ru")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "ru_ru", cfg.Lang)
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("TEST_POLYGLOT_CACHED_VERSION", "1.20.4")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_POLYGLOT_CACHED_VERSION", "1.21")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "1.20.4", second.Version)

	config.Reset()

	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "1.21", third.Version)
}

func TestLoad_MissingRequiredIsRetried(t *testing.T) {
	os.Unsetenv("TEST_POLYGLOT_REQUIRED_URL")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("TEST_POLYGLOT_REQUIRED_URL", "https://example.com")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "https://example.com", cfg.URL)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	os.Unsetenv("TEST_POLYGLOT_REQUIRED_URL")
	config.Reset()

	var cfg requiredConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadEnv(t *testing.T) {
	os.Unsetenv("TEST_POLYGLOT_FILE_BASE")
	t.Cleanup(func() { os.Unsetenv("TEST_POLYGLOT_FILE_BASE") })

	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("TEST_POLYGLOT_FILE_BASE=https://mirror.local\n"), 0o600))

	require.NoError(t, config.LoadEnv(path))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "https://mirror.local", cfg.Base)

	assert.ErrorIs(t, config.LoadEnv(filepath.Join(t.TempDir(), "missing.env")), config.ErrLoadingEnvFile)
}
