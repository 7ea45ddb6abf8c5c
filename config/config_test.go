package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "https://api.exchangerate-api.com/v4/latest", cfg.Rates.URL)
	assert.EqualValues(t, "USD", cfg.Rates.Base)
	assert.EqualValues(t, "USD", cfg.Defaults.Source)
	assert.EqualValues(t, "PKR", cfg.Defaults.Destination)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "converter.toml")
	content := `
[http]
address = "127.0.0.1:9090"
allowed_origins = ["https://example.com"]

[defaults]
source = "eur"
destination = "GBP"

[logger]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTP.Address)
	assert.Equal(t, []string{"https://example.com"}, cfg.HTTP.AllowedOrigins)
	assert.EqualValues(t, "EUR", cfg.Defaults.Source)
	assert.EqualValues(t, "GBP", cfg.Defaults.Destination)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.EqualValues(t, "USD", cfg.Rates.Base)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CONVERTER_HTTP_ADDRESS", ":7070")
	t.Setenv("CONVERTER_RATES_URL", "http://localhost:1234/latest")
	t.Setenv("CONVERTER_DEFAULTS_DESTINATION", "jpy")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTP.Address)
	assert.Equal(t, "http://localhost:1234/latest", cfg.Rates.URL)
	assert.EqualValues(t, "JPY", cfg.Defaults.Destination)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("CONVERTER_DEFAULTS_SOURCE", "DOLLAR")

	_, err := Load("")

	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	assert.Error(t, err)
}
