package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, 3600, cfg.Rates.FreshnessSec)
	require.Equal(t, 2, cfg.Resolver.BoundaryMaxLen)
}

func TestLoad_FileThenEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server": {"port": "9000"},
		"rates": {"endpoint": "https://example.test/v6", "freshness_sec": 600}
	}`), 0o644))

	t.Setenv("PORT", "9100")
	t.Setenv("RATES_API_KEY", "sekrit")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "9100", cfg.Server.Port, "env wins over file")
	require.Equal(t, "https://example.test/v6", cfg.Rates.Endpoint)
	require.Equal(t, 600, cfg.Rates.FreshnessSec)
	require.Equal(t, "sekrit", cfg.Rates.APIKey)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
