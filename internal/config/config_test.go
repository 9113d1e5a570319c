package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every SOCIALSHARE_* variable for the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvConfig, EnvAddr, EnvDiagnostic, EnvRateLimit, EnvRateBurst, EnvCacheSize, EnvCacheTTL, EnvVerbose, EnvTrustProxy} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "socialshare.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
verbose: true
server:
  addr: ":9090"
  diagnostic: true
  rate_limit: 5
  rate_burst: 10
cache:
  size: 100
  ttl: 30s
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.True(t, cfg.Server.Diagnostic)
	assert.Equal(t, 5.0, cfg.Server.RateLimit)
	assert.Equal(t, 10, cfg.Server.RateBurst)
	assert.Equal(t, 100, cfg.Cache.Size)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, Default().Server.ReadTimeout, cfg.Server.ReadTimeout, "unset keys keep defaults")
}

func TestLoadFileFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfig, writeConfig(t, "server:\n  addr: \":7070\"\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestLoadEmptyFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "server:\n  port: 80\n"))
	assert.ErrorContains(t, err, "parse config")
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server:\n  addr: \":9090\"\n")
	t.Setenv(EnvAddr, ":6060")
	t.Setenv(EnvDiagnostic, "true")
	t.Setenv(EnvRateLimit, "0")
	t.Setenv(EnvCacheSize, "0")
	t.Setenv(EnvCacheTTL, "5m")
	t.Setenv(EnvVerbose, "1")
	t.Setenv(EnvTrustProxy, "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Server.Addr)
	assert.True(t, cfg.Server.Diagnostic)
	assert.Zero(t, cfg.Server.RateLimit)
	assert.Zero(t, cfg.Cache.Size)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Server.TrustProxy)
}

func TestTrustProxyDefaultsOff(t *testing.T) {
	assert.False(t, Default().Server.TrustProxy)
}

func TestLoadEnvErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRateBurst, "many")
	t.Setenv(EnvCacheTTL, "forever")
	t.Setenv(EnvTrustProxy, "maybe")

	_, err := Load("")
	require.Error(t, err)
	assert.ErrorContains(t, err, EnvRateBurst)
	assert.ErrorContains(t, err, EnvCacheTTL)
	assert.ErrorContains(t, err, EnvTrustProxy)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Server.Addr = " "
	cfg.Server.RateLimit = 1
	cfg.Server.RateBurst = 0
	cfg.Cache.Size = -1
	cfg.Cache.TTL = -time.Second

	err := cfg.Validate()
	require.Error(t, err)

	var fields []string
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var verr ValidationError
		require.True(t, errors.As(e, &verr))
		fields = append(fields, verr.Field)
	}
	assert.Equal(t, []string{"server.addr", "server.rate_burst", "cache.size", "cache.ttl"}, fields)
}

func TestValidateNegativeRate(t *testing.T) {
	cfg := Default()
	cfg.Server.RateLimit = -1
	assert.ErrorContains(t, cfg.Validate(), "server.rate_limit")
}
