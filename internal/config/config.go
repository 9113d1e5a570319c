// Package config loads socialshare settings.
//
// Settings are resolved in order: built-in defaults, an optional YAML
// file, then SOCIALSHARE_* environment variables. Command line flags are
// applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvConfig     = "SOCIALSHARE_CONFIG"
	EnvAddr       = "SOCIALSHARE_ADDR"
	EnvDiagnostic = "SOCIALSHARE_DIAGNOSTIC"
	EnvRateLimit  = "SOCIALSHARE_RATE_LIMIT"
	EnvRateBurst  = "SOCIALSHARE_RATE_BURST"
	EnvCacheSize  = "SOCIALSHARE_CACHE_SIZE"
	EnvCacheTTL   = "SOCIALSHARE_CACHE_TTL"
	EnvVerbose    = "SOCIALSHARE_VERBOSE"
	EnvTrustProxy = "SOCIALSHARE_TRUST_PROXY"
)

// Config is the complete application configuration.
type Config struct {
	Verbose bool         `yaml:"verbose"`
	Server  ServerConfig `yaml:"server"`
	Cache   CacheConfig  `yaml:"cache"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Addr string `yaml:"addr"`
	// Diagnostic writes error messages into responses.
	Diagnostic bool `yaml:"diagnostic"`
	// TrustProxy takes the client address from X-Forwarded-For style
	// headers. Enable only behind a proxy that sets them.
	TrustProxy      bool          `yaml:"trust_proxy"`
	RateLimit       float64       `yaml:"rate_limit"`
	RateBurst       int           `yaml:"rate_burst"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// CacheConfig configures memoization of resolved links. Size 0 disables it.
type CacheConfig struct {
	Size int           `yaml:"size"`
	TTL  time.Duration `yaml:"ttl"`
}

// ValidationError describes a single invalid setting.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			RateLimit:       20,
			RateBurst:       40,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Cache: CacheConfig{
			Size: 10_000,
			TTL:  time.Hour,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (or
// $SOCIALSHARE_CONFIG when path is empty) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfig))
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	var errs []error

	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		c.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDiagnostic)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvDiagnostic, err))
		}
		c.Server.Diagnostic = b
	}
	if v := strings.TrimSpace(os.Getenv(EnvTrustProxy)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvTrustProxy, err))
		}
		c.Server.TrustProxy = b
	}
	if v := strings.TrimSpace(os.Getenv(EnvVerbose)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvVerbose, err))
		}
		c.Verbose = b
	}
	if v := strings.TrimSpace(os.Getenv(EnvRateLimit)); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvRateLimit, err))
		}
		c.Server.RateLimit = f
	}
	if v := strings.TrimSpace(os.Getenv(EnvRateBurst)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvRateBurst, err))
		}
		c.Server.RateBurst = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvCacheSize)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvCacheSize, err))
		}
		c.Cache.Size = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvCacheTTL)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvCacheTTL, err))
		}
		c.Cache.TTL = d
	}

	return errors.Join(errs...)
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, ValidationError{Field: "server.addr", Reason: "must not be empty"})
	}
	if c.Server.RateLimit < 0 {
		errs = append(errs, ValidationError{Field: "server.rate_limit", Reason: "must not be negative"})
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst < 1 {
		errs = append(errs, ValidationError{Field: "server.rate_burst", Reason: "must be at least 1 when rate limiting is enabled"})
	}
	if c.Cache.Size < 0 {
		errs = append(errs, ValidationError{Field: "cache.size", Reason: "must not be negative"})
	}
	if c.Cache.TTL < 0 {
		errs = append(errs, ValidationError{Field: "cache.ttl", Reason: "must not be negative"})
	}
	return errors.Join(errs...)
}
