// Package config loads seedmock settings from an optional file and the
// SEEDMOCK_* environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment key, e.g. SEEDMOCK_SEED.
const EnvPrefix = "SEEDMOCK"

const (
	keySeed             = "seed"
	keyLocale           = "locale"
	keyRegistryCapacity = "registry_capacity"
	keyLogLevel         = "log_level"

	defaultLocale           = "en"
	defaultRegistryCapacity = 1024
	defaultLogLevel         = "info"
)

var (
	// ErrRead indicates the config file could not be read or decoded.
	ErrRead = errors.New("config: cannot read configuration")

	// ErrInvalid indicates a value that does not pass validation.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the facade configuration.
type Config struct {
	// Seed is a decimal uint32; empty means an entropy seed.
	Seed string `mapstructure:"seed"`
	// Locale is "en" or the path of a locale file.
	Locale           string `mapstructure:"locale"`
	RegistryCapacity int    `mapstructure:"registry_capacity"`
	LogLevel         string `mapstructure:"log_level"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Locale:           defaultLocale,
		RegistryCapacity: defaultRegistryCapacity,
		LogLevel:         defaultLogLevel,
	}
}

// Load reads path (skipped when empty), overlays SEEDMOCK_* variables and
// validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault(keySeed, "")
	v.SetDefault(keyLocale, defaultLocale)
	v.SetDefault(keyRegistryCapacity, defaultRegistryCapacity)
	v.SetDefault(keyLogLevel, defaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("Load: %s: %w: %w", path, ErrRead, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("Load: %w: %w", ErrRead, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.RegistryCapacity <= 0 {
		return fmt.Errorf("Validate: registry_capacity=%d: %w", c.RegistryCapacity, ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, _, err := c.SeedValue(); err != nil {
		return err
	}

	return nil
}

// SeedValue returns the configured seed. ok is false when no seed is set.
func (c *Config) SeedValue() (seed uint32, ok bool, err error) {
	s := strings.TrimSpace(c.Seed)
	if s == "" {
		return 0, false, nil
	}
	seed, err = cast.ToUint32E(s)
	if err != nil {
		return 0, false, fmt.Errorf("SeedValue: seed=%q: %v: %w", c.Seed, err, ErrInvalid)
	}

	return seed, true, nil
}

// Level parses LogLevel.
func (c *Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("Level: log_level=%q: %w", c.LogLevel, ErrInvalid)
	}

	return lvl, nil
}
