// Package config provides configuration management for the LeapDDL CLI.
//
// The shared Config type lives in internal/config and is re-exported here via
// a type alias; this package adds the koanf layering of defaults, config file,
// environment and flags.
package config

import (
	sharedcfg "github.com/leapstack-labs/leapddl/internal/config"
)

// Config is an alias for the shared configuration.
// This allows CLI code to use config.Config without importing internal/config.
type Config = sharedcfg.Config

// MigrationsConfig is an alias for the shared migrations configuration.
type MigrationsConfig = sharedcfg.MigrationsConfig

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultDialect       = sharedcfg.DefaultDialect
	DefaultOutput        = sharedcfg.DefaultOutput
	DefaultLogLevel      = sharedcfg.DefaultLogLevel
	DefaultConcurrency   = sharedcfg.DefaultConcurrency
	DefaultMigrationsDir = sharedcfg.DefaultMigrationsDir
)

// EnvPrefix prefixes every environment variable read as configuration.
const EnvPrefix = "LEAPDDL_"

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() *Config {
	c := &Config{}
	sharedcfg.ApplyDefaults(c)
	return c
}
