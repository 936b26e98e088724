package config

import "github.com/leapstack-labs/leapddl/pkg/dialect"

// Default configuration values.
const (
	DefaultDialect       = dialect.DefaultName
	DefaultOutput        = OutputAuto // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel      = "warn"
	DefaultConcurrency   = 4
	DefaultMigrationsDir = "migrations"
)

// DefaultSearchPath is the resource root list used when none is configured.
func DefaultSearchPath() []string {
	return []string{"."}
}

// Defaults returns the lowest configuration layer as koanf keys.
func Defaults() map[string]any {
	return map[string]any{
		"dialect":        DefaultDialect,
		"search_path":    DefaultSearchPath(),
		"output":         DefaultOutput,
		"log_level":      DefaultLogLevel,
		"concurrency":    DefaultConcurrency,
		"migrations.dir": DefaultMigrationsDir,
		"verbose":        false,
	}
}

// ApplyDefaults fills zero values of c.
func ApplyDefaults(c *Config) {
	if c == nil {
		return
	}
	if c.Dialect == "" {
		c.Dialect = DefaultDialect
		if d := dialect.Default(); d != nil {
			c.Dialect = d.Name()
		}
	}
	if len(c.SearchPath) == 0 {
		c.SearchPath = DefaultSearchPath()
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Concurrency == 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.Migrations.Dir == "" {
		c.Migrations.Dir = DefaultMigrationsDir
	}
}
