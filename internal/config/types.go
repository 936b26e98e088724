// Package config provides shared configuration types for LeapDDL.
// This package is decoupled from CLI concerns; internal/cli/config layers
// files, environment and flags on top of it.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/leapstack-labs/leapddl/pkg/dialect"
)

// Output modes.
const (
	OutputAuto     = "auto"
	OutputText     = "text"
	OutputMarkdown = "markdown"
	OutputJSON     = "json"
)

// MigrationsConfig controls goose migration output.
type MigrationsConfig struct {
	Dir string `koanf:"dir" validate:"required"`
}

// Config holds the settings shared by every command.
type Config struct {
	Dialect     string           `koanf:"dialect" validate:"required"`
	Schema      string           `koanf:"schema"`
	Tablespace  string           `koanf:"tablespace"`
	SearchPath  []string         `koanf:"search_path" validate:"min=1,dive,required"`
	Output      string           `koanf:"output" validate:"oneof=auto text markdown json"`
	LogLevel    string           `koanf:"log_level" validate:"oneof=debug info warn error"`
	Concurrency int              `koanf:"concurrency" validate:"min=1,max=256"`
	Migrations  MigrationsConfig `koanf:"migrations"`
	Verbose     bool             `koanf:"verbose"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and that the dialect is registered.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fieldMessage(fe))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return err
	}
	if _, err := dialect.Lookup(c.Dialect); err != nil {
		return err
	}
	return nil
}

// fieldMessage renders a validator failure using the config key name.
func fieldMessage(fe validator.FieldError) string {
	key := keyFor(fe.StructNamespace())
	switch fe.Tag() {
	case "required":
		return key + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", key, fe.Param(), fe.Value())
	case "min", "max":
		return fmt.Sprintf("%s fails %s=%s", key, fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s fails %s", key, fe.Tag())
	}
}

var keyNames = map[string]string{
	"Dialect":     "dialect",
	"Schema":      "schema",
	"Tablespace":  "tablespace",
	"SearchPath":  "search_path",
	"Output":      "output",
	"LogLevel":    "log_level",
	"Concurrency": "concurrency",
	"Migrations":  "migrations",
	"Dir":         "dir",
}

// keyFor maps "Config.Migrations.Dir" to "migrations.dir".
func keyFor(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		name, idx, _ := strings.Cut(p, "[")
		if k, ok := keyNames[name]; ok {
			name = k
		}
		if idx != "" {
			name += "[" + idx
		}
		parts[i] = name
	}
	return strings.Join(parts, ".")
}
