package commands

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/leapddl/internal/cli/config"
	"github.com/leapstack-labs/leapddl/internal/cli/output"
	"github.com/leapstack-labs/leapddl/internal/engine"
	"github.com/leapstack-labs/leapddl/pkg/dialect"
	"github.com/leapstack-labs/leapddl/pkg/resource"
	"github.com/leapstack-labs/leapddl/pkg/sqlgen"
	"github.com/leapstack-labs/leapddl/pkg/sqlgen/generators"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Dialect  *dialect.Dialect
	Registry *sqlgen.Registry
	Engine   *engine.Engine
	Accessor resource.Accessor
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with engine, accessor and renderer.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cmdCtx := NewCommandContextWithoutEngine(cmd)

	d, err := dialect.Lookup(cmdCtx.Cfg.Dialect)
	if err != nil {
		return nil, err
	}
	cmdCtx.Dialect = d

	eng, err := engine.New(engine.Config{
		Registry:    cmdCtx.Registry,
		Dialect:     d,
		Concurrency: cmdCtx.Cfg.Concurrency,
		Logger:      cmdCtx.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	cmdCtx.Engine = eng

	cmdCtx.Accessor = resource.NewFuzzyAccessor(resource.NewOSAccessor(cmdCtx.Cfg.SearchPath...))
	return cmdCtx, nil
}

// NewCommandContextWithoutEngine creates a CommandContext without an engine.
// Useful for commands that only describe the registry or dialects.
func NewCommandContextWithoutEngine(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Registry: generators.NewRegistry(logger),
		Renderer: r,
	}
}

// getConfig returns the current configuration, or defaults when none was loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.DefaultConfig()
}
