// Package engine renders batches of statements for one dialect.
// Statements are dispatched and rendered concurrently; results keep input order.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/leapstack-labs/leapddl/internal/loader"
	"github.com/leapstack-labs/leapddl/pkg/sqlgen"
	"github.com/leapstack-labs/leapddl/pkg/statement"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel rendering when Config.Concurrency is unset.
const DefaultConcurrency = 4

// Engine renders statements through a generator registry.
type Engine struct {
	registry    *sqlgen.Registry
	dialect     sqlgen.Dialect
	concurrency int

	// Structured logger
	logger *slog.Logger
}

// Config holds engine configuration.
type Config struct {
	// Registry selects generators (required)
	Registry *sqlgen.Registry
	// Dialect is the render target (required)
	Dialect sqlgen.Dialect
	// Concurrency bounds parallel rendering; <= 0 uses DefaultConcurrency
	Concurrency int
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates a new engine.
func New(cfg Config) (*Engine, error) {
	// Initialize logger (use discard handler if nil)
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if cfg.Registry == nil {
		return nil, errors.New("engine: generator registry is required")
	}
	if cfg.Dialect == nil {
		return nil, errors.New("engine: dialect is required")
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	logger.Debug("initializing engine", "dialect", cfg.Dialect.Name(), "concurrency", concurrency)

	return &Engine{
		registry:    cfg.Registry,
		dialect:     cfg.Dialect,
		concurrency: concurrency,
		logger:      logger,
	}, nil
}

// Dialect returns the render target.
func (e *Engine) Dialect() sqlgen.Dialect {
	return e.dialect
}

// Result is the outcome for one statement.
type Result struct {
	Index      int
	Statement  statement.Statement
	Generator  string
	Validation *sqlgen.ValidationResult
	Fragments  []sqlgen.Fragment
	Err        error
}

// OK reports whether the statement rendered.
func (r Result) OK() bool {
	return r.Err == nil
}

// Batch is the outcome for a list of statements.
type Batch struct {
	RunID   string
	Path    string
	Dialect string
	Results []Result
}

// Failed returns the number of statements that did not render.
func (b *Batch) Failed() int {
	n := 0
	for _, r := range b.Results {
		if !r.OK() {
			n++
		}
	}
	return n
}

// Fragments returns every rendered fragment in statement order.
func (b *Batch) Fragments() []sqlgen.Fragment {
	var out []sqlgen.Fragment
	for _, r := range b.Results {
		out = append(out, r.Fragments...)
	}
	return out
}

// Err joins the per-statement errors, or returns nil.
func (b *Batch) Err() error {
	var errs []error
	for _, r := range b.Results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("statement %d: %w", r.Index+1, r.Err))
		}
	}
	return errors.Join(errs...)
}

// Render dispatches, validates and renders stmts in two phases:
// Phase 1: dispatch every statement (fail fast on a missing generator)
// Phase 2: validate and render concurrently
//
// Invalid statements are reported per Result. The returned error is non-nil
// only for failures that make the whole batch meaningless.
func (e *Engine) Render(ctx context.Context, stmts []statement.Statement) (*Batch, error) {
	runID := uuid.NewString()
	logger := e.logger.With("run_id", runID)
	logger.Info("starting render", "dialect", e.dialect.Name(), "statements", len(stmts))

	batch := &Batch{
		RunID:   runID,
		Dialect: e.dialect.Name(),
		Results: make([]Result, len(stmts)),
	}

	// Phase 1: dispatch
	gens := make([]sqlgen.Generator, len(stmts))
	for i, stmt := range stmts {
		g, err := e.registry.Dispatch(stmt, e.dialect)
		if err != nil {
			logger.Error("dispatch failed", "index", i, "type", stmt.Type(), "error", err)
			return nil, fmt.Errorf("statement %d: %w", i+1, err)
		}
		gens[i] = g
	}

	// Phase 2: validate and render, each result into its own slot
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(e.concurrency)
	for i, stmt := range stmts {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			batch.Results[i] = e.renderOne(logger, i, stmt, gens[i])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if failed := batch.Failed(); failed > 0 {
		logger.Warn("render finished with invalid statements", "failed", failed, "total", len(stmts))
	} else {
		logger.Info("render completed", "fragments", len(batch.Fragments()))
	}
	return batch, nil
}

func (e *Engine) renderOne(logger *slog.Logger, i int, stmt statement.Statement, g sqlgen.Generator) Result {
	res := Result{
		Index:     i,
		Statement: stmt,
		Generator: sqlgen.NameOf(g),
	}

	res.Validation = g.Validate(stmt)
	if err := res.Validation.Err(); err != nil {
		logger.Debug("statement invalid", "index", i, "generator", res.Generator, "error", err)
		res.Err = err
		return res
	}

	frags, err := g.Generate(stmt, e.dialect)
	if err != nil {
		res.Err = err
		return res
	}
	res.Fragments = frags
	logger.Debug("statement rendered", "index", i, "generator", res.Generator, "fragments", len(frags))
	return res
}

// RenderFile renders every statement in f.
func (e *Engine) RenderFile(ctx context.Context, f *loader.File) (*Batch, error) {
	batch, err := e.Render(ctx, f.Statements)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	batch.Path = f.Path
	return batch, nil
}
