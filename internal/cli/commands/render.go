package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapddl/internal/cli/output"
	"github.com/leapstack-labs/leapddl/internal/engine"
	"github.com/leapstack-labs/leapddl/internal/loader"
	"github.com/leapstack-labs/leapddl/internal/migration"
	"github.com/leapstack-labs/leapddl/pkg/sqlgen"
	"github.com/spf13/cobra"
)

// ErrInvalidStatements is returned when at least one statement did not render.
var ErrInvalidStatements = errors.New("some statements failed validation")

// RenderOptions holds options for the render command.
type RenderOptions struct {
	Watch     bool   // Re-render when a statement file changes
	Migration string // Also write a goose migration with this name
}

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	opts := &RenderOptions{}
	cmd := &cobra.Command{
		Use:   "render <file>...",
		Short: "Render DDL for statement files in the configured dialect",
		Long: `Render the DDL for every statement in one or more statement files.

Files are looked up on the search path. A path that is not found as given is
retried without its leading slash.

Output adapts to environment:
  - Terminal: Plain SQL terminated with semicolons
  - Piped/Scripted: Markdown with a code block per file
  - JSON: Per-statement results including validation errors`,
		Example: `  # Render for the dialect in leapddl.yaml
  leapddl render indexes.yaml

  # Render for another dialect
  leapddl render indexes.yaml --dialect db2

  # Re-render whenever the file changes
  leapddl render indexes.yaml --watch

  # Also write a goose migration file
  leapddl render indexes.yaml --migration add_person_indexes`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-render when statement files change")
	cmd.Flags().StringVar(&opts.Migration, "migration", "", "Write a goose migration with this name")

	return cmd
}

func runRender(cmd *cobra.Command, paths []string, opts *RenderOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	if opts.Watch {
		return watchAndRender(cmd.Context(), cmdCtx, paths, opts)
	}
	return renderFiles(cmd.Context(), cmdCtx, paths, opts)
}

// renderFiles loads, renders and prints every file, then writes the
// migration when requested and every statement rendered.
func renderFiles(ctx context.Context, cmdCtx *CommandContext, paths []string, opts *RenderOptions) error {
	cfg := cmdCtx.Cfg
	batches := make([]*engine.Batch, 0, len(paths))
	failed := 0

	for _, p := range paths {
		f, err := loader.Load(ctx, cmdCtx.Accessor, p)
		if err != nil {
			return err
		}
		f.ApplyDefaults(cfg.Schema, cfg.Tablespace)

		batch, err := cmdCtx.Engine.RenderFile(ctx, f)
		if err != nil {
			return err
		}
		failed += batch.Failed()
		batches = append(batches, batch)
	}

	var migrationPath string
	if opts.Migration != "" && failed == 0 {
		var frags []sqlgen.Fragment
		for _, b := range batches {
			frags = append(frags, b.Fragments()...)
		}
		p, err := migration.WriteGoose(cfg.Migrations.Dir, opts.Migration, frags)
		if err != nil {
			return err
		}
		migrationPath = p
		cmdCtx.Logger.Info("wrote migration", "path", p)
	}

	if err := printBatches(cmdCtx.Renderer, batches, migrationPath); err != nil {
		return err
	}

	if failed > 0 {
		if opts.Migration != "" {
			cmdCtx.Renderer.Warning("migration not written")
		}
		return fmt.Errorf("%w: %d invalid", ErrInvalidStatements, failed)
	}
	return nil
}

func printBatches(r *output.Renderer, batches []*engine.Batch, migrationPath string) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		report := output.RenderReport{Migration: migrationPath}
		for _, b := range batches {
			report.Files = append(report.Files, batchOutput(b))
		}
		return r.JSON(report)
	case output.ModeMarkdown:
		for _, b := range batches {
			printBatchMarkdown(r, b)
		}
		if migrationPath != "" {
			r.Println(output.FormatKeyValue("Migration", migrationPath))
		}
	default:
		for _, b := range batches {
			printBatchText(r, b, len(batches) > 1)
		}
		if migrationPath != "" {
			r.Success("wrote " + migrationPath)
		}
	}
	return nil
}

func printBatchText(r *output.Renderer, b *engine.Batch, withHeader bool) {
	if withHeader {
		r.Println(r.Muted("-- " + b.Path))
	}
	for _, res := range b.Results {
		if res.OK() {
			for _, f := range res.Fragments {
				r.Println(terminate(f.SQL))
			}
			continue
		}
		r.Error(describeFailure(b.Path, res))
	}
}

func printBatchMarkdown(r *output.Renderer, b *engine.Batch) {
	r.Println(output.FormatHeader(1, "Rendered DDL: "+b.Path))
	r.Println("")
	r.Println(output.FormatKeyValue("Dialect", b.Dialect))
	r.Println(output.FormatKeyValue("Run", b.RunID))
	r.Println("")

	var sql []string
	for _, f := range b.Fragments() {
		sql = append(sql, terminate(f.SQL))
	}
	if len(sql) > 0 {
		r.Println(output.FormatCodeBlock("sql", strings.Join(sql, "\n")))
		r.Println("")
	}

	if b.Failed() == 0 {
		return
	}
	r.Println(output.FormatHeader(2, "Invalid statements"))
	r.Println("")
	for _, res := range b.Results {
		if !res.OK() {
			r.Printf("- %s\n", describeFailure(b.Path, res))
		}
	}
	r.Println("")
}

func batchOutput(b *engine.Batch) output.RenderOutput {
	out := output.RenderOutput{
		RunID:   b.RunID,
		Path:    b.Path,
		Dialect: b.Dialect,
		Failed:  b.Failed(),
	}
	for _, res := range b.Results {
		so := output.StatementOutput{
			Index:     res.Index,
			Type:      string(res.Statement.Type()),
			Generator: res.Generator,
		}
		for _, f := range res.Fragments {
			so.SQL = append(so.SQL, f.SQL)
		}
		if res.Validation.HasErrors() {
			for _, field := range res.Validation.Fields() {
				so.Invalid = append(so.Invalid, output.FieldErrors{
					Field:    field,
					Messages: res.Validation.Messages(field),
				})
			}
		}
		if res.Err != nil {
			so.Error = res.Err.Error()
		}
		out.Statements = append(out.Statements, so)
	}
	return out
}

func describeFailure(path string, res engine.Result) string {
	return fmt.Sprintf("%s: statement %d (%s): %v", path, res.Index+1, res.Statement.Type(), res.Err)
}

func terminate(sql string) string {
	sql = strings.TrimSpace(sql)
	if strings.HasSuffix(sql, ";") {
		return sql
	}
	return sql + ";"
}
