package commands

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	clitest "github.com/leapstack-labs/leapddl/internal/cli/testutil"
	"github.com/leapstack-labs/leapddl/internal/cli/config"
	"github.com/leapstack-labs/leapddl/internal/cli/output"
	"github.com/leapstack-labs/leapddl/internal/engine"
	"github.com/leapstack-labs/leapddl/internal/testutil"
	"github.com/leapstack-labs/leapddl/pkg/dialect"
	_ "github.com/leapstack-labs/leapddl/pkg/dialects/all"
	"github.com/leapstack-labs/leapddl/pkg/resource"
	"github.com/leapstack-labs/leapddl/pkg/sqlgen/generators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContext wires a CommandContext over an in-memory search root.
func newTestContext(t *testing.T, dialectName string, tr *clitest.TestRenderer) *CommandContext {
	t.Helper()

	fs := testutil.NewMemFS(t, map[string]string{
		"/project/statements/person.yaml":  clitest.PersonStatements,
		"/project/statements/invalid.yaml": clitest.InvalidStatements,
	})

	cfg := config.DefaultConfig()
	cfg.Dialect = dialectName
	cfg.Tablespace = "USERSPACE1"
	cfg.Migrations.Dir = filepath.Join(t.TempDir(), "migrations")

	logger := testutil.NewTestLogger(t)
	d, err := dialect.Lookup(dialectName)
	require.NoError(t, err)
	reg := generators.NewRegistry(logger)
	eng, err := engine.New(engine.Config{Registry: reg, Dialect: d, Logger: logger})
	require.NoError(t, err)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Dialect:  d,
		Registry: reg,
		Engine:   eng,
		Accessor: resource.NewFuzzyAccessor(resource.NewFSAccessor(fs, "/project")),
		Renderer: tr.Renderer,
	}
}

func TestCommandMetadata(t *testing.T) {
	render := NewRenderCommand()
	assert.Equal(t, "render <file>...", render.Use)
	assert.NotEmpty(t, render.Short, "Short should not be empty")
	assert.NotEmpty(t, render.Example, "Example should not be empty")
	for _, flag := range []string{"watch", "migration"} {
		assert.NotNil(t, render.Flags().Lookup(flag), "flag %q should exist", flag)
	}

	assert.Equal(t, "dialects", NewDialectsCommand().Use)
	assert.Equal(t, "generators", NewGeneratorsCommand().Use)
}

func TestRenderFiles_Text(t *testing.T) {
	tr := clitest.NewTestRendererText()
	cmdCtx := newTestContext(t, "db2", tr)

	err := renderFiles(context.Background(), cmdCtx, []string{"statements/person.yaml"}, &RenderOptions{})
	require.NoError(t, err)

	assert.Equal(t,
		"CREATE INDEX IDX_PERSON_NAME ON PERSON(LAST_NAME, FIRST_NAME) IN USERSPACE1;\n"+
			"CREATE UNIQUE INDEX UQ_PERSON_EMAIL ON PERSON(EMAIL) IN USERSPACE1;\n",
		tr.Output())
	clitest.AssertNoANSI(t, tr.Output())
}

func TestRenderFiles_LeadingSlashFallback(t *testing.T) {
	tr := clitest.NewTestRendererText()
	cmdCtx := newTestContext(t, "postgres", tr)

	err := renderFiles(context.Background(), cmdCtx, []string{"/statements/person.yaml"}, &RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, tr.Output(), "TABLESPACE USERSPACE1;")
}

func TestRenderFiles_Invalid(t *testing.T) {
	tr := clitest.NewTestRendererText()
	cmdCtx := newTestContext(t, "ansi", tr)

	err := renderFiles(context.Background(), cmdCtx, []string{"statements/invalid.yaml"}, &RenderOptions{Migration: "nope"})
	require.ErrorIs(t, err, ErrInvalidStatements)

	// The valid statement is still printed.
	assert.Equal(t, "DROP INDEX IDX_OLD;\n", tr.Output())
	assert.Contains(t, tr.ErrorOutput(), "statement 2 (create_index)")
	assert.Contains(t, tr.ErrorOutput(), "columns is required")
	assert.Contains(t, tr.ErrorOutput(), "migration not written")

	_, statErr := os.Stat(cmdCtx.Cfg.Migrations.Dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRenderFiles_JSON(t *testing.T) {
	tr := clitest.NewTestRendererJSON()
	cmdCtx := newTestContext(t, "mssql", tr)

	err := renderFiles(context.Background(), cmdCtx, []string{"statements/person.yaml", "statements/invalid.yaml"}, &RenderOptions{})
	require.ErrorIs(t, err, ErrInvalidStatements)

	var report output.RenderReport
	require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &report))
	require.Len(t, report.Files, 2)

	person := report.Files[0]
	assert.Equal(t, "mssql", person.Dialect)
	assert.NotEmpty(t, person.RunID)
	assert.Zero(t, person.Failed)
	require.Len(t, person.Statements, 2)
	assert.Equal(t, "create_index_clustered", person.Statements[0].Generator)
	assert.Equal(t, []string{"CREATE INDEX IDX_PERSON_NAME ON PERSON(LAST_NAME, FIRST_NAME) ON USERSPACE1"}, person.Statements[0].SQL)

	invalid := report.Files[1]
	assert.Equal(t, 1, invalid.Failed)
	require.Len(t, invalid.Statements, 2)
	assert.Equal(t, "drop_index", invalid.Statements[0].Type)
	require.Len(t, invalid.Statements[1].Invalid, 1)
	assert.Equal(t, "columns", invalid.Statements[1].Invalid[0].Field)

	clitest.AssertNoANSI(t, tr.Output())
}

func TestRenderFiles_Markdown(t *testing.T) {
	tr := clitest.NewTestRendererMarkdown()
	cmdCtx := newTestContext(t, "oracle", tr)

	err := renderFiles(context.Background(), cmdCtx, []string{"statements/person.yaml"}, &RenderOptions{})
	require.NoError(t, err)

	out := tr.Output()
	assert.Contains(t, out, "# Rendered DDL: ")
	assert.Contains(t, out, "- **Dialect:** oracle")
	assert.Contains(t, out, "```sql\n")
	assert.NotContains(t, out, "Invalid statements")
	clitest.AssertValidMarkdown(t, out)
}

func TestRenderFiles_Migration(t *testing.T) {
	tr := clitest.NewTestRendererText()
	cmdCtx := newTestContext(t, "postgres", tr)

	err := renderFiles(context.Background(), cmdCtx, []string{"statements/person.yaml"}, &RenderOptions{Migration: "person indexes"})
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(cmdCtx.Cfg.Migrations.Dir, "*_person_indexes.sql"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	body, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "CREATE UNIQUE INDEX uq_person_email ON PERSON(EMAIL) TABLESPACE USERSPACE1;")
	assert.Contains(t, tr.Output(), "wrote "+matches[0])
}

func TestRenderFiles_MissingFile(t *testing.T) {
	tr := clitest.NewTestRendererText()
	cmdCtx := newTestContext(t, "ansi", tr)

	err := renderFiles(context.Background(), cmdCtx, []string{"statements/missing.yaml"}, &RenderOptions{})
	assert.ErrorIs(t, err, resource.ErrNotFound)
}

func TestListDialects(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		tr := clitest.NewTestRendererJSON()
		require.NoError(t, listDialects(tr.Renderer, dialect.All()))

		var infos []output.DialectInfo
		require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &infos))

		byName := make(map[string]output.DialectInfo)
		for _, info := range infos {
			byName[info.Name] = info
		}
		assert.Equal(t, "IN", byName["db2"].TablespaceStyle)
		assert.Equal(t, "ON", byName["mssql"].TablespaceStyle)
		assert.True(t, byName["mssql"].ClusteredIndexes)
		assert.Equal(t, "index", byName["sqlite"].IndexQualification)
		assert.Empty(t, byName["ansi"].TablespaceStyle)
		assert.Equal(t, "uppercase", byName["db2"].Normalization)
		assert.Equal(t, "when-needed", byName["ansi"].Quoting)
		assert.Positive(t, byName["ansi"].ReservedWords)
	})

	t.Run("text", func(t *testing.T) {
		tr := clitest.NewTestRendererText()
		require.NoError(t, listDialects(tr.Renderer, dialect.All()))
		assert.Contains(t, tr.Output(), "postgres")
		assert.Contains(t, tr.Output(), "Default: ansi")
		clitest.AssertNoANSI(t, tr.Output())
	})

	t.Run("markdown", func(t *testing.T) {
		tr := clitest.NewTestRendererMarkdown()
		require.NoError(t, listDialects(tr.Renderer, dialect.All()))
		assert.Contains(t, tr.Output(), "# Dialects")
		assert.Contains(t, tr.Output(), "| db2 |")
	})
}

func TestListGenerators(t *testing.T) {
	tr := clitest.NewTestRendererJSON()
	reg := generators.NewRegistry(nil)
	require.NoError(t, listGenerators(tr.Renderer, reg))

	var infos []output.GeneratorInfo
	require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &infos))
	require.Len(t, infos, 5)
	assert.Equal(t, "create_index", infos[0].Type)
	assert.Equal(t, "create_index", infos[0].Name)
	assert.Equal(t, 1, infos[0].Level)
	assert.Equal(t, "drop_index_on_table", infos[4].Name)
}

// waitForOutput waits until the renderer's stdout contains want.
func waitForOutput(t *testing.T, tr *clitest.TestRenderer, want string) {
	t.Helper()
	require.Eventually(t, func() bool {
		return strings.Contains(tr.Output(), want)
	}, 5*time.Second, 10*time.Millisecond, "output never contained %q:\n%s", want, tr.Output())
}

func TestWatchAndRender(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "person.yaml")
	clitest.WriteFile(t, file, clitest.InvalidStatements)

	tr := clitest.NewTestRendererText()
	cmdCtx := newTestContext(t, "postgres", tr)
	cmdCtx.Accessor = resource.NewFuzzyAccessor(resource.NewOSAccessor(root))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- watchAndRender(ctx, cmdCtx, []string{"person.yaml"}, &RenderOptions{Watch: true, Migration: "add_person"})
	}()

	waitForOutput(t, tr, "Watching 1 file(s) for changes")
	assert.Contains(t, tr.ErrorOutput(), "columns is required")
	assert.Contains(t, tr.ErrorOutput(), "migration not written")

	// First valid render writes the migration.
	clitest.WriteFile(t, file, clitest.PersonStatements)
	waitForOutput(t, tr, "CREATE UNIQUE INDEX uq_person_email ON PERSON(EMAIL) TABLESPACE USERSPACE1;")
	waitForOutput(t, tr, "wrote ")

	// Later saves re-render without another migration.
	clitest.WriteFile(t, file, strings.Replace(clitest.PersonStatements, "[EMAIL]", "[EMAIL_ADDRESS]", 1))
	waitForOutput(t, tr, "ON PERSON(EMAIL_ADDRESS)")

	cancel()
	require.NoError(t, <-done)

	matches, err := filepath.Glob(filepath.Join(cmdCtx.Cfg.Migrations.Dir, "*_add_person.sql"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	body, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "ON PERSON(EMAIL)")
	assert.NotContains(t, string(body), "EMAIL_ADDRESS")
	assert.Equal(t, 1, strings.Count(tr.Output(), "wrote "))
}

// accessorOnly hides every method beyond resource.Accessor.
type accessorOnly struct {
	resource.Accessor
}

func TestLocateAll(t *testing.T) {
	root := t.TempDir()
	clitest.WriteFile(t, filepath.Join(root, "person.yaml"), clitest.PersonStatements)

	tr := clitest.NewTestRendererText()
	cmdCtx := newTestContext(t, "ansi", tr)
	cmdCtx.Accessor = resource.NewFuzzyAccessor(resource.NewOSAccessor(root))

	t.Run("resolves absolute files", func(t *testing.T) {
		files, err := locateAll(cmdCtx, []string{"/person.yaml"})
		require.NoError(t, err)
		abs, err := filepath.Abs(filepath.Join(root, "person.yaml"))
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{filepath.Clean(abs): true}, files)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := locateAll(cmdCtx, []string{"missing.yaml"})
		assert.ErrorIs(t, err, resource.ErrNotFound)
	})

	t.Run("accessor without locator", func(t *testing.T) {
		plain := *cmdCtx
		plain.Accessor = accessorOnly{cmdCtx.Accessor}
		_, err := locateAll(&plain, []string{"person.yaml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot locate files")

		err = watchAndRender(context.Background(), &plain, []string{"person.yaml"}, &RenderOptions{Watch: true})
		require.Error(t, err)
	})
}
