package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/leapstack-labs/leapddl/pkg/dialects/all"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("dialect", "d", "", "")
	fs.String("schema", "", "")
	fs.String("tablespace", "", "")
	fs.StringSlice("search-path", nil, "")
	fs.StringP("output", "o", "", "")
	fs.String("log-level", "", "")
	fs.Int("concurrency", 0, "")
	fs.String("migrations-dir", "", "")
	fs.BoolP("verbose", "v", false, "")
	return fs
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, "leapddl.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultDialect, cfg.Dialect)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultConcurrency, cfg.Concurrency)
	assert.Len(t, cfg.SearchPath, 1)
	assert.True(t, filepath.IsAbs(cfg.SearchPath[0]))
	assert.Equal(t, "migrations", filepath.Base(cfg.Migrations.Dir))
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_Precedence(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	writeConfig(t, dir, `dialect: oracle
schema: hr
tablespace: users
output: json
concurrency: 2
search_path:
  - statements
migrations:
  dir: db/migrations
`)
	t.Chdir(dir)

	t.Run("config file", func(t *testing.T) {
		cfg, err := LoadConfig("", nil)
		require.NoError(t, err)

		assert.Equal(t, "oracle", cfg.Dialect)
		assert.Equal(t, "hr", cfg.Schema)
		assert.Equal(t, "users", cfg.Tablespace)
		assert.Equal(t, "json", cfg.Output)
		assert.Equal(t, 2, cfg.Concurrency)
		assert.Equal(t, filepath.Join(dir, "statements"), cfg.SearchPath[0])
		assert.Equal(t, filepath.Join(dir, "db", "migrations"), cfg.Migrations.Dir)
		assert.Equal(t, filepath.Join(dir, "leapddl.yaml"), GetConfigFileUsed())
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("LEAPDDL_DIALECT", "db2")
		t.Setenv("LEAPDDL_SEARCH_PATH", "a,b")
		t.Setenv("LEAPDDL_MIGRATIONS__DIR", "/tmp/m")

		cfg, err := LoadConfig("", nil)
		require.NoError(t, err)

		assert.Equal(t, "db2", cfg.Dialect)
		assert.Equal(t, []string{filepath.Join(dir, "a"), filepath.Join(dir, "b")}, cfg.SearchPath)
		assert.Equal(t, "/tmp/m", cfg.Migrations.Dir)
		assert.Equal(t, "hr", cfg.Schema)
	})

	t.Run("flags override env", func(t *testing.T) {
		t.Setenv("LEAPDDL_DIALECT", "db2")
		flags := newFlags()
		require.NoError(t, flags.Parse([]string{"--dialect", "mssql", "--log-level", "debug", "--search-path", "/abs/x", "-v"}))

		cfg, err := LoadConfig("", flags)
		require.NoError(t, err)

		assert.Equal(t, "mssql", cfg.Dialect)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, []string{"/abs/x"}, cfg.SearchPath)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, "users", cfg.Tablespace)
	})
}

func TestLoadConfig_Errors(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	t.Chdir(dir)

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "nope.yaml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})

	t.Run("unknown dialect", func(t *testing.T) {
		p := writeConfig(t, dir, "dialect: nosuchdb\n")
		_, err := LoadConfig(p, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Available dialects")
	})

	t.Run("bad output", func(t *testing.T) {
		flags := newFlags()
		require.NoError(t, flags.Parse([]string{"-o", "html"}))
		p := writeConfig(t, dir, "dialect: ansi\n")
		_, err := LoadConfig(p, flags)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "output must be one of")
	})
}

func TestValidateSearchPath(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0o600))

	assert.NoError(t, ValidateSearchPath(&Config{SearchPath: []string{dir}}))

	err := ValidateSearchPath(&Config{SearchPath: []string{filepath.Join(dir, "missing")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Hint:")

	err = ValidateSearchPath(&Config{SearchPath: []string{filePath}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestLogger(t *testing.T) {
	t.Run("missing from context", func(t *testing.T) {
		assert.NotNil(t, GetLogger(context.Background()))
	})

	t.Run("stored in context", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&buf, "info")
		ctx := context.WithValue(context.Background(), LoggerKey(), l)

		GetLogger(ctx).Info("hello", "k", "v")
		GetLogger(ctx).Debug("hidden")

		assert.Contains(t, buf.String(), "msg=hello k=v")
		assert.NotContains(t, buf.String(), "hidden")
	})

	t.Run("unknown level falls back to warn", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&buf, "loud")
		l.Info("quiet")
		l.Warn("shown")
		assert.NotContains(t, buf.String(), "quiet")
		assert.Contains(t, buf.String(), "shown")
	})
}
