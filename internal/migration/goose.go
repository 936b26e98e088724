// Package migration writes rendered DDL as goose SQL migration files.
// Files are only written; nothing is executed.
package migration

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/template"

	"github.com/leapstack-labs/leapddl/pkg/sqlgen"
	"github.com/pressly/goose/v3"
)

// ErrNoFragments is returned when there is nothing to write.
var ErrNoFragments = errors.New("no SQL to write")

func init() {
	// goose logs "Created new file" on stdout; the CLI reports paths itself.
	goose.SetLogger(goose.NopLogger())
}

// Body returns the migration text for fragments: an Up section with one
// StatementBegin/End block per fragment. There is no Down section.
func Body(fragments []sqlgen.Fragment) string {
	var sb strings.Builder
	sb.WriteString("-- +goose Up\n")
	for _, f := range fragments {
		sb.WriteString("-- +goose StatementBegin\n")
		sb.WriteString(strings.TrimRight(strings.TrimSpace(f.SQL), ";"))
		sb.WriteString(";\n")
		sb.WriteString("-- +goose StatementEnd\n")
	}
	return sb.String()
}

// WriteGoose creates a timestamped goose migration named name in dir and
// returns its path.
func WriteGoose(dir, name string, fragments []sqlgen.Fragment) (string, error) {
	if len(fragments) == 0 {
		return "", ErrNoFragments
	}
	if strings.TrimSpace(name) == "" {
		return "", errors.New("migration name is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create migrations dir: %w", err)
	}

	// The SQL is baked into the template text; braces must not start actions.
	text := strings.ReplaceAll(Body(fragments), "{{", `{{"{{"}}`)
	tmpl, err := template.New("leapddl").Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to build migration template: %w", err)
	}

	before, err := listSQL(dir)
	if err != nil {
		return "", err
	}
	if err := goose.CreateWithTemplate(nil, dir, tmpl, name, "sql"); err != nil {
		return "", fmt.Errorf("failed to create migration: %w", err)
	}
	after, err := listSQL(dir)
	if err != nil {
		return "", err
	}

	for _, p := range after {
		if !slices.Contains(before, p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("migration for %q was not created in %s", name, dir)
}

func listSQL(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations dir: %w", err)
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			out = append(out, dir+string(os.PathSeparator)+e.Name())
		}
	}
	return out, nil
}
