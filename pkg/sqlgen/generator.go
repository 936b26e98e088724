package sqlgen

import (
	"fmt"

	"github.com/leapstack-labs/leapddl/pkg/core"
	"github.com/leapstack-labs/leapddl/pkg/statement"
)

// Specialization levels. Higher levels win during dispatch.
const (
	LevelDefault         = 1
	LevelDialectSpecific = 5
)

// Fragment is one unit of generated SQL.
type Fragment struct {
	SQL string `json:"sql"`
}

// String implements fmt.Stringer.
func (f Fragment) String() string {
	return f.SQL
}

// Dialect is the capability surface generators consume. Generators never
// inspect a dialect's name to decide what to emit.
type Dialect interface {
	Name() string
	EscapeIndexName(schema, name string) string
	EscapeTableName(schema, name string) string
	EscapeColumnName(schema, table, name string) string
	SupportsTablespaces() bool
	TablespaceStyle() core.TablespaceStyle
	DefaultIndexName(table string, columns []string, unique bool) string
	IndexQualification() core.IndexQualification
	TableScopedIndexes() bool
	SupportsClusteredIndexes() bool
}

// Generator renders one statement type.
type Generator interface {
	// SpecializationLevel ranks the generator against others for the same type.
	SpecializationLevel() int
	// Supports reports whether the generator applies to the statement and dialect.
	Supports(stmt statement.Statement, d Dialect) bool
	// Validate checks the statement independently of any dialect.
	Validate(stmt statement.Statement) *ValidationResult
	// Generate renders the statement. It must only be called after Validate
	// reported no errors.
	Generate(stmt statement.Statement, d Dialect) ([]Fragment, error)
}

// Named is implemented by generators that have a display name.
type Named interface {
	Name() string
}

// NameOf returns the display name of a generator.
func NameOf(g Generator) string {
	if n, ok := g.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", g)
}
