package generators

import (
	"strings"

	"github.com/leapstack-labs/leapddl/pkg/core"
	"github.com/leapstack-labs/leapddl/pkg/sqlgen"
	"github.com/leapstack-labs/leapddl/pkg/statement"
)

// CreateIndex renders CREATE [UNIQUE] INDEX for any dialect.
type CreateIndex struct{}

// Name implements sqlgen.Named.
func (CreateIndex) Name() string { return "create_index" }

// SpecializationLevel implements sqlgen.Generator.
func (CreateIndex) SpecializationLevel() int { return sqlgen.LevelDefault }

// Supports implements sqlgen.Generator. The default generator applies everywhere.
func (CreateIndex) Supports(statement.Statement, sqlgen.Dialect) bool { return true }

// Validate implements sqlgen.Generator.
func (g CreateIndex) Validate(stmt statement.Statement) *sqlgen.ValidationResult {
	return validateCreateIndex(stmt)
}

// Generate implements sqlgen.Generator.
func (g CreateIndex) Generate(stmt statement.Statement, d sqlgen.Dialect) ([]sqlgen.Fragment, error) {
	ci, err := createIndexFor(g, stmt)
	if err != nil {
		return nil, err
	}
	return renderCreateIndex(ci, d, createIndexStyle{}), nil
}

// CreateIndexQualifiedName renders CREATE INDEX for dialects that qualify the
// index rather than the table (CREATE INDEX s.idx ON t(...)).
type CreateIndexQualifiedName struct{}

// Name implements sqlgen.Named.
func (CreateIndexQualifiedName) Name() string { return "create_index_qualified_name" }

// SpecializationLevel implements sqlgen.Generator.
func (CreateIndexQualifiedName) SpecializationLevel() int { return sqlgen.LevelDialectSpecific }

// Supports implements sqlgen.Generator.
func (CreateIndexQualifiedName) Supports(_ statement.Statement, d sqlgen.Dialect) bool {
	return d.IndexQualification() == core.QualifyIndex
}

// Validate implements sqlgen.Generator.
func (CreateIndexQualifiedName) Validate(stmt statement.Statement) *sqlgen.ValidationResult {
	return validateCreateIndex(stmt)
}

// Generate implements sqlgen.Generator.
func (g CreateIndexQualifiedName) Generate(stmt statement.Statement, d sqlgen.Dialect) ([]sqlgen.Fragment, error) {
	ci, err := createIndexFor(g, stmt)
	if err != nil {
		return nil, err
	}
	return renderCreateIndex(ci, d, createIndexStyle{qualifyIndex: true}), nil
}

// CreateIndexClustered renders CREATE INDEX with CLUSTERED / NONCLUSTERED for
// dialects that support clustered indexes.
type CreateIndexClustered struct{}

// Name implements sqlgen.Named.
func (CreateIndexClustered) Name() string { return "create_index_clustered" }

// SpecializationLevel implements sqlgen.Generator.
func (CreateIndexClustered) SpecializationLevel() int { return sqlgen.LevelDialectSpecific }

// Supports implements sqlgen.Generator.
func (CreateIndexClustered) Supports(_ statement.Statement, d sqlgen.Dialect) bool {
	return d.SupportsClusteredIndexes()
}

// Validate implements sqlgen.Generator.
func (CreateIndexClustered) Validate(stmt statement.Statement) *sqlgen.ValidationResult {
	return validateCreateIndex(stmt)
}

// Generate implements sqlgen.Generator.
func (g CreateIndexClustered) Generate(stmt statement.Statement, d sqlgen.Dialect) ([]sqlgen.Fragment, error) {
	ci, err := createIndexFor(g, stmt)
	if err != nil {
		return nil, err
	}
	return renderCreateIndex(ci, d, createIndexStyle{clustering: true}), nil
}

type createIndexStyle struct {
	qualifyIndex bool
	clustering   bool
}

func validateCreateIndex(stmt statement.Statement) *sqlgen.ValidationResult {
	res := sqlgen.NewValidationResult(statement.TypeCreateIndex)
	ci, ok := stmt.(*statement.CreateIndex)
	if !ok || ci == nil {
		res.Add("statement", "expected a create_index statement")
		return res
	}
	res.CheckRequiredString("tableName", ci.TableName())
	res.CheckRequired("columns", len(ci.Columns()) > 0)
	return res
}

// createIndexFor type-checks and validates stmt before rendering.
func createIndexFor(g sqlgen.Generator, stmt statement.Statement) (*statement.CreateIndex, error) {
	ci, ok := stmt.(*statement.CreateIndex)
	if !ok || ci == nil {
		return nil, sqlgen.Unsupported(g, stmt)
	}
	if err := g.Validate(ci).Err(); err != nil {
		return nil, err
	}
	return ci, nil
}

func renderCreateIndex(ci *statement.CreateIndex, d sqlgen.Dialect, style createIndexStyle) []sqlgen.Fragment {
	table := ci.TableName()
	schema := ci.TableSchemaName()
	columns := ci.Columns()

	indexName := ci.IndexName()
	if strings.TrimSpace(indexName) == "" {
		indexName = d.DefaultIndexName(table, columns, ci.IsUnique())
	}

	var sb strings.Builder
	sb.WriteString("CREATE ")
	if ci.IsUnique() {
		sb.WriteString("UNIQUE ")
	}
	if style.clustering {
		switch ci.Clustering() {
		case statement.Clustered:
			sb.WriteString("CLUSTERED ")
		case statement.NonClustered:
			sb.WriteString("NONCLUSTERED ")
		}
	}
	sb.WriteString("INDEX ")

	if style.qualifyIndex {
		sb.WriteString(d.EscapeIndexName(schema, indexName))
		sb.WriteString(" ON ")
		sb.WriteString(d.EscapeTableName("", table))
	} else {
		sb.WriteString(d.EscapeIndexName("", indexName))
		sb.WriteString(" ON ")
		sb.WriteString(d.EscapeTableName(schema, table))
	}

	sb.WriteString("(")
	for i, col := range columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(d.EscapeColumnName(schema, table, col))
	}
	sb.WriteString(")")

	// The tablespace is free text and is emitted verbatim.
	if ts := ci.Tablespace(); strings.TrimSpace(ts) != "" && d.SupportsTablespaces() {
		sb.WriteString(" ")
		sb.WriteString(d.TablespaceStyle().Prefix())
		sb.WriteString(" ")
		sb.WriteString(ts)
	}

	return []sqlgen.Fragment{{SQL: sb.String()}}
}
