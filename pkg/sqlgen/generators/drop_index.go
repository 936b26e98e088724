package generators

import (
	"strings"

	"github.com/leapstack-labs/leapddl/pkg/sqlgen"
	"github.com/leapstack-labs/leapddl/pkg/statement"
)

// DropIndex renders DROP INDEX for dialects with schema-scoped index names.
type DropIndex struct{}

// Name implements sqlgen.Named.
func (DropIndex) Name() string { return "drop_index" }

// SpecializationLevel implements sqlgen.Generator.
func (DropIndex) SpecializationLevel() int { return sqlgen.LevelDefault }

// Supports implements sqlgen.Generator.
func (DropIndex) Supports(statement.Statement, sqlgen.Dialect) bool { return true }

// Validate implements sqlgen.Generator.
func (DropIndex) Validate(stmt statement.Statement) *sqlgen.ValidationResult {
	res, _ := validateDropIndex(stmt)
	return res
}

// Generate implements sqlgen.Generator.
func (g DropIndex) Generate(stmt statement.Statement, d sqlgen.Dialect) ([]sqlgen.Fragment, error) {
	di, err := dropIndexFor(g, stmt)
	if err != nil {
		return nil, err
	}
	return []sqlgen.Fragment{{
		SQL: "DROP INDEX " + d.EscapeIndexName(di.TableSchemaName(), di.IndexName()),
	}}, nil
}

// DropIndexOnTable renders DROP INDEX name ON table for dialects whose index
// names are scoped to their table.
type DropIndexOnTable struct{}

// Name implements sqlgen.Named.
func (DropIndexOnTable) Name() string { return "drop_index_on_table" }

// SpecializationLevel implements sqlgen.Generator.
func (DropIndexOnTable) SpecializationLevel() int { return sqlgen.LevelDialectSpecific }

// Supports implements sqlgen.Generator.
func (DropIndexOnTable) Supports(_ statement.Statement, d sqlgen.Dialect) bool {
	return d.TableScopedIndexes()
}

// Validate implements sqlgen.Generator.
func (DropIndexOnTable) Validate(stmt statement.Statement) *sqlgen.ValidationResult {
	res, di := validateDropIndex(stmt)
	if di != nil {
		res.CheckRequiredString("tableName", di.TableName())
	}
	return res
}

// Generate implements sqlgen.Generator.
func (g DropIndexOnTable) Generate(stmt statement.Statement, d sqlgen.Dialect) ([]sqlgen.Fragment, error) {
	di, err := dropIndexFor(g, stmt)
	if err != nil {
		return nil, err
	}
	return []sqlgen.Fragment{{
		SQL: "DROP INDEX " + d.EscapeIndexName("", di.IndexName()) +
			" ON " + d.EscapeTableName(di.TableSchemaName(), di.TableName()),
	}}, nil
}

func validateDropIndex(stmt statement.Statement) (*sqlgen.ValidationResult, *statement.DropIndex) {
	res := sqlgen.NewValidationResult(statement.TypeDropIndex)
	di, ok := stmt.(*statement.DropIndex)
	if !ok || di == nil {
		res.Add("statement", "expected a drop_index statement")
		return res, nil
	}
	res.CheckRequired("indexName", strings.TrimSpace(di.IndexName()) != "")
	return res, di
}

func dropIndexFor(g sqlgen.Generator, stmt statement.Statement) (*statement.DropIndex, error) {
	di, ok := stmt.(*statement.DropIndex)
	if !ok || di == nil {
		return nil, sqlgen.Unsupported(g, stmt)
	}
	if err := g.Validate(di).Err(); err != nil {
		return nil, err
	}
	return di, nil
}
