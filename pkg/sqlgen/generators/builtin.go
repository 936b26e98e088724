package generators

import (
	"log/slog"

	"github.com/leapstack-labs/leapddl/pkg/sqlgen"
	"github.com/leapstack-labs/leapddl/pkg/statement"
)

// RegisterBuiltins adds every built-in generator to b.
// Dialect-specific create index generators are registered in order of
// precedence: a dialect that qualifies index names and also supports clustered
// indexes gets the qualified-name form.
func RegisterBuiltins(b *sqlgen.RegistryBuilder) *sqlgen.RegistryBuilder {
	return b.
		Register(statement.TypeCreateIndex, CreateIndex{}).
		Register(statement.TypeCreateIndex, CreateIndexQualifiedName{}).
		Register(statement.TypeCreateIndex, CreateIndexClustered{}).
		Register(statement.TypeDropIndex, DropIndex{}).
		Register(statement.TypeDropIndex, DropIndexOnTable{})
}

// NewRegistry returns a registry holding the built-in generators.
func NewRegistry(logger *slog.Logger) *sqlgen.Registry {
	return RegisterBuiltins(sqlgen.NewRegistryBuilder(sqlgen.WithLogger(logger))).Build()
}
