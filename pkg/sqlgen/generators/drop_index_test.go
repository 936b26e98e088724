package generators_test

import (
	"testing"

	"github.com/leapstack-labs/leapddl/pkg/sqlgen"
	"github.com/leapstack-labs/leapddl/pkg/sqlgen/generators"
	"github.com/leapstack-labs/leapddl/pkg/statement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropIndex(t *testing.T) {
	reg := generators.NewRegistry(nil)
	stmt := statement.NewDropIndex("idx_person_name", statement.OnTable("person"), statement.InSchema("hr"))

	tests := []struct {
		dialect string
		want    string
	}{
		{"postgres", "DROP INDEX hr.idx_person_name"},
		{"sqlite", "DROP INDEX hr.idx_person_name"},
		{"mysql", "DROP INDEX idx_person_name ON hr.person"},
		{"mssql", "DROP INDEX idx_person_name ON hr.person"},
		{"sybase", "DROP INDEX idx_person_name ON hr.person"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, reg, stmt, mustDialect(t, tt.dialect)))
		})
	}
}

func TestDropIndexValidation(t *testing.T) {
	reg := generators.NewRegistry(nil)

	t.Run("index name required everywhere", func(t *testing.T) {
		res, err := reg.Validate(statement.NewDropIndex(""), mustDialect(t, "postgres"))
		require.NoError(t, err)
		assert.Equal(t, []string{"indexName"}, res.Fields())
	})

	t.Run("table required for table scoped indexes", func(t *testing.T) {
		_, err := reg.Generate(statement.NewDropIndex("idx"), mustDialect(t, "mysql"))
		require.ErrorIs(t, err, sqlgen.ErrMissingRequiredField)
		assert.Contains(t, err.Error(), "tableName")
	})

	t.Run("table optional otherwise", func(t *testing.T) {
		assert.Equal(t, "DROP INDEX idx", render(t, reg, statement.NewDropIndex("idx"), mustDialect(t, "ansi")))
	})

	t.Run("wrong statement type", func(t *testing.T) {
		_, err := generators.DropIndex{}.Generate(statement.NewCreateIndex("t", []string{"a"}), mustDialect(t, "ansi"))
		assert.ErrorIs(t, err, sqlgen.ErrUnsupportedStatement)
	})
}

func TestBuiltinRegistrations(t *testing.T) {
	reg := generators.NewRegistry(nil)

	assert.Equal(t, []statement.Type{statement.TypeCreateIndex, statement.TypeDropIndex}, reg.Types())

	names := func(t statement.Type) []string {
		var out []string
		for _, e := range reg.Entries(t) {
			out = append(out, e.Name())
		}
		return out
	}
	assert.Equal(t, []string{"create_index", "create_index_qualified_name", "create_index_clustered"}, names(statement.TypeCreateIndex))
	assert.Equal(t, []string{"drop_index", "drop_index_on_table"}, names(statement.TypeDropIndex))
}
