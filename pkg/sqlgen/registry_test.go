package sqlgen_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/leapstack-labs/leapddl/internal/testutil"
	"github.com/leapstack-labs/leapddl/pkg/dialect"
	"github.com/leapstack-labs/leapddl/pkg/sqlgen"
	"github.com/leapstack-labs/leapddl/pkg/statement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator is a configurable Generator for dispatch tests.
type stubGenerator struct {
	name     string
	level    int
	supports func(d sqlgen.Dialect) bool
	invalid  []string
}

func (g *stubGenerator) Name() string             { return g.name }
func (g *stubGenerator) SpecializationLevel() int { return g.level }

func (g *stubGenerator) Supports(_ statement.Statement, d sqlgen.Dialect) bool {
	return g.supports == nil || g.supports(d)
}

func (g *stubGenerator) Validate(stmt statement.Statement) *sqlgen.ValidationResult {
	res := sqlgen.NewValidationResult(stmt.Type())
	for _, f := range g.invalid {
		res.CheckRequired(f, false)
	}
	return res
}

func (g *stubGenerator) Generate(_ statement.Statement, _ sqlgen.Dialect) ([]sqlgen.Fragment, error) {
	return []sqlgen.Fragment{{SQL: g.name}}, nil
}

func onlyFor(name string) func(sqlgen.Dialect) bool {
	return func(d sqlgen.Dialect) bool { return d.Name() == name }
}

var (
	ansi  = dialect.NewDialect("ansi_test").Build()
	other = dialect.NewDialect("other_test").Build()
	stmt  = statement.NewCreateIndex("t", []string{"a"})
)

func TestDispatchHighestLevelWins(t *testing.T) {
	reg := sqlgen.NewRegistryBuilder(sqlgen.WithLogger(testutil.NewTestLogger(t))).
		Register(statement.TypeCreateIndex, &stubGenerator{name: "default", level: sqlgen.LevelDefault}).
		Register(statement.TypeCreateIndex, &stubGenerator{name: "special", level: sqlgen.LevelDialectSpecific, supports: onlyFor("other_test")}).
		Build()

	tests := []struct {
		dialect sqlgen.Dialect
		want    string
	}{
		{ansi, "default"},
		{other, "special"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect.Name(), func(t *testing.T) {
			g, err := reg.Dispatch(stmt, tt.dialect)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sqlgen.NameOf(g))
		})
	}
}

func TestDispatchTieEarliestRegistrationWins(t *testing.T) {
	reg := sqlgen.NewRegistryBuilder().
		Register(statement.TypeCreateIndex, &stubGenerator{name: "first", level: 3}).
		Register(statement.TypeCreateIndex, &stubGenerator{name: "second", level: 3}).
		Register(statement.TypeCreateIndex, &stubGenerator{name: "lower", level: 2}).
		Build()

	for i := 0; i < 5; i++ {
		g, err := reg.Dispatch(stmt, ansi)
		require.NoError(t, err)
		assert.Equal(t, "first", sqlgen.NameOf(g))
	}
}

func TestDispatchNoApplicableGenerator(t *testing.T) {
	reg := sqlgen.NewRegistryBuilder().
		Register(statement.TypeCreateIndex, &stubGenerator{name: "special", level: 5, supports: onlyFor("other_test")}).
		Build()

	t.Run("no supporting generator", func(t *testing.T) {
		_, err := reg.Dispatch(stmt, ansi)
		require.ErrorIs(t, err, sqlgen.ErrNoApplicableGenerator)

		var nag *sqlgen.NoApplicableGeneratorError
		require.ErrorAs(t, err, &nag)
		assert.Equal(t, statement.TypeCreateIndex, nag.Type)
		assert.Equal(t, "ansi_test", nag.Dialect)
	})

	t.Run("unregistered type", func(t *testing.T) {
		_, err := reg.Dispatch(statement.NewDropIndex("idx"), other)
		assert.ErrorIs(t, err, sqlgen.ErrNoApplicableGenerator)
	})

	t.Run("generate surfaces the same error", func(t *testing.T) {
		frags, err := reg.Generate(stmt, ansi)
		assert.Nil(t, frags)
		assert.ErrorIs(t, err, sqlgen.ErrNoApplicableGenerator)
	})
}

func TestGenerateRejectsInvalidStatement(t *testing.T) {
	reg := sqlgen.NewRegistryBuilder().
		Register(statement.TypeCreateIndex, &stubGenerator{name: "g", level: 1, invalid: []string{"tableName", "columns"}}).
		Build()

	frags, err := reg.Generate(stmt, ansi)
	assert.Nil(t, frags)

	var verr *sqlgen.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errors, 2)
	assert.ErrorIs(t, err, sqlgen.ErrMissingRequiredField)
	assert.Equal(t, "invalid create_index: tableName is required; columns is required", err.Error())

	res, err := reg.Validate(stmt, ansi)
	require.NoError(t, err)
	assert.Equal(t, []string{"tableName", "columns"}, res.Fields())
}

func TestGenerateValid(t *testing.T) {
	reg := sqlgen.NewRegistryBuilder().
		Register(statement.TypeCreateIndex, &stubGenerator{name: "ok", level: 1}).
		Build()

	frags, err := reg.Generate(stmt, ansi)
	require.NoError(t, err)
	assert.Equal(t, []sqlgen.Fragment{{SQL: "ok"}}, frags)
}

func TestRegisterPanics(t *testing.T) {
	t.Run("nil generator", func(t *testing.T) {
		b := sqlgen.NewRegistryBuilder()
		assert.Panics(t, func() { b.Register(statement.TypeCreateIndex, nil) })
	})

	t.Run("after build", func(t *testing.T) {
		b := sqlgen.NewRegistryBuilder()
		b.Build()
		assert.Panics(t, func() {
			b.Register(statement.TypeCreateIndex, &stubGenerator{name: "late", level: 1})
		})
	})
}

func TestTypesAndEntries(t *testing.T) {
	reg := sqlgen.NewRegistryBuilder().
		Register(statement.TypeDropIndex, &stubGenerator{name: "drop", level: 1}).
		Register(statement.TypeCreateIndex, &stubGenerator{name: "a", level: 1}).
		Register(statement.TypeCreateIndex, &stubGenerator{name: "b", level: 5}).
		Build()

	assert.Equal(t, []statement.Type{statement.TypeCreateIndex, statement.TypeDropIndex}, reg.Types())

	entries := reg.Entries(statement.TypeCreateIndex)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Name())
	assert.Equal(t, 1, entries[0].Seq)
	assert.Equal(t, "b", entries[1].Name())
	assert.Equal(t, 5, entries[1].Level)

	entries[0] = sqlgen.Entry{}
	assert.Equal(t, "a", reg.Entries(statement.TypeCreateIndex)[0].Name(), "entries are copied")
}

func TestConcurrentDispatch(t *testing.T) {
	reg := sqlgen.NewRegistryBuilder().
		Register(statement.TypeCreateIndex, &stubGenerator{name: "default", level: 1}).
		Register(statement.TypeCreateIndex, &stubGenerator{name: "special", level: 5, supports: onlyFor("other_test")}).
		Build()

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d, want := sqlgen.Dialect(ansi), "default"
			if i%2 == 0 {
				d, want = other, "special"
			}
			frags, err := reg.Generate(stmt, d)
			if err != nil {
				errs <- err
				return
			}
			if frags[0].SQL != want {
				errs <- errors.New("unexpected generator " + frags[0].SQL)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestNameOfFallsBackToType(t *testing.T) {
	assert.Equal(t, "*sqlgen_test.anonymous", sqlgen.NameOf(&anonymous{}))
}

type anonymous struct{}

func (anonymous) SpecializationLevel() int                                  { return 1 }
func (anonymous) Supports(statement.Statement, sqlgen.Dialect) bool         { return true }
func (anonymous) Validate(statement.Statement) *sqlgen.ValidationResult     { return nil }
func (anonymous) Generate(statement.Statement, sqlgen.Dialect) ([]sqlgen.Fragment, error) {
	return nil, nil
}
