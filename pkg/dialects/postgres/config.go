// Package postgres provides the PostgreSQL dialect definition.
// This package is pure Go with no database driver dependencies.
package postgres

import "github.com/leapstack-labs/leapddl/pkg/core"

// Config is the PostgreSQL dialect configuration.
// This is pure data - the Builder copies it into a Dialect.
var Config = &core.DialectConfig{
	Name:          "postgres",
	Aliases:       []string{"postgresql", "pg"},
	DefaultSchema: "public",
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormLowercase, // Postgres normalizes unquoted to lowercase
	},
	Quoting: core.QuoteWhenNeeded,

	// CREATE INDEX ... TABLESPACE name
	SupportsTablespaces: true,
	TablespaceStyle:     core.TablespaceKeyword,
	IndexQualification:  core.QualifyTable,

	// NAMEDATALEN - 1
	MaxIdentifierLength: 63,
}
