// Package sqlite provides the SQLite dialect definition.
// This package is pure Go with no database driver dependencies.
package sqlite

import "github.com/leapstack-labs/leapddl/pkg/core"

// Config is the SQLite dialect configuration.
var Config = &core.DialectConfig{
	Name:          "sqlite",
	Aliases:       []string{"sqlite3"},
	DefaultSchema: "main",
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormCaseInsensitive,
	},
	Quoting: core.QuoteWhenNeeded,

	// CREATE INDEX schema.index ON table(...): the table must not be qualified.
	IndexQualification: core.QualifyIndex,
}
