// Package mysql provides the MySQL / MariaDB dialect definition.
// This package is pure Go with no database driver dependencies.
package mysql

import "github.com/leapstack-labs/leapddl/pkg/core"

// Config is the MySQL dialect configuration.
var Config = &core.DialectConfig{
	Name:    "mysql",
	Aliases: []string{"mariadb"},
	Identifiers: core.IdentifierConfig{
		Quote:         "`",
		QuoteEnd:      "`",
		Escape:        "``",
		Normalization: core.NormCaseSensitive,
	},
	Quoting: core.QuoteWhenNeeded,

	// Index names live in the table's namespace: DROP INDEX name ON table.
	TableScopedIndexes: true,
	IndexQualification: core.QualifyTable,

	MaxIdentifierLength: 64,
}
