// Package mssql provides the Microsoft SQL Server dialect definition.
// This package is pure Go with no database driver dependencies.
package mssql

import "github.com/leapstack-labs/leapddl/pkg/core"

// Config is the SQL Server dialect configuration.
var Config = &core.DialectConfig{
	Name:          "mssql",
	Aliases:       []string{"sqlserver", "tsql"},
	DefaultSchema: "dbo",
	Identifiers: core.IdentifierConfig{
		Quote:         "[",
		QuoteEnd:      "]",
		Escape:        "]]",
		Normalization: core.NormCaseInsensitive,
	},
	Quoting: core.QuoteWhenNeeded,

	// CREATE INDEX ... ON filegroup
	SupportsTablespaces: true,
	TablespaceStyle:     core.TablespaceOn,

	IndexQualification:       core.QualifyTable,
	TableScopedIndexes:       true,
	SupportsClusteredIndexes: true,
	MaxIdentifierLength:      128,
}
