// Package duckdb provides the DuckDB dialect definition.
// This package is pure Go with no database driver dependencies.
package duckdb

import "github.com/leapstack-labs/leapddl/pkg/core"

// Config is the DuckDB dialect configuration.
var Config = &core.DialectConfig{
	Name:          "duckdb",
	DefaultSchema: "main",
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormCaseInsensitive,
	},
	Quoting:            core.QuoteWhenNeeded,
	IndexQualification: core.QualifyTable,
}
