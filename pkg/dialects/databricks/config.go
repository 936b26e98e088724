// Package databricks provides the Databricks SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package databricks

import "github.com/leapstack-labs/leapddl/pkg/core"

// Config is the Databricks SQL dialect configuration.
var Config = &core.DialectConfig{
	Name:          "databricks",
	Aliases:       []string{"spark"},
	DefaultSchema: "default",
	Identifiers: core.IdentifierConfig{
		Quote:         "`",
		QuoteEnd:      "`",
		Escape:        "``",
		Normalization: core.NormCaseInsensitive,
	},
	Quoting:             core.QuoteWhenNeeded,
	IndexQualification:  core.QualifyTable,
	MaxIdentifierLength: 255,
}
