// Package snowflake provides the Snowflake dialect definition.
// This package is pure Go with no database driver dependencies.
package snowflake

import "github.com/leapstack-labs/leapddl/pkg/core"

// Config is the Snowflake dialect configuration.
// Snowflake has no secondary indexes on standard tables; CREATE INDEX targets
// hybrid tables, which have no storage placement.
var Config = &core.DialectConfig{
	Name:          "snowflake",
	DefaultSchema: "PUBLIC",
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormUppercase, // Snowflake normalizes to uppercase
	},
	Quoting:             core.QuoteWhenNeeded,
	IndexQualification:  core.QualifyTable,
	MaxIdentifierLength: 255,
}
