// Package db2 provides the IBM Db2 dialect definition.
// This package is pure Go with no database driver dependencies.
package db2

import "github.com/leapstack-labs/leapddl/pkg/core"

// Config is the Db2 dialect configuration.
var Config = &core.DialectConfig{
	Name:    "db2",
	Aliases: []string{"db2luw"},
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormUppercase,
	},
	Quoting: core.QuoteWhenNeeded,

	// CREATE INDEX ... IN tablespace (partitioned tables)
	SupportsTablespaces: true,
	TablespaceStyle:     core.TablespaceIn,

	IndexQualification:  core.QualifyTable,
	MaxIdentifierLength: 128,
}
