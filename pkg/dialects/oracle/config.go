// Package oracle provides the Oracle Database dialect definition.
// This package is pure Go with no database driver dependencies.
package oracle

import "github.com/leapstack-labs/leapddl/pkg/core"

// Config is the Oracle dialect configuration.
var Config = &core.DialectConfig{
	Name: "oracle",
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormUppercase,
	},
	Quoting: core.QuoteWhenNeeded,

	SupportsTablespaces: true,
	TablespaceStyle:     core.TablespaceKeyword,
	IndexQualification:  core.QualifyTable,

	// Pre-12.2 limit; still the safe choice for portable names.
	MaxIdentifierLength: 30,
}
