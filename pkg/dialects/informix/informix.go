// Package informix provides the IBM Informix dialect.
//
// Informix places index fragments with "IN dbspace", the same clause style as Db2.
package informix

import (
	"github.com/leapstack-labs/leapddl/pkg/core"
	"github.com/leapstack-labs/leapddl/pkg/dialect"
	"github.com/leapstack-labs/leapddl/pkg/dialects/ansi"
)

func init() {
	dialect.Register(Informix)
}

// Informix is the Informix dialect.
var Informix = dialect.NewDialect("informix").
	Identifiers(`"`, `"`, `""`, core.NormLowercase).
	QuotePolicy(core.QuoteWhenNeeded).
	Tablespaces(core.TablespaceIn).
	IndexQualification(core.QualifyTable).
	MaxIdentifierLength(128).
	WithReservedWords(ansi.ReservedWords()...).
	WithReservedWords("dbspace", "extent", "fragment", "serial").
	Build()
