// Package sybase provides the SAP ASE / SQL Anywhere dialect.
//
// Sybase shares its Transact-SQL heritage with SQL Server: bracket quoting,
// "ON segment" index placement, table-scoped index names and clustered indexes.
package sybase

import (
	"github.com/leapstack-labs/leapddl/pkg/core"
	"github.com/leapstack-labs/leapddl/pkg/dialect"
	"github.com/leapstack-labs/leapddl/pkg/dialects/mssql"
)

func init() {
	dialect.Register(Sybase)
}

// Sybase is the Sybase dialect.
var Sybase = dialect.NewDialect("sybase").
	Aliases("sybase_asa", "ase").
	Identifiers("[", "]", "]]", core.NormCaseInsensitive).
	QuotePolicy(core.QuoteWhenNeeded).
	DefaultSchema("dbo").
	Tablespaces(core.TablespaceOn).
	IndexQualification(core.QualifyTable).
	TableScopedIndexes().
	ClusteredIndexes().
	WithReservedWords(mssql.ReservedWords()...).
	Build()
