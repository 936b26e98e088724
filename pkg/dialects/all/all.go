// Package all registers every built-in dialect.
//
// Import it for side effects:
//
//	import _ "github.com/leapstack-labs/leapddl/pkg/dialects/all"
package all

import (
	_ "github.com/leapstack-labs/leapddl/pkg/dialects/ansi"       // ANSI
	_ "github.com/leapstack-labs/leapddl/pkg/dialects/databricks" // Databricks
	_ "github.com/leapstack-labs/leapddl/pkg/dialects/db2"        // IBM Db2
	_ "github.com/leapstack-labs/leapddl/pkg/dialects/duckdb"     // DuckDB
	_ "github.com/leapstack-labs/leapddl/pkg/dialects/informix"   // IBM Informix
	_ "github.com/leapstack-labs/leapddl/pkg/dialects/mssql"      // SQL Server
	_ "github.com/leapstack-labs/leapddl/pkg/dialects/mysql"      // MySQL
	_ "github.com/leapstack-labs/leapddl/pkg/dialects/oracle"     // Oracle
	_ "github.com/leapstack-labs/leapddl/pkg/dialects/postgres"   // PostgreSQL
	_ "github.com/leapstack-labs/leapddl/pkg/dialects/snowflake"  // Snowflake
	_ "github.com/leapstack-labs/leapddl/pkg/dialects/sqlite"     // SQLite
	_ "github.com/leapstack-labs/leapddl/pkg/dialects/sybase"     // Sybase
)
