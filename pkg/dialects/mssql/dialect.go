package mssql

import "github.com/leapstack-labs/leapddl/pkg/dialect"

func init() {
	dialect.Register(MSSQL)
}

// tsqlReservedWords contains Transact-SQL reserved keywords.
var tsqlReservedWords = []string{
	"add", "all", "alter", "and", "any", "as", "asc", "authorization",
	"backup", "begin", "between", "break", "browse", "bulk", "by", "cascade",
	"case", "check", "checkpoint", "close", "clustered", "coalesce", "collate",
	"column", "commit", "compute", "constraint", "contains", "continue",
	"convert", "create", "cross", "current", "current_date", "current_time",
	"current_timestamp", "current_user", "cursor", "database", "dbcc",
	"deallocate", "declare", "default", "delete", "deny", "desc", "disk",
	"distinct", "distributed", "double", "drop", "dump", "else", "end",
	"errlvl", "escape", "except", "exec", "execute", "exists", "exit",
	"external", "fetch", "file", "fillfactor", "for", "foreign", "freetext",
	"from", "full", "function", "goto", "grant", "group", "having", "holdlock",
	"identity", "if", "in", "index", "inner", "insert", "intersect", "into",
	"is", "join", "key", "kill", "left", "like", "lineno", "load", "merge",
	"national", "nocheck", "nonclustered", "not", "null", "nullif", "of",
	"off", "offsets", "on", "open", "option", "or", "order", "outer", "over",
	"percent", "pivot", "plan", "precision", "primary", "print", "proc",
	"procedure", "public", "raiserror", "read", "readtext", "reconfigure",
	"references", "replication", "restore", "restrict", "return", "revert",
	"revoke", "right", "rollback", "rowcount", "rowguidcol", "rule", "save",
	"schema", "select", "session_user", "set", "setuser", "shutdown", "some",
	"statistics", "system_user", "table", "tablesample", "textsize", "then",
	"to", "top", "tran", "transaction", "trigger", "truncate", "try_convert",
	"tsequal", "union", "unique", "unpivot", "update", "updatetext", "use",
	"user", "values", "varying", "view", "waitfor", "when", "where", "while",
	"with", "writetext",
}

// MSSQL is the Microsoft SQL Server dialect.
var MSSQL = dialect.New(Config).
	WithReservedWords(tsqlReservedWords...).
	Build()

// ReservedWords returns the Transact-SQL reserved words. Sybase shares the list.
func ReservedWords() []string {
	out := make([]string, len(tsqlReservedWords))
	copy(out, tsqlReservedWords)
	return out
}
