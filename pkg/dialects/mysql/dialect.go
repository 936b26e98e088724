package mysql

import "github.com/leapstack-labs/leapddl/pkg/dialect"

func init() {
	dialect.Register(MySQL)
}

var mysqlReservedWords = []string{
	"accessible", "add", "all", "alter", "analyze", "and", "as", "asc",
	"between", "both", "by", "call", "cascade", "case", "change", "check",
	"collate", "column", "condition", "constraint", "create", "cross",
	"current_date", "current_time", "current_timestamp", "database",
	"databases", "default", "delete", "desc", "describe", "distinct", "div",
	"drop", "else", "exists", "explain", "false", "for", "force", "foreign",
	"from", "fulltext", "grant", "group", "having", "if", "ignore", "in",
	"index", "inner", "insert", "interval", "into", "is", "join", "key", "keys",
	"kill", "left", "like", "limit", "lines", "load", "lock", "match", "mod",
	"natural", "not", "null", "on", "optimize", "option", "or", "order",
	"outer", "partition", "primary", "range", "read", "references", "regexp",
	"rename", "replace", "require", "restrict", "right", "rlike", "schema",
	"select", "set", "show", "spatial", "table", "then", "to", "trigger",
	"true", "union", "unique", "unlock", "update", "usage", "use", "using",
	"values", "when", "where", "with", "write", "xor",
}

// MySQL is the MySQL dialect.
var MySQL = dialect.New(Config).
	WithReservedWords(mysqlReservedWords...).
	Build()
