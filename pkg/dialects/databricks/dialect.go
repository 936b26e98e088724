package databricks

import "github.com/leapstack-labs/leapddl/pkg/dialect"

func init() {
	dialect.Register(Databricks)
}

// databricksReservedWords contains Databricks SQL reserved words (ANSI mode).
var databricksReservedWords = []string{
	"all", "alter", "and", "any", "array", "as", "at", "authorization",
	"between", "both", "by", "case", "cast", "check", "collate", "column",
	"commit", "constraint", "create", "cross", "cube", "current",
	"current_date", "current_time", "current_timestamp", "current_user",
	"delete", "describe", "distinct", "drop", "else", "end", "escape",
	"except", "exists", "external", "false", "fetch", "filter", "for",
	"foreign", "from", "full", "function", "global", "grant", "group",
	"grouping", "having", "in", "inner", "insert", "intersect", "interval",
	"into", "is", "join", "lateral", "leading", "left", "like", "local",
	"natural", "no", "not", "null", "of", "on", "only", "or", "order", "out",
	"outer", "overlaps", "partition", "position", "primary", "range",
	"references", "revoke", "right", "rollback", "rollup", "row", "rows",
	"select", "session_user", "set", "some", "start", "table", "tablesample",
	"then", "time", "to", "trailing", "true", "truncate", "union", "unique",
	"unknown", "update", "user", "using", "values", "when", "where", "window",
	"with",
}

// Databricks is the Databricks SQL dialect.
var Databricks = dialect.New(Config).
	WithReservedWords(databricksReservedWords...).
	Build()
