package db2

import "github.com/leapstack-labs/leapddl/pkg/dialect"

func init() {
	dialect.Register(DB2)
}

var db2ReservedWords = []string{
	"add", "after", "all", "allocate", "allow", "alter", "and", "any", "as",
	"asensitive", "associate", "asutime", "audit", "aux", "auxiliary",
	"before", "begin", "between", "bufferpool", "by", "call", "capture",
	"cascaded", "case", "cast", "ccsid", "char", "character", "check", "clone",
	"close", "cluster", "collection", "collid", "column", "comment", "commit",
	"concat", "condition", "connect", "connection", "constraint", "contains",
	"content", "continue", "create", "current", "current_date",
	"current_lc_ctype", "current_path", "current_schema", "current_time",
	"current_timestamp", "cursor", "data", "database", "day", "days",
	"declare", "default", "delete", "descriptor", "deterministic", "disable",
	"disallow", "distinct", "do", "document", "double", "drop", "dssize",
	"dynamic", "editproc", "else", "elseif", "encoding", "encryption", "end",
	"ending", "end-exec", "erase", "escape", "except", "exception", "execute",
	"exists", "exit", "explain", "external", "fenced", "fetch", "fieldproc",
	"final", "for", "free", "from", "full", "function", "generated", "get",
	"global", "go", "goto", "grant", "group", "handler", "having", "hold",
	"hour", "hours", "if", "immediate", "in", "inclusive", "index", "inherit",
	"inner", "inout", "insensitive", "insert", "intersect", "into", "is",
	"isobid", "iterate", "jar", "join", "keep", "key", "label", "language",
	"lc_ctype", "leave", "left", "like", "local", "locale", "locator",
	"locators", "lock", "lockmax", "locksize", "long", "loop", "maintained",
	"materialized", "microsecond", "microseconds", "minute", "minutes",
	"modifies", "month", "months", "next", "nextval", "no", "none", "not",
	"null", "nulls", "numparts", "obid", "of", "old", "on", "open",
	"optimization", "optimize", "or", "order", "out", "outer", "package",
	"padded", "parameter", "part", "partition", "partitioned", "partitioning",
	"path", "piecesize", "plan", "precision", "prepare", "prevval", "prior",
	"priqty", "privileges", "procedure", "program", "psid", "public", "query",
	"queryno", "reads", "references", "refresh", "release", "rename",
	"repeat", "resignal", "restrict", "result", "result_set_locator",
	"return", "returns", "revoke", "right", "role", "rollback", "round_ceiling",
	"rowset", "run", "savepoint", "schema", "scratchpad", "second", "seconds",
	"secqty", "security", "select", "sensitive", "sequence", "set", "signal",
	"simple", "some", "source", "specific", "standard", "statement",
	"static", "stay", "stogroup", "stores", "style", "summary", "synonym",
	"sysdate", "system", "systimestamp", "table", "tablespace", "then", "to",
	"trigger", "truncate", "type", "undo", "union", "unique", "until",
	"update", "user", "using", "validproc", "value", "values", "variable",
	"variant", "vcat", "view", "volatile", "volumes", "when", "whenever",
	"where", "while", "with", "wlm", "xmlexists", "xmlnamespaces", "xmlcast",
	"year", "years",
}

// DB2 is the IBM Db2 dialect.
var DB2 = dialect.New(Config).
	WithReservedWords(db2ReservedWords...).
	Build()
