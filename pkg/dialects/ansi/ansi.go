// Package ansi provides the base ANSI SQL dialect.
//
// This dialect is the default target when no dialect is configured. It quotes
// with double quotes, folds unquoted names to lowercase and has no index storage
// clause.
package ansi

import (
	"github.com/leapstack-labs/leapddl/pkg/core"
	"github.com/leapstack-labs/leapddl/pkg/dialect"
)

func init() {
	dialect.Register(ANSI)
}

// ansiReservedWords are SQL:2016 reserved words that commonly collide with
// table and column names.
var ansiReservedWords = []string{
	"all", "alter", "and", "any", "as", "asc", "between", "by", "case", "check",
	"column", "constraint", "create", "cross", "current", "default", "delete",
	"desc", "distinct", "drop", "else", "end", "exists", "false", "fetch", "for",
	"foreign", "from", "full", "grant", "group", "having", "in", "index", "inner",
	"insert", "intersect", "into", "is", "join", "key", "left", "like", "not",
	"null", "of", "on", "or", "order", "outer", "primary", "references", "right",
	"select", "set", "table", "then", "to", "true", "union", "unique", "update",
	"user", "using", "values", "when", "where", "with",
}

// ANSI is the base ANSI SQL dialect.
var ANSI = dialect.NewDialect(dialect.DefaultName).
	Identifiers(`"`, `"`, `""`, core.NormLowercase).
	QuotePolicy(core.QuoteWhenNeeded).
	IndexQualification(core.QualifyTable).
	WithReservedWords(ansiReservedWords...).
	Build()

// ReservedWords returns the ANSI reserved word list so other dialects can extend it.
func ReservedWords() []string {
	out := make([]string, len(ansiReservedWords))
	copy(out, ansiReservedWords)
	return out
}
