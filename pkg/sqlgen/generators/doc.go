// Package generators contains the built-in SQL generators.
//
// Default generators apply to every dialect. Dialect-specific generators key
// off capabilities (index qualification, clustered indexes, table-scoped index
// names) and outrank the defaults when they apply.
package generators
