// Package sqlgen dispatches schema statements to dialect-aware SQL generators.
//
// A Registry is assembled once with a RegistryBuilder and is immutable afterwards.
// For each statement it selects the applicable Generator with the highest
// specialization level, validates the statement, and returns the generated
// Fragments in order. Generation is pure: nothing is executed or persisted.
//
//	reg := generators.NewRegistry(logger)
//	frags, err := reg.Generate(stmt, d)
package sqlgen
