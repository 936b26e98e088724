// Package core defines the shared language of the LeapDDL system.
//
// This package contains:
//   - Dialect capability data (DialectConfig, IdentifierConfig)
//   - Capability enums (QuotePolicy, TablespaceStyle, IndexQualification)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
