package core

// DialectConfig holds the static capabilities of a database dialect.
// This is pure data with no behavior.
//
// The runtime behavior (escaping, default index names, etc.) lives in
// pkg/dialect.Dialect, which is built from this config.
type DialectConfig struct {
	// Name is the dialect identifier (e.g., "postgres", "mssql")
	Name string

	// Aliases are alternative registry names (e.g., "postgresql" for "postgres")
	Aliases []string

	// Identifiers defines quoting and normalization rules
	Identifiers IdentifierConfig

	// Quoting decides when identifiers are wrapped in quote characters
	Quoting QuotePolicy

	// DefaultSchema is the default schema name ("main" for SQLite, "dbo" for SQL Server)
	DefaultSchema string

	// ReservedWords must be quoted when used as identifiers
	ReservedWords []string

	// SupportsTablespaces reports whether index storage placement can be requested.
	SupportsTablespaces bool
	// TablespaceStyle selects the keyword that introduces the storage clause.
	TablespaceStyle TablespaceStyle

	// IndexQualification decides where the schema goes in CREATE INDEX.
	IndexQualification IndexQualification
	// TableScopedIndexes is true when index names are only unique per table (MySQL, SQL Server).
	TableScopedIndexes bool
	// SupportsClusteredIndexes enables CLUSTERED / NONCLUSTERED.
	SupportsClusteredIndexes bool

	// MaxIdentifierLength bounds generated names; 0 means unlimited.
	MaxIdentifierLength int
}

// NormalizationStrategy defines how unquoted identifiers are normalized.
type NormalizationStrategy int

const (
	// NormLowercase normalizes unquoted identifiers to lowercase (default SQL behavior).
	NormLowercase NormalizationStrategy = iota
	// NormUppercase normalizes unquoted identifiers to uppercase (Snowflake, Oracle, DB2).
	NormUppercase
	// NormCaseSensitive preserves identifier case exactly (MySQL).
	NormCaseSensitive
	// NormCaseInsensitive normalizes to lowercase for comparison (SQL Server, DuckDB).
	NormCaseInsensitive
)

// String returns the string representation of the strategy.
func (n NormalizationStrategy) String() string {
	switch n {
	case NormLowercase:
		return "lowercase"
	case NormUppercase:
		return "uppercase"
	case NormCaseSensitive:
		return "case-sensitive"
	case NormCaseInsensitive:
		return "case-insensitive"
	default:
		return "unknown"
	}
}

// IdentifierConfig defines how identifiers are quoted and normalized.
type IdentifierConfig struct {
	Quote         string                // Quote character: ", `, [
	QuoteEnd      string                // End quote character (usually same as Quote, ] for [)
	Escape        string                // Escape sequence: "", ``, ]]
	Normalization NormalizationStrategy // How to normalize unquoted identifiers
}

// QuotePolicy decides when an identifier is quoted.
type QuotePolicy int

const (
	// QuoteWhenNeeded quotes only reserved words and names that are not plain identifiers.
	QuoteWhenNeeded QuotePolicy = iota
	// QuoteAlways quotes every identifier.
	QuoteAlways
	// QuoteNever emits identifiers verbatim.
	QuoteNever
)

// String returns the string representation of the policy.
func (p QuotePolicy) String() string {
	switch p {
	case QuoteWhenNeeded:
		return "when-needed"
	case QuoteAlways:
		return "always"
	case QuoteNever:
		return "never"
	default:
		return "unknown"
	}
}

// TablespaceStyle selects the keyword that introduces an index storage clause.
type TablespaceStyle int

const (
	// TablespaceKeyword renders "TABLESPACE <name>" (Postgres, Oracle).
	TablespaceKeyword TablespaceStyle = iota
	// TablespaceOn renders "ON <name>" (SQL Server, Sybase).
	TablespaceOn
	// TablespaceIn renders "IN <name>" (DB2, Informix).
	TablespaceIn
)

// Prefix returns the keyword placed before the tablespace name.
func (s TablespaceStyle) Prefix() string {
	switch s {
	case TablespaceOn:
		return "ON"
	case TablespaceIn:
		return "IN"
	default:
		return "TABLESPACE"
	}
}

// String returns the string representation of the style.
func (s TablespaceStyle) String() string {
	switch s {
	case TablespaceOn:
		return "on"
	case TablespaceIn:
		return "in"
	default:
		return "tablespace"
	}
}

// IndexQualification decides which name carries the schema in CREATE INDEX.
type IndexQualification int

const (
	// QualifyTable puts the schema on the table: CREATE INDEX idx ON s.t(...).
	QualifyTable IndexQualification = iota
	// QualifyIndex puts the schema on the index and leaves the table bare
	// (SQLite): CREATE INDEX s.idx ON t(...).
	QualifyIndex
)

// String returns the string representation of the qualification.
func (q IndexQualification) String() string {
	switch q {
	case QualifyIndex:
		return "index"
	default:
		return "table"
	}
}
