// Package dialect provides database dialect capabilities for DDL generation.
//
// This package contains the public contract for dialect definitions used by the
// generator registry and the CLI. Concrete dialect implementations are registered
// from pkg/dialects/*/ packages.
package dialect

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/leapstack-labs/leapddl/pkg/core"
	"github.com/zeebo/xxh3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var simpleIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)

// nonIdentifierChars matches runs of characters that cannot appear in a generated name.
var nonIdentifierChars = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// hashSuffixLen is the length of "_" plus 8 hex digits.
const hashSuffixLen = 9

// Dialect represents the DDL capabilities of one database product.
// A built Dialect is immutable and safe for concurrent use.
type Dialect struct {
	name        string
	aliases     []string
	identifiers core.IdentifierConfig
	quoting     core.QuotePolicy

	defaultSchema string
	reservedWords map[string]struct{}

	supportsTablespaces bool
	tablespaceStyle     core.TablespaceStyle
	qualification       core.IndexQualification
	tableScopedIndexes  bool
	clusteredIndexes    bool
	maxIdentifierLength int
}

// Config returns the pure data configuration for this dialect.
func (d *Dialect) Config() *core.DialectConfig {
	words := make([]string, 0, len(d.reservedWords))
	for w := range d.reservedWords {
		words = append(words, w)
	}
	slices.Sort(words)

	return &core.DialectConfig{
		Name:                     d.name,
		Aliases:                  slices.Clone(d.aliases),
		Identifiers:              d.identifiers,
		Quoting:                  d.quoting,
		DefaultSchema:            d.defaultSchema,
		ReservedWords:            words,
		SupportsTablespaces:      d.supportsTablespaces,
		TablespaceStyle:          d.tablespaceStyle,
		IndexQualification:       d.qualification,
		TableScopedIndexes:       d.tableScopedIndexes,
		SupportsClusteredIndexes: d.clusteredIndexes,
		MaxIdentifierLength:      d.maxIdentifierLength,
	}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return d.name
}

// Aliases returns alternative names the dialect is registered under.
func (d *Dialect) Aliases() []string {
	return slices.Clone(d.aliases)
}

// Identifiers returns the quoting and normalization rules.
func (d *Dialect) Identifiers() core.IdentifierConfig {
	return d.identifiers
}

// QuotePolicy returns when identifiers are quoted.
func (d *Dialect) QuotePolicy() core.QuotePolicy {
	return d.quoting
}

// DefaultSchema returns the schema objects land in when none is given.
func (d *Dialect) DefaultSchema() string {
	return d.defaultSchema
}

// SupportsTablespaces reports whether an index storage clause may be emitted.
func (d *Dialect) SupportsTablespaces() bool {
	return d.supportsTablespaces
}

// TablespaceStyle returns the storage clause style.
func (d *Dialect) TablespaceStyle() core.TablespaceStyle {
	return d.tablespaceStyle
}

// IndexQualification returns which name carries the schema in CREATE INDEX.
func (d *Dialect) IndexQualification() core.IndexQualification {
	return d.qualification
}

// TableScopedIndexes reports whether index names are only unique per table.
func (d *Dialect) TableScopedIndexes() bool {
	return d.tableScopedIndexes
}

// SupportsClusteredIndexes reports whether CLUSTERED / NONCLUSTERED is accepted.
func (d *Dialect) SupportsClusteredIndexes() bool {
	return d.clusteredIndexes
}

// MaxIdentifierLength returns the longest generated name, or 0 for no limit.
func (d *Dialect) MaxIdentifierLength() int {
	return d.maxIdentifierLength
}

// NormalizeName normalizes an identifier according to dialect rules.
func (d *Dialect) NormalizeName(name string) string {
	switch d.identifiers.Normalization {
	case core.NormUppercase:
		return cases.Upper(language.Und).String(name)
	case core.NormLowercase, core.NormCaseInsensitive:
		return cases.Lower(language.Und).String(name)
	default: // NormCaseSensitive
		return name
	}
}

// IsReservedWord returns true if the word must be quoted when used as an identifier.
func (d *Dialect) IsReservedWord(word string) bool {
	_, ok := d.reservedWords[strings.ToLower(word)]
	return ok
}

// QuoteIdentifier quotes an identifier using the dialect's quote characters.
func (d *Dialect) QuoteIdentifier(name string) string {
	// Escape any existing quote end characters in the name (e.g., ] -> ]])
	escaped := name
	if d.identifiers.QuoteEnd != "" {
		escaped = strings.ReplaceAll(name, d.identifiers.QuoteEnd, d.identifiers.Escape)
	}
	return d.identifiers.Quote + escaped + d.identifiers.QuoteEnd
}

// QuoteIdentifierIfNeeded applies the dialect's quote policy to a single identifier.
func (d *Dialect) QuoteIdentifierIfNeeded(name string) string {
	switch d.quoting {
	case core.QuoteAlways:
		return d.QuoteIdentifier(name)
	case core.QuoteNever:
		return name
	}
	if simpleIdentifier.MatchString(name) && !d.IsReservedWord(name) {
		return name
	}
	return d.QuoteIdentifier(name)
}

func (d *Dialect) qualify(schema, name string) string {
	if strings.TrimSpace(schema) == "" {
		return d.QuoteIdentifierIfNeeded(name)
	}
	return d.QuoteIdentifierIfNeeded(schema) + "." + d.QuoteIdentifierIfNeeded(name)
}

// EscapeIndexName renders an index name, qualified by schema when one is given.
func (d *Dialect) EscapeIndexName(schema, name string) string {
	return d.qualify(schema, name)
}

// EscapeTableName renders a table name, qualified by schema when one is given.
func (d *Dialect) EscapeTableName(schema, name string) string {
	return d.qualify(schema, name)
}

// EscapeColumnName renders a column name. Columns inside an index column list are
// never qualified, so schema and table are accepted for signature symmetry only.
func (d *Dialect) EscapeColumnName(_, _, name string) string {
	return d.QuoteIdentifierIfNeeded(name)
}

// DefaultIndexName derives a deterministic index name from the table and columns.
// The readable form is kept only when it decodes back to exactly one input: every
// part is a plain identifier without underscores. Otherwise, and whenever the name
// exceeds MaxIdentifierLength, 8 hex digits of a hash of the folded inputs are
// appended (truncating first if needed), so distinct inputs keep distinct names.
func (d *Dialect) DefaultIndexName(table string, columns []string, unique bool) string {
	prefix := "idx"
	if unique {
		prefix = "uq"
	}

	raw := make([]string, 0, len(columns)+1)
	raw = append(raw, table)
	raw = append(raw, columns...)

	parts := []string{prefix}
	exact := true
	for _, p := range raw {
		clean := strings.Trim(nonIdentifierChars.ReplaceAllString(p, "_"), "_")
		if clean != p || strings.Contains(clean, "_") {
			exact = false
		}
		if clean != "" {
			parts = append(parts, clean)
		}
	}
	name := d.NormalizeName(strings.Join(parts, "_"))

	limit := d.maxIdentifierLength
	if exact && (limit <= 0 || len(name) <= limit) {
		return name
	}

	key := d.NormalizeName(prefix + "\x00" + strings.Join(raw, "\x00"))
	sum := d.NormalizeName(fmt.Sprintf("%08x", uint32(xxh3.HashString(key))))
	if limit > 0 && limit <= hashSuffixLen {
		return sum[:min(limit, len(sum))]
	}
	if limit > 0 && len(name)+hashSuffixLen > limit {
		name = strings.TrimRight(name[:limit-hashSuffixLen], "_")
	}
	return name + "_" + sum
}

// String implements fmt.Stringer.
func (d *Dialect) String() string {
	return d.name
}

// ---------- Builder ----------

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
	config  *core.DialectConfig // Optional config copied in at Build()
}

// NewDialect creates a new dialect builder with the given name.
// Defaults are ANSI: double-quote identifiers, lowercase folding, no tablespaces.
func NewDialect(name string) *Builder {
	return &Builder{
		dialect: &Dialect{
			name: name,
			identifiers: core.IdentifierConfig{
				Quote:         `"`,
				QuoteEnd:      `"`,
				Escape:        `""`,
				Normalization: core.NormLowercase,
			},
			reservedWords: make(map[string]struct{}),
		},
	}
}

// New creates a dialect builder from a DialectConfig.
// This is the preferred constructor for dialects declared as config data;
// builder calls made after New override the config.
func New(cfg *core.DialectConfig) *Builder {
	b := NewDialect(cfg.Name)
	b.config = cfg
	d := b.dialect
	d.aliases = slices.Clone(cfg.Aliases)
	if cfg.Identifiers.Quote != "" {
		d.identifiers = cfg.Identifiers
	}
	d.quoting = cfg.Quoting
	d.defaultSchema = cfg.DefaultSchema
	d.supportsTablespaces = cfg.SupportsTablespaces
	d.tablespaceStyle = cfg.TablespaceStyle
	d.qualification = cfg.IndexQualification
	d.tableScopedIndexes = cfg.TableScopedIndexes
	d.clusteredIndexes = cfg.SupportsClusteredIndexes
	d.maxIdentifierLength = cfg.MaxIdentifierLength
	return b
}

// Identifiers configures identifier quoting and normalization.
func (b *Builder) Identifiers(quote, quoteEnd, escape string, norm core.NormalizationStrategy) *Builder {
	b.dialect.identifiers = core.IdentifierConfig{
		Quote:         quote,
		QuoteEnd:      quoteEnd,
		Escape:        escape,
		Normalization: norm,
	}
	return b
}

// Aliases registers alternative names for the dialect.
func (b *Builder) Aliases(names ...string) *Builder {
	b.dialect.aliases = append(b.dialect.aliases, names...)
	return b
}

// QuotePolicy sets when identifiers are quoted.
func (b *Builder) QuotePolicy(p core.QuotePolicy) *Builder {
	b.dialect.quoting = p
	return b
}

// DefaultSchema sets the default schema name.
func (b *Builder) DefaultSchema(schema string) *Builder {
	b.dialect.defaultSchema = schema
	return b
}

// Tablespaces enables index storage clauses with the given style.
func (b *Builder) Tablespaces(style core.TablespaceStyle) *Builder {
	b.dialect.supportsTablespaces = true
	b.dialect.tablespaceStyle = style
	return b
}

// IndexQualification sets which name carries the schema in CREATE INDEX.
func (b *Builder) IndexQualification(q core.IndexQualification) *Builder {
	b.dialect.qualification = q
	return b
}

// TableScopedIndexes marks index names as unique per table only.
func (b *Builder) TableScopedIndexes() *Builder {
	b.dialect.tableScopedIndexes = true
	return b
}

// ClusteredIndexes enables CLUSTERED / NONCLUSTERED index options.
func (b *Builder) ClusteredIndexes() *Builder {
	b.dialect.clusteredIndexes = true
	return b
}

// MaxIdentifierLength bounds generated identifier names.
func (b *Builder) MaxIdentifierLength(n int) *Builder {
	b.dialect.maxIdentifierLength = n
	return b
}

// WithReservedWords registers words that need quoting when used as identifiers.
func (b *Builder) WithReservedWords(words ...string) *Builder {
	for _, w := range words {
		b.dialect.reservedWords[strings.ToLower(w)] = struct{}{}
	}
	return b
}

// Build returns the constructed dialect.
// If the builder was created with New(cfg), reserved words from the config are merged in.
func (b *Builder) Build() *Dialect {
	if b.config != nil {
		b.WithReservedWords(b.config.ReservedWords...)
	}
	return b.dialect
}
