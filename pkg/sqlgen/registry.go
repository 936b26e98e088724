package sqlgen

import (
	"log/slog"
	"slices"

	"github.com/leapstack-labs/leapddl/pkg/statement"
)

// Entry is one generator registration.
type Entry struct {
	Type      statement.Type
	Level     int
	Generator Generator
	Seq       int // registration order, used for tie-breaking
}

// Name returns the generator's display name.
func (e Entry) Name() string {
	return NameOf(e.Generator)
}

// RegistryOption configures a RegistryBuilder.
type RegistryOption func(*RegistryBuilder)

// WithLogger sets the logger used by the built registry. nil uses a discard logger.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(b *RegistryBuilder) {
		b.logger = logger
	}
}

// RegistryBuilder collects generator registrations at startup.
type RegistryBuilder struct {
	entries []Entry
	built   bool
	logger  *slog.Logger
}

// NewRegistryBuilder returns an empty builder.
func NewRegistryBuilder(opts ...RegistryOption) *RegistryBuilder {
	b := &RegistryBuilder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.New(slog.DiscardHandler)
	}
	return b
}

// Register adds g for statements of type t. It panics on a nil generator or when
// called after Build, both of which are programming errors.
func (b *RegistryBuilder) Register(t statement.Type, g Generator) *RegistryBuilder {
	if g == nil {
		panic("sqlgen: Register called with nil generator for " + string(t))
	}
	if b.built {
		panic("sqlgen: Register called after Build")
	}
	b.entries = append(b.entries, Entry{
		Type:      t,
		Level:     g.SpecializationLevel(),
		Generator: g,
		Seq:       len(b.entries),
	})
	return b
}

// Build freezes the registrations into an immutable Registry.
func (b *RegistryBuilder) Build() *Registry {
	b.built = true

	byType := make(map[statement.Type][]Entry)
	for _, e := range b.entries {
		byType[e.Type] = append(byType[e.Type], e)
	}

	b.logger.Debug("generator registry built", "generators", len(b.entries), "statement_types", len(byType))
	return &Registry{byType: byType, logger: b.logger}
}

// Registry selects generators for statements. It is safe for concurrent use.
type Registry struct {
	byType map[statement.Type][]Entry
	logger *slog.Logger
}

// Dispatch returns the applicable generator with the highest specialization
// level. Among equal levels the earliest registration wins.
func (r *Registry) Dispatch(stmt statement.Statement, d Dialect) (Generator, error) {
	var (
		best  Generator
		level int
		seq   = -1
	)
	for _, e := range r.byType[stmt.Type()] {
		if !e.Generator.Supports(stmt, d) {
			continue
		}
		if best == nil || e.Level > level {
			best, level, seq = e.Generator, e.Level, e.Seq
		}
	}

	if best == nil {
		r.logger.Debug("no applicable generator", "type", stmt.Type(), "dialect", d.Name())
		return nil, &NoApplicableGeneratorError{Type: stmt.Type(), Dialect: d.Name()}
	}

	r.logger.Debug("dispatched generator",
		"type", stmt.Type(),
		"dialect", d.Name(),
		"generator", NameOf(best),
		"level", level,
		"seq", seq)
	return best, nil
}

// Validate dispatches stmt and runs the selected generator's validation.
func (r *Registry) Validate(stmt statement.Statement, d Dialect) (*ValidationResult, error) {
	g, err := r.Dispatch(stmt, d)
	if err != nil {
		return nil, err
	}
	return g.Validate(stmt), nil
}

// Generate dispatches, validates and renders stmt. An invalid statement yields
// a *ValidationError and no fragments.
func (r *Registry) Generate(stmt statement.Statement, d Dialect) ([]Fragment, error) {
	g, err := r.Dispatch(stmt, d)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(stmt).Err(); err != nil {
		return nil, err
	}
	return g.Generate(stmt, d)
}

// Types returns the registered statement types (sorted).
func (r *Registry) Types() []statement.Type {
	types := make([]statement.Type, 0, len(r.byType))
	for t := range r.byType {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Entries returns the registrations for t in registration order.
func (r *Registry) Entries(t statement.Type) []Entry {
	return slices.Clone(r.byType[t])
}
