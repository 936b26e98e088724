// Package loader reads statement files and converts them into statements.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/leapstack-labs/leapddl/pkg/resource"
	"github.com/leapstack-labs/leapddl/pkg/statement"
	"gopkg.in/yaml.v3"
)

// File is a decoded statement file.
type File struct {
	Path       string
	Statements []statement.Statement
}

// ParseError reports a problem in a statement file. Index is the position of the
// offending entry in the statements list, or -1 for document-level errors.
type ParseError struct {
	Path  string
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: statements[%d]: %v", e.Path, e.Index, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Errors returned inside a ParseError.
var (
	ErrNoStatementKind        = errors.New("entry has no statement (expected create_index or drop_index)")
	ErrMultipleStatementKinds = errors.New("entry has more than one statement")
	ErrConflictingFlags       = errors.New("conflicting flags")
)

// fileYAML is the on-disk layout. Unknown fields are rejected.
type fileYAML struct {
	Statements []entryYAML `yaml:"statements"`
}

type entryYAML struct {
	CreateIndex *createIndexYAML `yaml:"create_index"`
	DropIndex   *dropIndexYAML   `yaml:"drop_index"`
}

type createIndexYAML struct {
	Schema     string               `yaml:"schema"`
	Table      string               `yaml:"table"`
	Name       string               `yaml:"name"`
	Columns    []string             `yaml:"columns"`
	Unique     *bool                `yaml:"unique"`
	Uniqueness statement.Uniqueness `yaml:"uniqueness"`
	Clustered  *bool                `yaml:"clustered"`
	Clustering statement.Clustering `yaml:"clustering"`
	Tablespace string               `yaml:"tablespace"`
}

type dropIndexYAML struct {
	Schema string `yaml:"schema"`
	Table  string `yaml:"table"`
	Name   string `yaml:"name"`
}

// Load opens path through acc and parses the first matching stream.
func Load(ctx context.Context, acc resource.Accessor, path string) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	streams, err := acc.OpenStreams(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = resource.CloseAll(streams) }()
	if len(streams) == 0 {
		return nil, fmt.Errorf("failed to open %s: %w", path, resource.ErrNotFound)
	}

	data, err := io.ReadAll(streams[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes a statement file.
func Parse(path string, data []byte) (*File, error) {
	var doc fileYAML
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ParseError{Path: path, Index: -1, Err: err}
	}

	f := &File{Path: path, Statements: make([]statement.Statement, 0, len(doc.Statements))}
	for i, entry := range doc.Statements {
		stmt, err := entry.toStatement()
		if err != nil {
			return nil, &ParseError{Path: path, Index: i, Err: err}
		}
		f.Statements = append(f.Statements, stmt)
	}
	return f, nil
}

func (e entryYAML) toStatement() (statement.Statement, error) {
	switch {
	case e.CreateIndex != nil && e.DropIndex != nil:
		return nil, ErrMultipleStatementKinds
	case e.CreateIndex != nil:
		return e.CreateIndex.toStatement()
	case e.DropIndex != nil:
		return statement.NewDropIndex(e.DropIndex.Name,
			statement.OnTable(e.DropIndex.Table),
			statement.InSchema(e.DropIndex.Schema),
		), nil
	default:
		return nil, ErrNoStatementKind
	}
}

func (c *createIndexYAML) toStatement() (statement.Statement, error) {
	uniqueness := c.Uniqueness
	if c.Unique != nil {
		fromBool := statement.NonUnique
		if *c.Unique {
			fromBool = statement.Unique
		}
		if uniqueness != statement.UniquenessUnspecified && uniqueness != fromBool {
			return nil, fmt.Errorf("%w: unique=%t but uniqueness=%s", ErrConflictingFlags, *c.Unique, uniqueness)
		}
		uniqueness = fromBool
	}

	clustering := c.Clustering
	if c.Clustered != nil {
		fromBool := statement.NonClustered
		if *c.Clustered {
			fromBool = statement.Clustered
		}
		if clustering != statement.ClusteringUnspecified && clustering != fromBool {
			return nil, fmt.Errorf("%w: clustered=%t but clustering=%s", ErrConflictingFlags, *c.Clustered, clustering)
		}
		clustering = fromBool
	}

	return statement.NewCreateIndex(c.Table, c.Columns,
		statement.WithSchema(c.Schema),
		statement.WithIndexName(c.Name),
		statement.WithUniqueness(uniqueness),
		statement.WithClustering(clustering),
		statement.WithTablespace(c.Tablespace),
	), nil
}

// ApplyDefaults fills a blank schema on every statement and a blank tablespace
// on create_index statements.
func (f *File) ApplyDefaults(schema, tablespace string) {
	for i, stmt := range f.Statements {
		switch s := stmt.(type) {
		case *statement.CreateIndex:
			var opts []statement.CreateIndexOption
			if s.TableSchemaName() == "" && schema != "" {
				opts = append(opts, statement.WithSchema(schema))
			}
			if s.Tablespace() == "" && tablespace != "" {
				opts = append(opts, statement.WithTablespace(tablespace))
			}
			if len(opts) > 0 {
				f.Statements[i] = s.With(opts...)
			}
		case *statement.DropIndex:
			if s.TableSchemaName() == "" && schema != "" {
				f.Statements[i] = s.With(statement.InSchema(schema))
			}
		}
	}
}
