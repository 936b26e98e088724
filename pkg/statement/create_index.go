package statement

import "slices"

// CreateIndex describes a CREATE INDEX operation.
type CreateIndex struct {
	tableName       string
	tableSchemaName string
	columns         []string
	uniqueness      Uniqueness
	clustering      Clustering
	indexName       string
	tablespace      string
}

// CreateIndexOption configures a CreateIndex.
type CreateIndexOption func(*CreateIndex)

// WithSchema sets the schema of the indexed table.
func WithSchema(schema string) CreateIndexOption {
	return func(c *CreateIndex) {
		c.tableSchemaName = schema
	}
}

// WithIndexName sets an explicit index name. Without it the dialect derives one.
func WithIndexName(name string) CreateIndexOption {
	return func(c *CreateIndex) {
		c.indexName = name
	}
}

// WithUniqueness sets the uniqueness flag.
func WithUniqueness(u Uniqueness) CreateIndexOption {
	return func(c *CreateIndex) {
		c.uniqueness = u
	}
}

// WithTablespace sets the storage placement. The value is dialect-specific free text.
func WithTablespace(tablespace string) CreateIndexOption {
	return func(c *CreateIndex) {
		c.tablespace = tablespace
	}
}

// WithClustering sets the clustering flag. Dialects without clustered indexes ignore it.
func WithClustering(cl Clustering) CreateIndexOption {
	return func(c *CreateIndex) {
		c.clustering = cl
	}
}

// NewCreateIndex builds a CreateIndex. Column order is preserved.
func NewCreateIndex(table string, columns []string, opts ...CreateIndexOption) *CreateIndex {
	c := &CreateIndex{
		tableName: table,
		columns:   slices.Clone(columns),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Type implements Statement.
func (c *CreateIndex) Type() Type { return TypeCreateIndex }

// TableName returns the indexed table.
func (c *CreateIndex) TableName() string { return c.tableName }

// TableSchemaName returns the schema of the indexed table, possibly empty.
func (c *CreateIndex) TableSchemaName() string { return c.tableSchemaName }

// Columns returns a copy of the indexed columns in order.
func (c *CreateIndex) Columns() []string { return slices.Clone(c.columns) }

// Uniqueness returns the uniqueness flag.
func (c *CreateIndex) Uniqueness() Uniqueness { return c.uniqueness }

// IsUnique reports whether a unique index was requested.
func (c *CreateIndex) IsUnique() bool { return c.uniqueness == Unique }

// Clustering returns the clustering flag.
func (c *CreateIndex) Clustering() Clustering { return c.clustering }

// IndexName returns the explicit index name, possibly empty.
func (c *CreateIndex) IndexName() string { return c.indexName }

// Tablespace returns the requested storage placement, possibly empty.
func (c *CreateIndex) Tablespace() string { return c.tablespace }

// With returns a copy of c with opts applied.
func (c *CreateIndex) With(opts ...CreateIndexOption) *CreateIndex {
	cp := *c
	cp.columns = slices.Clone(c.columns)
	for _, opt := range opts {
		opt(&cp)
	}
	return &cp
}
