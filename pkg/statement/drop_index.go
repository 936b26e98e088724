package statement

// DropIndex describes a DROP INDEX operation.
type DropIndex struct {
	indexName       string
	tableName       string
	tableSchemaName string
}

// DropIndexOption configures a DropIndex.
type DropIndexOption func(*DropIndex)

// OnTable names the table that owns the index. Required by dialects whose index
// names are scoped to a table.
func OnTable(table string) DropIndexOption {
	return func(d *DropIndex) {
		d.tableName = table
	}
}

// InSchema sets the schema of the index and its table.
func InSchema(schema string) DropIndexOption {
	return func(d *DropIndex) {
		d.tableSchemaName = schema
	}
}

// NewDropIndex builds a DropIndex.
func NewDropIndex(indexName string, opts ...DropIndexOption) *DropIndex {
	d := &DropIndex{indexName: indexName}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Type implements Statement.
func (d *DropIndex) Type() Type { return TypeDropIndex }

// IndexName returns the index to drop.
func (d *DropIndex) IndexName() string { return d.indexName }

// TableName returns the owning table, possibly empty.
func (d *DropIndex) TableName() string { return d.tableName }

// TableSchemaName returns the schema, possibly empty.
func (d *DropIndex) TableSchemaName() string { return d.tableSchemaName }

// With returns a copy of d with opts applied.
func (d *DropIndex) With(opts ...DropIndexOption) *DropIndex {
	cp := *d
	for _, opt := range opts {
		opt(&cp)
	}
	return &cp
}
