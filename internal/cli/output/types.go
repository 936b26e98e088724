package output

// FieldErrors holds validation messages for one statement field.
type FieldErrors struct {
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// StatementOutput is the JSON form of one rendered statement.
type StatementOutput struct {
	Index     int           `json:"index"`
	Type      string        `json:"type"`
	Generator string        `json:"generator,omitempty"`
	SQL       []string      `json:"sql,omitempty"`
	Invalid   []FieldErrors `json:"invalid,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// RenderOutput is the JSON form of one rendered statement file.
type RenderOutput struct {
	RunID      string            `json:"run_id"`
	Path       string            `json:"path"`
	Dialect    string            `json:"dialect"`
	Statements []StatementOutput `json:"statements"`
	Failed     int               `json:"failed"`
}

// RenderReport is the JSON output of the render command.
type RenderReport struct {
	Files     []RenderOutput `json:"files"`
	Migration string         `json:"migration,omitempty"`
}

// DialectInfo is the JSON form of a registered dialect.
type DialectInfo struct {
	Name                string   `json:"name"`
	Aliases             []string `json:"aliases,omitempty"`
	Tablespaces         bool     `json:"tablespaces"`
	TablespaceStyle     string   `json:"tablespace_style,omitempty"`
	IndexQualification  string   `json:"index_qualification"`
	TableScopedIndexes  bool     `json:"table_scoped_indexes"`
	ClusteredIndexes    bool     `json:"clustered_indexes"`
	MaxIdentifierLength int      `json:"max_identifier_length"`
	DefaultSchema       string   `json:"default_schema,omitempty"`
	Normalization       string   `json:"normalization"`
	Quoting             string   `json:"quoting"`
	ReservedWords       int      `json:"reserved_words"`
}

// GeneratorInfo is the JSON form of one registry entry.
type GeneratorInfo struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Level int    `json:"level"`
	Order int    `json:"order"`
}
