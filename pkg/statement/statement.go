// Package statement defines the abstract schema operations the generators render.
//
// Statements are immutable values. Construction never fails; required fields are
// checked by generator validation so every problem can be reported at once.
package statement

import (
	"fmt"
	"strings"
)

// Type identifies the kind of schema operation.
type Type string

// Statement types.
const (
	TypeCreateIndex Type = "create_index"
	TypeDropIndex   Type = "drop_index"
)

// Statement is an abstract schema operation.
type Statement interface {
	Type() Type
}

// Uniqueness is the three-valued uniqueness flag of an index.
type Uniqueness int

const (
	// UniquenessUnspecified leaves uniqueness to the database default (non-unique).
	UniquenessUnspecified Uniqueness = iota
	// Unique requests a unique index.
	Unique
	// NonUnique explicitly requests a non-unique index.
	NonUnique
)

// String returns the string representation of the uniqueness.
func (u Uniqueness) String() string {
	switch u {
	case Unique:
		return "unique"
	case NonUnique:
		return "non_unique"
	default:
		return "unspecified"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (u Uniqueness) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Accepts unique, non_unique, unspecified and the booleans true / false.
func (u *Uniqueness) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "unique", "true":
		*u = Unique
	case "non_unique", "nonunique", "non-unique", "false":
		*u = NonUnique
	case "", "unspecified":
		*u = UniquenessUnspecified
	default:
		return fmt.Errorf("invalid uniqueness %q (expected unique, non_unique or unspecified)", text)
	}
	return nil
}

// Clustering is the three-valued clustering flag of an index.
type Clustering int

const (
	// ClusteringUnspecified leaves clustering to the database default.
	ClusteringUnspecified Clustering = iota
	// Clustered requests a clustered index.
	Clustered
	// NonClustered requests a non-clustered index.
	NonClustered
)

// String returns the string representation of the clustering.
func (c Clustering) String() string {
	switch c {
	case Clustered:
		return "clustered"
	case NonClustered:
		return "nonclustered"
	default:
		return "unspecified"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Clustering) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Clustering) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "clustered", "true":
		*c = Clustered
	case "nonclustered", "non_clustered", "non-clustered", "false":
		*c = NonClustered
	case "", "unspecified":
		*c = ClusteringUnspecified
	default:
		return fmt.Errorf("invalid clustering %q (expected clustered, nonclustered or unspecified)", text)
	}
	return nil
}
