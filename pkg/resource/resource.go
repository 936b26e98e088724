// Package resource locates statement files.
//
// An Accessor opens every stream that matches a path across its search roots.
// FuzzyAccessor adds a fallback for paths users commonly mistype, such as a
// leading slash on a root-relative path.
package resource

import (
	"errors"
	"io"
)

// ErrNotFound is returned when no stream matches a path.
var ErrNotFound = errors.New("resource not found")

// Accessor finds resources by path.
type Accessor interface {
	// OpenStreams returns one stream per match in search order, or ErrNotFound.
	// Callers close every returned stream.
	OpenStreams(path string) ([]io.ReadCloser, error)
	// List returns the sorted, de-duplicated entries below path, or nil when
	// nothing matches.
	List(path string, includeFiles, includeDirectories, recursive bool) ([]string, error)
}

// Locator is implemented by accessors that can report where a resource lives on
// the filesystem (used for file watching).
type Locator interface {
	Locate(path string) ([]string, error)
}

// CloseAll closes every stream and returns the first error.
func CloseAll(streams []io.ReadCloser) error {
	var first error
	for _, s := range streams {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
