package resource

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// FuzzyAccessor wraps an Accessor and retries lookups with the paths a user
// probably meant.
type FuzzyAccessor struct {
	inner Accessor
}

// NewFuzzyAccessor wraps inner.
func NewFuzzyAccessor(inner Accessor) *FuzzyAccessor {
	return &FuzzyAccessor{inner: inner}
}

// AlternatePaths returns fallbacks for p in order of likelihood.
// A single leading slash is stripped.
func AlternatePaths(p string) []string {
	var alts []string
	if strings.HasPrefix(p, "/") {
		alts = append(alts, p[1:])
	}
	return alts
}

// OpenStreams tries the exact path, then each alternate. ErrNotFound is
// returned only after every candidate failed.
func (a *FuzzyAccessor) OpenStreams(p string) ([]io.ReadCloser, error) {
	streams, err := a.inner.OpenStreams(p)
	if err == nil && len(streams) > 0 {
		return streams, nil
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	for _, alt := range AlternatePaths(p) {
		streams, err := a.inner.OpenStreams(alt)
		if err == nil && len(streams) > 0 {
			return streams, nil
		}
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
}

// List returns the union of the exact path and every alternate, sorted.
func (a *FuzzyAccessor) List(p string, includeFiles, includeDirectories, recursive bool) ([]string, error) {
	seen := make(map[string]struct{})
	for _, candidate := range append([]string{p}, AlternatePaths(p)...) {
		entries, err := a.inner.List(candidate, includeFiles, includeDirectories, recursive)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			seen[e] = struct{}{}
		}
	}
	return sortedOrNil(seen), nil
}

// Locate resolves filesystem locations when the wrapped accessor supports it.
func (a *FuzzyAccessor) Locate(p string) ([]string, error) {
	loc, ok := a.inner.(Locator)
	if !ok {
		return nil, fmt.Errorf("%T cannot locate resources", a.inner)
	}
	files, err := loc.Locate(p)
	if err == nil {
		return files, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	for _, alt := range AlternatePaths(p) {
		if files, err := loc.Locate(alt); err == nil {
			return files, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
}
