package resource

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
)

// FSAccessor searches an ordered list of root directories on an afero filesystem.
type FSAccessor struct {
	fs    afero.Fs
	roots []string
}

// NewFSAccessor returns an accessor over fsys. With no roots, the current
// directory is searched.
func NewFSAccessor(fsys afero.Fs, roots ...string) *FSAccessor {
	if len(roots) == 0 {
		roots = []string{"."}
	}
	return &FSAccessor{fs: fsys, roots: slices.Clone(roots)}
}

// NewOSAccessor returns an accessor over the operating system filesystem.
func NewOSAccessor(roots ...string) *FSAccessor {
	return NewFSAccessor(afero.NewOsFs(), roots...)
}

// Roots returns the search roots in order.
func (a *FSAccessor) Roots() []string {
	return slices.Clone(a.roots)
}

// candidates returns the filesystem paths p may refer to, in search order.
// Absolute paths are used as-is and never joined to a root.
func (a *FSAccessor) candidates(p string) []string {
	if filepath.IsAbs(p) {
		return []string{filepath.Clean(p)}
	}
	out := make([]string, 0, len(a.roots))
	for _, root := range a.roots {
		out = append(out, filepath.Join(root, filepath.FromSlash(p)))
	}
	return out
}

// Locate returns the existing regular files p refers to.
func (a *FSAccessor) Locate(p string) ([]string, error) {
	var found []string
	for _, c := range a.candidates(p) {
		info, err := a.fs.Stat(c)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", c, err)
		}
		if info.Mode().IsRegular() && !slices.Contains(found, c) {
			found = append(found, c)
		}
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	return found, nil
}

// OpenStreams implements Accessor.
func (a *FSAccessor) OpenStreams(p string) ([]io.ReadCloser, error) {
	files, err := a.Locate(p)
	if err != nil {
		return nil, err
	}
	streams := make([]io.ReadCloser, 0, len(files))
	for _, f := range files {
		fh, err := a.fs.Open(f)
		if err != nil {
			_ = CloseAll(streams)
			return nil, fmt.Errorf("open %s: %w", f, err)
		}
		streams = append(streams, fh)
	}
	return streams, nil
}

// List implements Accessor. Entries are slash-separated and prefixed with p.
func (a *FSAccessor) List(p string, includeFiles, includeDirectories, recursive bool) ([]string, error) {
	seen := make(map[string]struct{})

	for _, dir := range a.candidates(p) {
		info, err := a.fs.Stat(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", dir, err)
		}
		if !info.IsDir() {
			if includeFiles {
				seen[filepath.ToSlash(p)] = struct{}{}
			}
			continue
		}

		err = afero.Walk(a.fs, dir, func(walked string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if walked == dir {
				return nil
			}
			rel, err := filepath.Rel(dir, walked)
			if err != nil {
				return err
			}
			if fi.IsDir() {
				if includeDirectories {
					seen[path.Join(filepath.ToSlash(p), filepath.ToSlash(rel))] = struct{}{}
				}
				if !recursive {
					return filepath.SkipDir
				}
				return nil
			}
			if includeFiles {
				seen[path.Join(filepath.ToSlash(p), filepath.ToSlash(rel))] = struct{}{}
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", dir, err)
		}
	}

	return sortedOrNil(seen), nil
}

func sortedOrNil(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}
