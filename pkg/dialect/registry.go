package dialect

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// DefaultName is the dialect used when configuration names none.
const DefaultName = "ansi"

// Dialect registry
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Dialect)
	aliases    = make(map[string]string)
)

// ErrDialectRequired is returned when a dialect is required but not provided.
var ErrDialectRequired = errors.New("dialect is required")

// Get returns a dialect by name or alias (case-insensitive).
func Get(name string) (*Dialect, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	key := strings.ToLower(strings.TrimSpace(name))
	if target, ok := aliases[key]; ok {
		key = target
	}
	d, ok := dialects[key]
	return d, ok
}

// Lookup returns a dialect by name, or an UnknownDialectError listing the
// registered names.
func Lookup(name string) (*Dialect, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrDialectRequired
	}
	d, ok := Get(name)
	if !ok {
		return nil, &UnknownDialectError{Name: name, Available: List()}
	}
	return d, nil
}

// Register registers a dialect in the global registry.
// Called by dialect implementations in their init() functions.
func Register(d *Dialect) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	key := strings.ToLower(d.Name())
	dialects[key] = d
	for _, a := range d.aliases {
		aliases[strings.ToLower(a)] = key
	}
}

// List returns all registered dialect names (sorted). Aliases are not included.
func List() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered dialect ordered by name.
func All() []*Dialect {
	names := List()
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	out := make([]*Dialect, 0, len(names))
	for _, n := range names {
		out = append(out, dialects[n])
	}
	return out
}

// Default returns the DefaultName dialect, or nil if it has not been registered.
func Default() *Dialect {
	d, _ := Get(DefaultName)
	return d
}

// UnknownDialectError is returned when an unregistered dialect is requested.
type UnknownDialectError struct {
	Name      string
	Available []string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown dialect %q\nAvailable dialects: %v\nHint: Check dialect in leapddl.yaml or the --dialect flag", e.Name, e.Available)
}
