package config

import (
	"fmt"
	"os"
)

// ValidateSearchPath checks that every search path root is an existing directory.
func ValidateSearchPath(c *Config) error {
	for _, root := range c.SearchPath {
		info, err := os.Stat(root)
		if os.IsNotExist(err) {
			return fmt.Errorf("search path does not exist: %s\nHint: Create the directory or use --search-path to specify a different path", root)
		}
		if err != nil {
			return fmt.Errorf("failed to stat search path %s: %w", root, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("search path is not a directory: %s", root)
		}
	}
	return nil
}
