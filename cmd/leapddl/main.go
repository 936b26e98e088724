// Package main provides the CLI for LeapDDL.
package main

import (
	"os"

	"github.com/leapstack-labs/leapddl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
