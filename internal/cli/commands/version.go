package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapddl/pkg/dialect"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display LeapDDL version and the dialects compiled into this build.`,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "LeapDDL v%s\n", version)
			_, _ = fmt.Fprintln(out, "Dialect-adaptive DDL generation")
			if names := dialect.List(); len(names) > 0 {
				_, _ = fmt.Fprintf(out, "Dialects: %s\n", strings.Join(names, ", "))
			}
		},
	}
}
