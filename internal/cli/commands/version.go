package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, buildDate, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display BUCOLIN version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bucolin v%s\n", version)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Historical Turkish Translator")
			if buildDate != "unknown" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Built: %s (%s)\n", buildDate, gitCommit)
			}
		},
	}
}
