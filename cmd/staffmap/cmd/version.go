package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCommand builds the version subcommand.
func newVersionCommand(version Version) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("staffmap %s (commit %s, built %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}
