// Package cmd implements the staffmap CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rosterops/staffmap/pkg/logging"
)

// Version carries build metadata into the version command.
type Version struct {
	Version string
	Commit  string
	Date    string
}

// rootState holds flag values and loaded configuration shared by the
// subcommands of one invocation.
type rootState struct {
	configFile string
	verbose    bool
	quiet      bool

	config *Config
}

// NewRootCommand builds the staffmap root command with all subcommands.
func NewRootCommand(version Version) *cobra.Command {
	state := &rootState{}

	root := &cobra.Command{
		Use:   "staffmap",
		Short: "Consolidate employee records from heterogeneous spreadsheets",
		Long: `staffmap reads employee data from xlsx and csv exports with arbitrary
schemas, resolves which rows describe the same person, merges conflicting
values deterministically, and writes a consolidated directory with full
employment history.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(state.configFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			config.Verbose = state.verbose
			config.Quiet = state.quiet
			state.config = config

			logger := NewLogger(config)
			logging.SetDefault(logger)
			cmd.SetContext(logging.WithLogger(cmd.Context(), &logger))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&state.configFile, "config", "c", "", "config file (default .staffmap.yaml)")
	root.PersistentFlags().BoolVarP(&state.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVarP(&state.quiet, "quiet", "q", false, "only log warnings and errors")

	root.AddCommand(newConsolidateCommand(state))
	root.AddCommand(newInspectCommand(state))
	root.AddCommand(newVersionCommand(version))

	return root
}
