package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rosterops/staffmap"
	"github.com/rosterops/staffmap/pkg/consolidate"
	"github.com/rosterops/staffmap/pkg/logging"
	"github.com/rosterops/staffmap/pkg/reliability"
)

// newConsolidateCommand builds the consolidate subcommand.
func newConsolidateCommand(state *rootState) *cobra.Command {
	var (
		workbookPath string
		latestCSV    string
		historyCSV   string
	)

	c := &cobra.Command{
		Use:   "consolidate",
		Short: "Run a full consolidation over the configured sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := state.config

			srcs, err := buildSources(config.Sources)
			if err != nil {
				return err
			}

			opts := []staffmap.Option{
				staffmap.WithWeights(reliability.New(config.Weights)),
			}
			if config.MappingFile != "" {
				opts = append(opts, staffmap.WithMappingFile(config.MappingFile))
			}

			sm, err := staffmap.New(opts...)
			if err != nil {
				return err
			}

			result, err := sm.Consolidate(cmd.Context(), srcs...)
			if err != nil {
				return err
			}

			if workbookPath == "" {
				workbookPath = config.Output.Workbook
			}
			if latestCSV == "" {
				latestCSV = config.Output.LatestCSV
			}
			if historyCSV == "" {
				historyCSV = config.Output.HistoryCSV
			}

			if err := sm.SaveWorkbook(cmd.Context(), result, workbookPath); err != nil {
				return err
			}
			if latestCSV != "" || historyCSV != "" {
				if latestCSV == "" || historyCSV == "" {
					return fmt.Errorf("--latest-csv and --history-csv must be set together")
				}
				if err := sm.SaveCSV(cmd.Context(), result, latestCSV, historyCSV); err != nil {
					return err
				}
			}

			return renderSummary(result, workbookPath)
		},
	}

	c.Flags().StringVarP(&workbookPath, "output", "o", "", "output workbook path (default from config)")
	c.Flags().StringVar(&latestCSV, "latest-csv", "", "also write the latest view as CSV")
	c.Flags().StringVar(&historyCSV, "history-csv", "", "also write the history as CSV")

	return c
}

// renderSummary prints the run counters as a table on stdout.
func renderSummary(result *consolidate.Result, workbookPath string) error {
	s := result.Summary

	table := tablewriter.NewTable(os.Stdout)
	table.Header("Metric", "Value")

	rows := [][2]string{
		{"Sources loaded", strconv.Itoa(s.SourcesLoaded)},
		{"Sources failed", strconv.Itoa(s.SourcesFailed)},
		{"Records in", strconv.Itoa(s.RecordsIn)},
		{"Exact duplicates dropped", strconv.Itoa(s.ExactDuplicates)},
		{"People resolved", strconv.Itoa(s.Clusters)},
		{"Active", strconv.Itoa(s.ActiveProfiles)},
		{"Resigned/Terminated", strconv.Itoa(s.ResignedProfiles)},
		{"Merged by name only", strconv.Itoa(s.MergedByNameOnly)},
		{"Duplicate employee IDs", strconv.Itoa(s.DuplicateIDs)},
		{"Field conflicts", strconv.Itoa(s.Conflicts)},
		{"Pending employee ID", strconv.Itoa(s.PendingID)},
		{"Temp IDs issued", strconv.Itoa(s.TempIDsIssued)},
		{"Status fallbacks", strconv.Itoa(s.StatusFallbacks)},
		{"Elapsed", s.Elapsed.String()},
	}
	for _, row := range rows {
		if err := table.Append(row[0], row[1]); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	for _, w := range result.Warnings {
		logging.Warn().Str("run_id", result.RunID.String()).Msg(w)
	}
	fmt.Printf("\nWrote %s (run %s)\n", workbookPath, result.RunID)
	return nil
}
