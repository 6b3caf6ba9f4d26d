package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rosterops/staffmap/pkg/schema"
	"github.com/rosterops/staffmap/pkg/tabular"
)

// newInspectCommand builds the inspect subcommand, a dry-run view of how
// one source would be read: where the header is and how its labels map.
func newInspectCommand(state *rootState) *cobra.Command {
	var sheet string

	c := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show header detection and column mapping for one source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srcs, err := buildSources([]SourceConfig{{
				Name:  args[0],
				Path:  args[0],
				Sheet: sheet,
			}})
			if err != nil {
				return err
			}

			raw, err := srcs[0].Load(cmd.Context())
			if err != nil {
				return err
			}

			header := tabular.LocateHeader(raw.Rows)
			fmt.Printf("Header row: %d (score %d, keywords %d, confidence %s)\n\n",
				header.Index, header.Score, header.Keywords, header.Confidence)

			mapping := schema.DefaultMapping()
			if state.config.MappingFile != "" {
				mapping, err = schema.LoadMapping(state.config.MappingFile)
				if err != nil {
					return err
				}
			}

			table := tablewriter.NewTable(os.Stdout)
			table.Header("Column", "Label", "Maps To")
			for col := 0; col < raw.Width(); col++ {
				label := raw.Cell(header.Index, col).Text()
				mapped := "(kept verbatim)"
				if label == "" {
					mapped = "(unnamed)"
				} else if field, ok := mapping.Resolve(label); ok {
					mapped = string(field)
				}
				if err := table.Append(fmt.Sprintf("%d", col), label, mapped); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}

	c.Flags().StringVar(&sheet, "sheet", "", "worksheet to inspect (xlsx only, default first)")
	return c
}
