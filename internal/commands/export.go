package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/stmt/internal/export"
)

func newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <monthly.csv> <out.xlsx>",
		Short: "Convert a cleaned or monthly file to an Excel workbook",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := export.File(args[0], args[1])
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Printf("Exported %d transactions to %s\n", n, args[1])
			return nil
		},
	}
}
