// Package export handles the CSV export command
package export

import (
	"github.com/spf13/cobra"

	"github.com/relisha1/MoMo-Data-Analysis/cmd/root"
	"github.com/relisha1/MoMo-Data-Analysis/internal/export"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored transactions to a CSV file",
	Run:   exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Output == "" {
		root.Log.Fatal("Output file is required, use --output")
	}

	s := root.OpenStore()

	transactions, err := s.All()
	if err != nil {
		root.Log.Fatalf("Failed to read transactions: %v", err)
	}

	if err := export.WriteTransactionsToCSV(transactions, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Failed to write CSV: %v", err)
	}

	root.Log.WithField("count", len(transactions)).Info("Export completed")
}
