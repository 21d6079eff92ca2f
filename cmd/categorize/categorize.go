// Package categorize handles the one-off message categorization command
package categorize

import (
	"github.com/spf13/cobra"

	"github.com/relisha1/MoMo-Data-Analysis/cmd/root"
	"github.com/relisha1/MoMo-Data-Analysis/internal/categorizer"
	"github.com/relisha1/MoMo-Data-Analysis/internal/extractor"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single message body and show the extracted fields",
	Long: `Categorize runs the keyword rules and field extraction against one raw
message body. Useful for checking how a message would be ingested.`,
	Run: categorizeFunc,
}

// body holds the --body flag value
var body string

func init() {
	Cmd.Flags().StringVarP(&body, "body", "b", "", "Raw message body to categorize")
	if err := Cmd.MarkFlagRequired("body"); err != nil {
		panic(err)
	}
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	rules, err := categorizer.LoadRules(root.Cfg.Categories.File)
	if err != nil {
		root.Log.Fatalf("Failed to load category rules: %v", err)
	}

	category := categorizer.New(rules).Categorize(body)
	root.Log.Infof("Category: %s", category)

	fields, err := extractor.Extract(body)
	if err != nil {
		root.Log.Warnf("Extraction failed: %v", err)
		return
	}

	root.Log.Infof("Amount: %d RWF", fields.Amount)
	root.Log.Infof("Fee: %d RWF", fields.Fee)
	root.Log.Infof("Date: %s", fields.Date)
	if fields.Sender != "" {
		root.Log.Infof("Sender: %s", fields.Sender)
	}
	if fields.Receiver != "" {
		root.Log.Infof("Receiver: %s", fields.Receiver)
	}
	if fields.TxID != "" {
		root.Log.Infof("TxId: %s", fields.TxID)
	}
}
