// Package ingest handles the one-shot SMS export ingest command
package ingest

import (
	"github.com/spf13/cobra"

	"github.com/relisha1/MoMo-Data-Analysis/cmd/root"
	"github.com/relisha1/MoMo-Data-Analysis/internal/audit"
	"github.com/relisha1/MoMo-Data-Analysis/internal/categorizer"
	"github.com/relisha1/MoMo-Data-Analysis/internal/pipeline"
	"github.com/relisha1/MoMo-Data-Analysis/internal/sms"
)

// Cmd represents the ingest command
var Cmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest an SMS backup XML export into the transaction store",
	Long: `Ingest reads every <sms> entry of an XML export, categorizes the message
body, extracts the transaction fields and persists the records. Skipped
messages are appended to the audit log for manual review.`,
	Run: ingestFunc,
}

func ingestFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file is required, use --input")
	}

	root.Log.WithField("file", root.SharedFlags.Input).Info("Ingesting SMS export")

	messages, err := sms.ParseFile(root.SharedFlags.Input, sms.BodySource(root.Cfg.Ingest.BodySource))
	if err != nil {
		root.Log.Fatalf("Failed to parse SMS export: %v", err)
	}

	rules, err := categorizer.LoadRules(root.Cfg.Categories.File)
	if err != nil {
		root.Log.Fatalf("Failed to load category rules: %v", err)
	}

	sink, err := audit.NewFileSink(root.Cfg.Ingest.AuditLog)
	if err != nil {
		root.Log.Fatalf("Failed to open audit log: %v", err)
	}
	defer func() {
		if err := sink.Close(); err != nil {
			root.Log.Warnf("Failed to close audit log: %v", err)
		}
	}()

	s := root.OpenStore()

	var opts []pipeline.Option
	if !root.Cfg.Ingest.SkipUncategorized {
		opts = append(opts, pipeline.WithKeepUncategorized())
	}
	p := pipeline.New(categorizer.New(rules), s, sink, opts...)

	res := p.Run(messages)
	root.Log.Infof("Processed %d transactions. Skipped %d messages.", res.Accepted, res.Skipped)
}
