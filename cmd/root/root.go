// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/relisha1/MoMo-Data-Analysis/internal/categorizer"
	"github.com/relisha1/MoMo-Data-Analysis/internal/config"
	"github.com/relisha1/MoMo-Data-Analysis/internal/export"
	"github.com/relisha1/MoMo-Data-Analysis/internal/extractor"
	"github.com/relisha1/MoMo-Data-Analysis/internal/pipeline"
	"github.com/relisha1/MoMo-Data-Analysis/internal/sms"
	"github.com/relisha1/MoMo-Data-Analysis/internal/store"
	"github.com/relisha1/MoMo-Data-Analysis/internal/xmlutils"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "momo",
		Short: "Ingest, categorize and query mobile-money SMS transactions.",
		Long: `momo ingests SMS backup XML exports of mobile-money notifications,
classifies each message into a transaction category, extracts the structured
fields and persists the records. A read-only HTTP API serves filtered
listings and per-category summaries.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.Load()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Log = config.ConfigureLogging(Cfg)

			// Set the configured logger for all packages
			categorizer.SetLogger(Log)
			extractor.SetLogger(Log)
			sms.SetLogger(Log)
			xmlutils.SetLogger(Log)
			pipeline.SetLogger(Log)
			store.SetLogger(Log)
			export.SetLogger(Log)

			export.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])
		},
	}

	// SharedFlags holds flags common to multiple commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// OpenStore connects to the configured database.
func OpenStore() *store.TransactionStore {
	s, err := store.Open(Cfg.Database.Driver, Cfg.Database.DSN)
	if err != nil {
		Log.Fatalf("Failed to open transaction store: %v", err)
	}
	return s
}
