package main

import (
	"fmt"
	"os"

	"github.com/relisha1/MoMo-Data-Analysis/cmd/categorize"
	"github.com/relisha1/MoMo-Data-Analysis/cmd/export"
	"github.com/relisha1/MoMo-Data-Analysis/cmd/ingest"
	"github.com/relisha1/MoMo-Data-Analysis/cmd/root"
	"github.com/relisha1/MoMo-Data-Analysis/cmd/serve"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(ingest.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
