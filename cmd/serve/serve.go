// Package serve handles the HTTP query API command
package serve

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/relisha1/MoMo-Data-Analysis/cmd/root"
	"github.com/relisha1/MoMo-Data-Analysis/internal/api"
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read-only transaction query API",
	Long: `Serve starts the HTTP API exposing filtered transaction listings,
single-record lookup and the per-category summary.`,
	Run: serveFunc,
}

func serveFunc(cmd *cobra.Command, args []string) {
	s := root.OpenStore()

	r := gin.Default()
	api.RegisterRoutes(r, s)

	root.Log.WithField("addr", root.Cfg.Server.Addr).Info("Starting query API")
	if err := r.Run(root.Cfg.Server.Addr); err != nil {
		root.Log.Fatalf("Server failed: %v", err)
	}
}
