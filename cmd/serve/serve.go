// Package serve handles the HTTP upload server command
package serve

import (
	"os"
	"os/signal"
	"syscall"

	"fjacquet/ccstmt-csv/cmd/root"
	"fjacquet/ccstmt-csv/internal/container"
	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/server"

	"github.com/spf13/cobra"
)

var address string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the statement upload page over HTTP",
	Long: `Start an HTTP server with a statement upload page.

Endpoints:
  GET  /                 upload page
  POST /api/extract      JSON records, CSV text and summary (form field "file")
  POST /api/extract/csv  parsed_results.csv download`,
	Run: serveFunc,
}

func init() {
	Cmd.Flags().StringVarP(&address, "address", "a", "", "Listen address (default server.address)")
}

func serveFunc(cmd *cobra.Command, args []string) {
	appContainer := root.GetContainer()
	if appContainer == nil {
		root.Log.Fatal("Container not initialized")
	}

	s := NewServer(appContainer)
	addr := address
	if addr == "" {
		addr = appContainer.GetConfig().Server.Address
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		root.Log.Info("Shutting down HTTP server")
		if err := s.Shutdown(); err != nil {
			root.Log.WithError(err).Warn("HTTP server shutdown failed")
		}
	}()

	if err := s.Listen(addr); err != nil {
		root.Log.Fatalf("HTTP server failed: %v", err)
	}
}

// NewServer builds the HTTP server from the container.
func NewServer(c *container.Container) *server.Server {
	cfg := c.GetConfig()
	c.GetLogger().Debug("Configuring HTTP server",
		logging.Field{Key: logging.FieldAddress, Value: cfg.Server.Address})
	return server.New(c.GetParser(), c.GetCSVExporter(), c.GetLogger(), cfg.Server.MaxUploadMB)
}
