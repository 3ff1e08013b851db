// Package serve runs the HTTP API server.
package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jmoret/bankparse/cmd/root"
)

// Cmd represents the serve command.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the statement parsing API server",
	Long:  `Start the HTTP API: statement upload, parsing and transaction CRUD.`,
	Run:   serveFunc,
}

func serveFunc(cmd *cobra.Command, args []string) {
	c := root.GetContainer()
	logger := c.Logger()
	cfg := c.Config()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	if err := c.Server().Run(ctx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Fatal("Server exited with error")
	}
	logger.Info("Server stopped")
}
