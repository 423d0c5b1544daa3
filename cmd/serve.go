package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/k021c1498/lifeplan-suisoku/internal/calculation"
	"github.com/k021c1498/lifeplan-suisoku/internal/server"

	"github.com/spf13/cobra"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulation over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default from settings, :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	addr := flagAddr
	if addr == "" {
		addr = settings.Server.Addr
	}

	logger := calculation.NewStdLogger(cmd.ErrOrStderr(), flagVerbose)
	engine := newEngine(cmd.ErrOrStderr())
	srv := server.New(engine, logger, settings.Server.MaxBodyBytes)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.ListenAndServe(ctx, addr)
}
