package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rezonia/order-billing/internal/config"
	"github.com/rezonia/order-billing/internal/server"
)

var (
	serverAddr  string
	serverDebug bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for order billing.

The API provides endpoints for:
  - POST /api/v1/orders                      - Bill an order message
  - POST /api/v1/invoices/:number/revision   - Record a revision request
  - GET  /api/v1/summary                     - Daily order summary
  - GET  /api/v1/inventory                   - Inventory levels
  - GET  /health                             - Health check

Examples:
  # Start server on default port with in-memory storage
  order-billing serve

  # Persist invoices and counters across restarts
  order-billing serve --db billing.db --address :8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", "", "Server listen address (env: BILLING_ADDRESS)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if serverAddr == "" {
		serverAddr = cfg.Address
	}

	logger := newLogger()
	pipeline, closeStore, err := buildPipeline(logger)
	if err != nil {
		return err
	}

	srv := server.NewServer(&server.Config{
		Address:      serverAddr,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Debug:        serverDebug,
	}, pipeline, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		_ = closeStore()
		os.Exit(0)
	}()

	logger.Info().Str("address", serverAddr).Msg("starting server")
	if dbPath != "" {
		logger.Info().Str("db", dbPath).Msg("sqlite storage enabled")
	} else {
		logger.Info().Msg("in-memory storage (invoice counters reset on restart)")
	}

	return srv.Run()
}
