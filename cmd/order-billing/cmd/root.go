package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rezonia/order-billing/internal/catalog"
	"github.com/rezonia/order-billing/internal/config"
	"github.com/rezonia/order-billing/internal/processor"
	"github.com/rezonia/order-billing/internal/render"
	"github.com/rezonia/order-billing/internal/store"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	catalogPath  string
	dbPath       string
	invoiceDir   string

	// Company identity from the environment, applied to the renderer
	companyName    string
	companyAddress string
)

var rootCmd = &cobra.Command{
	Use:   "order-billing",
	Short: "Turn WhatsApp order messages into tax invoices",
	Long: `Order Billing converts free-form purchase messages into priced,
tax-compliant invoice PDFs.

The pipeline normalizes the message text, segments it into item chunks,
fuzzy-matches item names against the product catalog, aggregates
quantities, prices each line with its GST rate, and applies promo-code
discounts.

Examples:
  # Bill a message from the command line
  order-billing process --customer "Acme Retail" --phone +919999999999 \
    "Kindly dispatch 10 thermal paper roll, 2 label pack"

  # Start the HTTP API
  order-billing serve --address :8080

  # Validate a generated invoice document
  order-billing verify invoices/INV-2026-00001.pdf`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, table)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog JSON file (env: BILLING_CATALOG_PATH)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path; empty uses in-memory storage (env: BILLING_DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&invoiceDir, "invoice-dir", "", "Directory for generated PDFs (env: BILLING_INVOICE_DIR)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	if catalogPath == "" {
		catalogPath = cfg.CatalogPath
	}
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}
	if invoiceDir == "" {
		invoiceDir = cfg.InvoiceDir
	}
	companyName = cfg.CompanyName
	companyAddress = cfg.CompanyAddress
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()
}

// buildPipeline wires catalog, store, and renderer from the global flags.
// The returned closer releases the store.
func buildPipeline(logger zerolog.Logger) (*processor.Pipeline, func() error, error) {
	cat := catalog.Default()
	if catalogPath != "" {
		loaded, err := catalog.LoadFile(catalogPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load catalog: %w", err)
		}
		cat = loaded
	}

	var st store.Store = store.NewMemory()
	if dbPath != "" {
		sqliteStore, err := store.OpenSQLite(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		st = sqliteStore
	}

	dir := invoiceDir
	if dir == "" {
		dir = "invoices"
	}
	renderer := render.NewRenderer(dir)
	renderer.SetCompany(companyName, companyAddress)

	pipeline := processor.NewPipeline(
		processor.WithCatalog(cat),
		processor.WithStore(st),
		processor.WithRenderer(renderer),
		processor.WithLogger(logger),
	)
	return pipeline, st.Close, nil
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
