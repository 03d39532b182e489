package billinglib

import (
	"github.com/rezonia/order-billing/internal/catalog"
	"github.com/rezonia/order-billing/internal/processor"
	"github.com/rezonia/order-billing/internal/render"
	"github.com/rezonia/order-billing/internal/store"
)

// Options configures a Processor
type Options struct {
	// CatalogPath points at a catalog JSON file; empty uses the built-in catalog
	CatalogPath string
	// DatabasePath points at a SQLite file; empty uses in-memory storage
	DatabasePath string
	// InvoiceDir is where rendered PDFs are written (default "invoices")
	InvoiceDir string
}

// Processor is the embeddable order-billing pipeline
type Processor struct {
	pipeline *processor.Pipeline
	store    store.Store
}

// NewProcessor creates a processor with the given options
func NewProcessor(opts Options) (*Processor, error) {
	cat := catalog.Default()
	if opts.CatalogPath != "" {
		loaded, err := catalog.LoadFile(opts.CatalogPath)
		if err != nil {
			return nil, err
		}
		cat = loaded
	}

	var st store.Store = store.NewMemory()
	if opts.DatabasePath != "" {
		sqliteStore, err := store.OpenSQLite(opts.DatabasePath)
		if err != nil {
			return nil, err
		}
		st = sqliteStore
	}

	dir := opts.InvoiceDir
	if dir == "" {
		dir = "invoices"
	}

	return &Processor{
		pipeline: processor.NewPipeline(
			processor.WithCatalog(cat),
			processor.WithStore(st),
			processor.WithRenderer(render.NewRenderer(dir)),
		),
		store: st,
	}, nil
}

// NewDefaultProcessor creates a processor with default options
func NewDefaultProcessor() *Processor {
	p, err := NewProcessor(Options{})
	if err != nil {
		// Defaults never touch the filesystem, so this cannot fail.
		panic(err)
	}
	return p
}

// Process bills one order message
func (p *Processor) Process(msg *OrderMessage) (*InvoiceResult, error) {
	return p.pipeline.Process(msg)
}

// DailySummary reports today's order volume
func (p *Processor) DailySummary(branchID string) (store.Summary, error) {
	return p.pipeline.DailySummary(branchID)
}

// Inventory reports tracked stock levels
func (p *Processor) Inventory() (map[string]int, error) {
	return p.pipeline.Inventory()
}

// Close releases the underlying store
func (p *Processor) Close() error {
	return p.store.Close()
}
