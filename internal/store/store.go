// Package store persists invoice records, issues invoice numbers, and
// tracks per-item inventory. The pipeline depends only on the Store
// interface; a mutex-guarded in-memory store and a SQLite-backed store
// are provided.
package store

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/order-billing/internal/model"
)

// DefaultStock is the inventory level assumed for items never seen before
const DefaultStock = 200

// Summary reports today's order volume, optionally filtered by branch
type Summary struct {
	OrderCount   int             `json:"order_count"`
	GrossRevenue decimal.Decimal `json:"gross_revenue"`
}

// Store is the sequencing and persistence collaborator around the core
// pipeline. Implementations must be safe for concurrent use.
type Store interface {
	// NextInvoiceNumber issues a unique identifier INV-<year>-<5-digit counter>
	NextInvoiceNumber() (string, error)

	// SaveInvoice persists a processed invoice record
	SaveInvoice(rec *model.InvoiceResult) error

	// DeductInventory decrements an item's stock by qty, flooring at zero
	DeductInventory(item string, qty int) error

	// Inventory returns current stock levels for all tracked items
	Inventory() (map[string]int, error)

	// DailySummary returns order count and gross revenue for today,
	// restricted to branchID when non-empty
	DailySummary(branchID string) (Summary, error)

	// Close releases any underlying resources
	Close() error
}
