package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/rezonia/order-billing/internal/model"
	"github.com/rezonia/order-billing/internal/money"
)

// Memory is an in-process Store. Counters reset when the process exits;
// it exists for tests and single-shot CLI runs.
type Memory struct {
	mu        sync.Mutex
	counter   int
	invoices  []model.InvoiceResult
	inventory map[string]int
	now       func() time.Time
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		inventory: make(map[string]int),
		now:       time.Now,
	}
}

// NextInvoiceNumber issues INV-<year>-<counter> from a process-local counter
func (s *Memory) NextInvoiceNumber() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	return fmt.Sprintf("INV-%d-%05d", s.now().Year(), s.counter), nil
}

// SaveInvoice appends the record
func (s *Memory) SaveInvoice(rec *model.InvoiceResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = append(s.invoices, *rec)
	return nil
}

// DeductInventory lowers stock for item, seeding unseen items at DefaultStock
func (s *Memory) DeductInventory(item string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stock, ok := s.inventory[item]
	if !ok {
		stock = DefaultStock
	}
	stock -= qty
	if stock < 0 {
		stock = 0
	}
	s.inventory[item] = stock
	return nil
}

// Inventory returns a copy of tracked stock levels
func (s *Memory) Inventory() (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make(map[string]int, len(s.inventory))
	for item, stock := range s.inventory {
		snapshot[item] = stock
	}
	return snapshot, nil
}

// DailySummary counts today's invoices and sums their grand totals
func (s *Memory) DailySummary(branchID string) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().Format("2006-01-02")
	summary := Summary{GrossRevenue: money.Zero}
	for _, inv := range s.invoices {
		if inv.CreatedAt.Format("2006-01-02") != today {
			continue
		}
		if branchID != "" && inv.BranchID != branchID {
			continue
		}
		summary.OrderCount++
		summary.GrossRevenue = summary.GrossRevenue.Add(inv.Totals.GrandTotal)
	}
	summary.GrossRevenue = money.Round(summary.GrossRevenue)
	return summary, nil
}

// Close is a no-op for the in-memory store
func (s *Memory) Close() error {
	return nil
}
