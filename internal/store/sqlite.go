package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rezonia/order-billing/internal/model"
	"github.com/rezonia/order-billing/internal/money"
)

// SQLite persists invoices, counters, and inventory in a local database
// file, so invoice numbers survive restarts.
type SQLite struct {
	conn *sql.DB
	now  func() time.Time
}

// OpenSQLite opens (creating if needed) the database at path
func OpenSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	s := &SQLite{conn: conn, now: time.Now}
	if err := s.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS invoice_counters (
  year INTEGER PRIMARY KEY,
  value INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS invoices (
  invoice_number TEXT PRIMARY KEY,
  branch_id TEXT NOT NULL,
  customer_name TEXT NOT NULL,
  subtotal TEXT NOT NULL,
  tax_total TEXT NOT NULL,
  discount TEXT NOT NULL,
  grand_total TEXT NOT NULL,
  pdf_path TEXT,
  payment_link TEXT,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_invoices_created_at ON invoices(created_at);
CREATE INDEX IF NOT EXISTS idx_invoices_branch ON invoices(branch_id);

CREATE TABLE IF NOT EXISTS inventory (
  item TEXT PRIMARY KEY,
  stock INTEGER NOT NULL
);
`
	_, err := s.conn.Exec(schema)
	return err
}

// NextInvoiceNumber increments the per-year counter atomically
func (s *SQLite) NextInvoiceNumber() (string, error) {
	year := s.now().Year()

	tx, err := s.conn.Begin()
	if err != nil {
		return "", &model.StoreError{Op: "next invoice number", Cause: err}
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT INTO invoice_counters (year, value) VALUES (?, 0)
		 ON CONFLICT(year) DO NOTHING`, year); err != nil {
		return "", &model.StoreError{Op: "next invoice number", Cause: err}
	}
	if _, err := tx.Exec(
		`UPDATE invoice_counters SET value = value + 1 WHERE year = ?`, year); err != nil {
		return "", &model.StoreError{Op: "next invoice number", Cause: err}
	}

	var counter int
	if err := tx.QueryRow(
		`SELECT value FROM invoice_counters WHERE year = ?`, year).Scan(&counter); err != nil {
		return "", &model.StoreError{Op: "next invoice number", Cause: err}
	}
	if err := tx.Commit(); err != nil {
		return "", &model.StoreError{Op: "next invoice number", Cause: err}
	}
	return fmt.Sprintf("INV-%d-%05d", year, counter), nil
}

// SaveInvoice inserts the invoice record
func (s *SQLite) SaveInvoice(rec *model.InvoiceResult) error {
	_, err := s.conn.Exec(
		`INSERT INTO invoices
		 (invoice_number, branch_id, customer_name, subtotal, tax_total, discount, grand_total, pdf_path, payment_link, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.InvoiceNumber, rec.BranchID, rec.CustomerName,
		rec.Totals.Subtotal.String(), rec.Totals.TaxTotal.String(),
		rec.Totals.Discount.String(), rec.Totals.GrandTotal.String(),
		rec.PDFPath, rec.PaymentLink, rec.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return &model.StoreError{Op: "save invoice", Cause: err}
	}
	return nil
}

// DeductInventory lowers stock, seeding unseen items at DefaultStock and
// flooring at zero
func (s *SQLite) DeductInventory(item string, qty int) error {
	_, err := s.conn.Exec(
		`INSERT INTO inventory (item, stock) VALUES (?, ?)
		 ON CONFLICT(item) DO UPDATE SET stock = MAX(0, stock - ?)`,
		item, max(0, DefaultStock-qty), qty)
	if err != nil {
		return &model.StoreError{Op: "deduct inventory", Cause: err}
	}
	return nil
}

// Inventory reads all tracked stock levels
func (s *SQLite) Inventory() (map[string]int, error) {
	rows, err := s.conn.Query(`SELECT item, stock FROM inventory ORDER BY item`)
	if err != nil {
		return nil, &model.StoreError{Op: "inventory", Cause: err}
	}
	defer rows.Close()

	snapshot := make(map[string]int)
	for rows.Next() {
		var item string
		var stock int
		if err := rows.Scan(&item, &stock); err != nil {
			return nil, &model.StoreError{Op: "inventory", Cause: err}
		}
		snapshot[item] = stock
	}
	if err := rows.Err(); err != nil {
		return nil, &model.StoreError{Op: "inventory", Cause: err}
	}
	return snapshot, nil
}

// DailySummary aggregates today's invoices, optionally per branch
func (s *SQLite) DailySummary(branchID string) (Summary, error) {
	today := s.now().UTC().Format("2006-01-02")

	query := `SELECT grand_total FROM invoices WHERE substr(created_at, 1, 10) = ?`
	args := []any{today}
	if branchID != "" {
		query += ` AND branch_id = ?`
		args = append(args, branchID)
	}

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return Summary{}, &model.StoreError{Op: "daily summary", Cause: err}
	}
	defer rows.Close()

	summary := Summary{GrossRevenue: money.Zero}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return Summary{}, &model.StoreError{Op: "daily summary", Cause: err}
		}
		total, err := money.FromString(raw)
		if err != nil {
			return Summary{}, &model.StoreError{Op: "daily summary", Cause: err}
		}
		summary.OrderCount++
		summary.GrossRevenue = summary.GrossRevenue.Add(total)
	}
	if err := rows.Err(); err != nil {
		return Summary{}, &model.StoreError{Op: "daily summary", Cause: err}
	}
	summary.GrossRevenue = money.Round(summary.GrossRevenue)
	return summary, nil
}

// Close closes the database connection
func (s *SQLite) Close() error {
	return s.conn.Close()
}
