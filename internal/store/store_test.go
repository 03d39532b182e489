package store_test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/order-billing/internal/model"
	"github.com/rezonia/order-billing/internal/money"
	"github.com/rezonia/order-billing/internal/store"
)

// openStores builds one of each implementation so the shared contract is
// exercised against both.
func openStores(t *testing.T) map[string]store.Store {
	t.Helper()

	sqliteStore, err := store.OpenSQLite(filepath.Join(t.TempDir(), "billing.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	return map[string]store.Store{
		"memory": store.NewMemory(),
		"sqlite": sqliteStore,
	}
}

func TestNextInvoiceNumber(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			year := time.Now().Year()

			first, err := s.NextInvoiceNumber()
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("INV-%d-00001", year), first)

			second, err := s.NextInvoiceNumber()
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("INV-%d-00002", year), second)
		})
	}
}

func TestDeductInventory(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.DeductInventory("packing tape", 5))

			inventory, err := s.Inventory()
			require.NoError(t, err)
			assert.Equal(t, store.DefaultStock-5, inventory["packing tape"])

			// Stock floors at zero instead of going negative.
			require.NoError(t, s.DeductInventory("packing tape", 10000))
			inventory, err = s.Inventory()
			require.NoError(t, err)
			assert.Equal(t, 0, inventory["packing tape"])
		})
	}
}

func TestDailySummary(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			save := func(number, branch, total string) {
				require.NoError(t, s.SaveInvoice(&model.InvoiceResult{
					InvoiceNumber: number,
					BranchID:      branch,
					CustomerName:  "Acme Retail",
					Totals: model.InvoiceTotals{
						Subtotal:   money.MustFromString(total),
						TaxTotal:   money.Zero,
						Discount:   money.Zero,
						GrandTotal: money.MustFromString(total),
					},
					CreatedAt: time.Now(),
				}))
			}
			save("INV-2026-00001", "blr-01", "112.10")
			save("INV-2026-00002", "blr-02", "35.40")

			all, err := s.DailySummary("")
			require.NoError(t, err)
			assert.Equal(t, 2, all.OrderCount)
			assert.True(t, all.GrossRevenue.Equal(money.MustFromString("147.50")),
				"got %s", all.GrossRevenue)

			branch, err := s.DailySummary("blr-01")
			require.NoError(t, err)
			assert.Equal(t, 1, branch.OrderCount)
			assert.True(t, branch.GrossRevenue.Equal(money.MustFromString("112.10")))

			empty, err := s.DailySummary("no-such-branch")
			require.NoError(t, err)
			assert.Equal(t, 0, empty.OrderCount)
			assert.True(t, empty.GrossRevenue.IsZero())
		})
	}
}

func TestSQLite_CountersSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "billing.db")

	s, err := store.OpenSQLite(path)
	require.NoError(t, err)
	first, err := s.NextInvoiceNumber()
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = store.OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	second, err := s.NextInvoiceNumber()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, fmt.Sprintf("INV-%d-00002", time.Now().Year()), second)
}

func TestMemory_InventoryIsACopy(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, s.DeductInventory("tape", 1))

	snapshot, err := s.Inventory()
	require.NoError(t, err)
	snapshot["tape"] = -999

	again, err := s.Inventory()
	require.NoError(t, err)
	assert.Equal(t, store.DefaultStock-1, again["tape"])
}
