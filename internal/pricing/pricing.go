// Package pricing aggregates parsed items and computes taxable invoice
// lines and totals against the catalog.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/order-billing/internal/catalog"
	"github.com/rezonia/order-billing/internal/model"
	"github.com/rezonia/order-billing/internal/money"
)

// AggregatedItem is a canonical name with its summed quantity
type AggregatedItem struct {
	Name string
	Qty  int
}

// Aggregate merges parsed items by name, summing quantities. Insertion
// order of first occurrence is preserved so downstream output is
// deterministic. Names absent from the catalog survive aggregation and
// are dropped later at pricing time.
func Aggregate(items []model.ParsedItem) []AggregatedItem {
	index := make(map[string]int, len(items))
	var out []AggregatedItem
	for _, item := range items {
		if i, seen := index[item.Name]; seen {
			out[i].Qty += item.Qty
			continue
		}
		index[item.Name] = len(out)
		out = append(out, AggregatedItem{Name: item.Name, Qty: item.Qty})
	}
	return out
}

// Engine prices aggregated items against a catalog
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates a pricing engine over the given catalog
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Price computes invoice lines and totals for the aggregated items.
//
// Each stored line has taxable, tax, and line total rounded to 2 places
// independently, but the running subtotal and tax total accumulate the
// unrounded values; the four invoice-level figures are rounded once at
// the end. A line's displayed components can therefore differ from the
// rounded totals by up to half a cent, and that ordering is a
// compatibility contract, not a bug.
//
// Names with no catalog entry are skipped without error; if nothing
// survives, a nothing-priceable rejection is returned.
func (e *Engine) Price(items []AggregatedItem, promoCode string) ([]model.InvoiceLine, model.InvoiceTotals, error) {
	var lines []model.InvoiceLine
	subtotal := money.Zero
	taxTotal := money.Zero

	for _, item := range items {
		product, ok := e.catalog.Lookup(item.Name)
		if !ok {
			continue
		}

		taxable := money.FromInt(int64(item.Qty)).Mul(product.UnitPrice)
		tax := taxable.Mul(product.TaxRate)
		lineTotal := taxable.Add(tax)

		lines = append(lines, model.InvoiceLine{
			Item:      product.Name,
			Qty:       item.Qty,
			UnitPrice: product.UnitPrice,
			TaxRate:   product.TaxRate,
			Taxable:   money.Round(taxable),
			TaxAmount: money.Round(tax),
			LineTotal: money.Round(lineTotal),
		})
		subtotal = subtotal.Add(taxable)
		taxTotal = taxTotal.Add(tax)
	}

	if len(lines) == 0 {
		return nil, model.InvoiceTotals{}, model.NewOrderError(
			model.RejectionNothingPriceable,
			"none of the requested items are configured in the catalog", "")
	}

	discount := subtotal.Add(taxTotal).Mul(e.catalog.DiscountRate(promoCode))
	grandTotal := subtotal.Add(taxTotal).Sub(discount)

	totals := model.InvoiceTotals{
		Subtotal:   money.Round(subtotal),
		TaxTotal:   money.Round(taxTotal),
		Discount:   money.Round(discount),
		GrandTotal: money.Round(grandTotal),
	}
	return lines, totals, nil
}

// DiscountRate exposes the catalog's promo lookup for callers that only
// need the rate
func (e *Engine) DiscountRate(code string) decimal.Decimal {
	return e.catalog.DiscountRate(code)
}
