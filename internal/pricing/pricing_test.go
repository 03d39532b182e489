package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/order-billing/internal/catalog"
	"github.com/rezonia/order-billing/internal/model"
	"github.com/rezonia/order-billing/internal/pricing"
)

func mustEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func TestAggregate(t *testing.T) {
	items := []model.ParsedItem{
		{Name: "packing tape", Qty: 2},
		{Name: "shipping box", Qty: 1},
		{Name: "packing tape", Qty: 3},
	}

	got := pricing.Aggregate(items)
	require.Len(t, got, 2)
	assert.Equal(t, pricing.AggregatedItem{Name: "packing tape", Qty: 5}, got[0])
	assert.Equal(t, pricing.AggregatedItem{Name: "shipping box", Qty: 1}, got[1])
}

func TestAggregate_PreservesFirstOccurrenceOrder(t *testing.T) {
	items := []model.ParsedItem{
		{Name: "b", Qty: 1},
		{Name: "a", Qty: 1},
		{Name: "b", Qty: 1},
		{Name: "c", Qty: 1},
	}

	got := pricing.Aggregate(items)
	names := make([]string, len(got))
	for i, item := range got {
		names[i] = item.Name
	}
	assert.Equal(t, []string{"b", "a", "c"}, names)
}

func TestAggregate_KeepsUnknownNames(t *testing.T) {
	got := pricing.Aggregate([]model.ParsedItem{{Name: "mystery widget", Qty: 4}})
	require.Len(t, got, 1)
	assert.Equal(t, "mystery widget", got[0].Name)
}

func TestPrice_WithDiscount(t *testing.T) {
	engine := pricing.NewEngine(catalog.Default())

	lines, totals, err := engine.Price([]pricing.AggregatedItem{
		{Name: "shipping box", Qty: 2},
		{Name: "packing tape", Qty: 1},
	}, "BULK5")
	require.NoError(t, err)
	require.Len(t, lines, 2)

	mustEqual(t, "100.00", totals.Subtotal)
	mustEqual(t, "18.00", totals.TaxTotal)
	mustEqual(t, "5.90", totals.Discount)
	mustEqual(t, "112.10", totals.GrandTotal)

	mustEqual(t, "70.00", lines[0].Taxable)
	mustEqual(t, "12.60", lines[0].TaxAmount)
	mustEqual(t, "82.60", lines[0].LineTotal)
	mustEqual(t, "30.00", lines[1].Taxable)
	mustEqual(t, "5.40", lines[1].TaxAmount)
	mustEqual(t, "35.40", lines[1].LineTotal)
}

func TestPrice_RoundingLaw(t *testing.T) {
	engine := pricing.NewEngine(catalog.Default())

	lines, totals, err := engine.Price([]pricing.AggregatedItem{
		{Name: "thermal paper roll", Qty: 7},
		{Name: "invoice printing service", Qty: 3},
		{Name: "barcode label pack", Qty: 1},
	}, "BULK10")
	require.NoError(t, err)
	require.Len(t, lines, 3)

	expected := totals.Subtotal.Add(totals.TaxTotal).Sub(totals.Discount).Round(2)
	assert.True(t, totals.GrandTotal.Equal(expected),
		"grand total %s != round(subtotal + tax - discount) %s", totals.GrandTotal, expected)
}

func TestPrice_PromoCode(t *testing.T) {
	engine := pricing.NewEngine(catalog.Default())
	items := []pricing.AggregatedItem{{Name: "packing tape", Qty: 1}}

	t.Run("case insensitive", func(t *testing.T) {
		_, totals, err := engine.Price(items, "bulk5")
		require.NoError(t, err)
		assert.True(t, totals.Discount.IsPositive())
	})

	t.Run("unknown code means no discount", func(t *testing.T) {
		_, totals, err := engine.Price(items, "NOSUCH")
		require.NoError(t, err)
		assert.True(t, totals.Discount.IsZero())
		assert.True(t, totals.GrandTotal.Equal(totals.Subtotal.Add(totals.TaxTotal)))
	})

	t.Run("absent code means no discount", func(t *testing.T) {
		_, totals, err := engine.Price(items, "")
		require.NoError(t, err)
		assert.True(t, totals.Discount.IsZero())
	})
}

func TestPrice_SkipsUnknownItems(t *testing.T) {
	engine := pricing.NewEngine(catalog.Default())

	lines, totals, err := engine.Price([]pricing.AggregatedItem{
		{Name: "mystery widget", Qty: 4},
		{Name: "packing tape", Qty: 1},
	}, "")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "packing tape", lines[0].Item)
	mustEqual(t, "30.00", totals.Subtotal)
}

func TestPrice_NothingPriceable(t *testing.T) {
	engine := pricing.NewEngine(catalog.Default())

	_, _, err := engine.Price([]pricing.AggregatedItem{
		{Name: "mystery widget", Qty: 4},
	}, "")
	require.Error(t, err)

	kind, ok := model.RejectionOf(err)
	require.True(t, ok)
	assert.Equal(t, model.RejectionNothingPriceable, kind)
}

func TestPrice_CommutativeAcrossDisjointItems(t *testing.T) {
	engine := pricing.NewEngine(catalog.Default())

	forward, forwardTotals, err := engine.Price([]pricing.AggregatedItem{
		{Name: "shipping box", Qty: 2},
		{Name: "packing tape", Qty: 1},
	}, "BULK5")
	require.NoError(t, err)

	reversed, reversedTotals, err := engine.Price([]pricing.AggregatedItem{
		{Name: "packing tape", Qty: 1},
		{Name: "shipping box", Qty: 2},
	}, "BULK5")
	require.NoError(t, err)

	assert.ElementsMatch(t, forward, reversed)
	assert.True(t, forwardTotals.GrandTotal.Equal(reversedTotals.GrandTotal))
	assert.True(t, forwardTotals.Discount.Equal(reversedTotals.Discount))
}
