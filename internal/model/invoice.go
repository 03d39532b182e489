package model

import "github.com/shopspring/decimal"

// InvoiceLine is one priced catalog item on an invoice.
// Monetary fields are rounded to 2 decimal places at creation.
type InvoiceLine struct {
	Item      string          `json:"item"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Taxable   decimal.Decimal `json:"taxable_total"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// InvoiceTotals holds the invoice-level sums, each rounded to 2 places
// only after accumulation. GrandTotal = Subtotal + TaxTotal - Discount.
type InvoiceTotals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxTotal   decimal.Decimal `json:"tax_total"`
	Discount   decimal.Decimal `json:"discount"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}
