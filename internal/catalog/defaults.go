package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/order-billing/internal/money"
)

// Default returns the built-in B2B supplies catalog used when no catalog
// file is configured.
func Default() *Catalog {
	products := []Product{
		{
			Name:      "thermal paper roll",
			UnitPrice: money.MustFromString("65.00"),
			TaxRate:   money.MustFromString("0.12"),
			Aliases:   []string{"paper roll", "thermal roll"},
		},
		{
			Name:      "barcode label pack",
			UnitPrice: money.MustFromString("220.00"),
			TaxRate:   money.MustFromString("0.12"),
			Aliases:   []string{"label pack", "barcode labels"},
		},
		{
			Name:      "shipping box",
			UnitPrice: money.MustFromString("35.00"),
			TaxRate:   money.MustFromString("0.18"),
			Aliases:   []string{"carton box", "box"},
		},
		{
			Name:      "packing tape",
			UnitPrice: money.MustFromString("30.00"),
			TaxRate:   money.MustFromString("0.18"),
			Aliases:   []string{"tape"},
		},
		{
			Name:      "invoice printing service",
			UnitPrice: money.MustFromString("12.00"),
			TaxRate:   money.MustFromString("0.18"),
			Aliases:   []string{"printing service"},
		},
	}

	promos := map[string]decimal.Decimal{
		"BULK5":  money.MustFromString("0.05"),
		"BULK10": money.MustFromString("0.10"),
	}

	c, err := New(products, promos)
	if err != nil {
		// The built-in table is static; a build failure is a programming error.
		panic(err)
	}
	return c
}
