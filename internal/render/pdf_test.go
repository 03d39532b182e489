package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/order-billing/internal/model"
	"github.com/rezonia/order-billing/internal/money"
	"github.com/rezonia/order-billing/internal/render"
)

func TestBuildPDF_MagicHeader(t *testing.T) {
	pdf := render.BuildPDF([]string{"XYZ Pvt Ltd", "Tax Invoice: INV-2026-00001"})
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-1.4")))
	assert.True(t, bytes.HasSuffix(pdf, []byte("%%EOF\n")))
}

func TestBuildPDF_EscapesParentheses(t *testing.T) {
	pdf := render.BuildPDF([]string{"Buyer: Acme (Retail) \\ Wholesale"})
	assert.Contains(t, string(pdf), `Acme \(Retail\) \\ Wholesale`)
}

func TestRenderer_Invoice(t *testing.T) {
	dir := t.TempDir()
	r := render.NewRenderer(dir)

	lines := []model.InvoiceLine{
		{
			Item:      "shipping box",
			Qty:       2,
			UnitPrice: money.MustFromString("35.00"),
			TaxRate:   money.MustFromString("0.18"),
			Taxable:   money.MustFromString("70.00"),
			TaxAmount: money.MustFromString("12.60"),
			LineTotal: money.MustFromString("82.60"),
		},
	}
	totals := model.InvoiceTotals{
		Subtotal:   money.MustFromString("70.00"),
		TaxTotal:   money.MustFromString("12.60"),
		Discount:   money.MustFromString("0.00"),
		GrandTotal: money.MustFromString("82.60"),
	}

	path, err := r.Invoice("INV-2026-00042", "blr-01", "Acme Retail", lines, totals, "https://pay.razorpay.com/?invoice=INV-2026-00042&amount=8260")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "INV-2026-00042.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	content := string(data)
	assert.Contains(t, content, "Tax Invoice: INV-2026-00042")
	assert.Contains(t, content, "Branch: blr-01")
	assert.Contains(t, content, "shipping box | 2 | INR 35.00 | 18.0% | INR 82.60")
	assert.Contains(t, content, "Total Due: INR 82.60")
}

func TestRenderer_SetCompany(t *testing.T) {
	r := render.NewRenderer(t.TempDir())
	r.SetCompany("Sharma Traders", "Pune, Maharashtra")

	path, err := r.Invoice("INV-2026-00002", "main", "Acme Retail", nil, model.InvoiceTotals{
		Subtotal:   money.Zero,
		TaxTotal:   money.Zero,
		Discount:   money.Zero,
		GrandTotal: money.Zero,
	}, "https://pay.example/x")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Sharma Traders")
	assert.Contains(t, string(data), "Pune, Maharashtra")
	assert.NotContains(t, string(data), render.DefaultCompanyName)
}

func TestRenderer_OutputValidatesAsPDF(t *testing.T) {
	dir := t.TempDir()
	r := render.NewRenderer(dir)

	totals := model.InvoiceTotals{
		Subtotal:   money.MustFromString("30.00"),
		TaxTotal:   money.MustFromString("5.40"),
		Discount:   money.MustFromString("0.00"),
		GrandTotal: money.MustFromString("35.40"),
	}
	path, err := r.Invoice("INV-2026-00001", "main", "Acme Retail", nil, totals, "https://pay.example/x")
	require.NoError(t, err)

	require.NoError(t, api.ValidateFile(path, nil))
}
