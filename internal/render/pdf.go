// Package render writes the invoice document. The output is a minimal
// single-page PDF 1.4 file built object by object, with a correct xref
// table, so it opens in standard viewers and passes pdfcpu validation
// without pulling in a layout engine.
package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/order-billing/internal/model"
	"github.com/rezonia/order-billing/internal/money"
)

// Default company identity printed at the top of every invoice
const (
	DefaultCompanyName    = "XYZ Pvt Ltd"
	DefaultCompanyAddress = "Bengaluru, Karnataka"
)

// Renderer writes invoice PDFs into an output directory
type Renderer struct {
	outputDir      string
	companyName    string
	companyAddress string
	now            func() time.Time
}

// NewRenderer creates a renderer writing into outputDir
func NewRenderer(outputDir string) *Renderer {
	return &Renderer{
		outputDir:      outputDir,
		companyName:    DefaultCompanyName,
		companyAddress: DefaultCompanyAddress,
		now:            time.Now,
	}
}

// SetCompany overrides the company identity printed on invoices
func (r *Renderer) SetCompany(name, address string) {
	if name != "" {
		r.companyName = name
	}
	if address != "" {
		r.companyAddress = address
	}
}

// Invoice lays out the invoice text lines and writes them as a PDF named
// after the invoice number. Returns the written file path.
func (r *Renderer) Invoice(invoiceNumber, branchID, customerName string, lines []model.InvoiceLine, totals model.InvoiceTotals, paymentLink string) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", err
	}

	rule := strings.Repeat("-", 50)
	textLines := []string{
		r.companyName,
		r.companyAddress,
		"Tax Invoice: " + invoiceNumber,
		"Date: " + r.now().Format("2006-01-02 15:04"),
		"Buyer: " + customerName,
		"Branch: " + branchID,
		rule,
		"Item | Qty | Unit Price | GST% | Line Total",
	}
	for _, line := range lines {
		textLines = append(textLines, fmt.Sprintf("%s | %d | INR %s | %s%% | INR %s",
			line.Item, line.Qty, fixed(line.UnitPrice), money.RatePercent(line.TaxRate), fixed(line.LineTotal)))
	}
	textLines = append(textLines,
		rule,
		"Subtotal: INR "+fixed(totals.Subtotal),
		"GST Total: INR "+fixed(totals.TaxTotal),
		"Discount: INR "+fixed(totals.Discount),
		"Total Due: INR "+fixed(totals.GrandTotal),
		"Payment Link: "+paymentLink,
		"If any correction is needed, reply on WhatsApp with invoice number.",
	)

	path := filepath.Join(r.outputDir, invoiceNumber+".pdf")
	if err := os.WriteFile(path, BuildPDF(textLines), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func escapeText(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, "(", `\(`)
	value = strings.ReplaceAll(value, ")", `\)`)
	return value
}

// BuildPDF serializes text lines into a single-page PDF document.
// Lines start at (50, 790) in 12pt Helvetica with 16pt leading.
func BuildPDF(lines []string) []byte {
	content := []string{"BT", "/F1 12 Tf", "50 790 Td"}
	for i, line := range lines {
		safe := escapeText(line)
		if i > 0 {
			content = append(content, "0 -16 Td")
		}
		content = append(content, "("+safe+") Tj")
	}
	content = append(content, "ET")
	stream := []byte(strings.Join(content, "\n"))

	objects := [][]byte{
		[]byte("1 0 obj << /Type /Catalog /Pages 2 0 R >> endobj\n"),
		[]byte("2 0 obj << /Type /Pages /Kids [3 0 R] /Count 1 >> endobj\n"),
		[]byte("3 0 obj << /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >> endobj\n"),
		[]byte("4 0 obj << /Type /Font /Subtype /Type1 /BaseFont /Helvetica >> endobj\n"),
		append(append([]byte(fmt.Sprintf("5 0 obj << /Length %d >> stream\n", len(stream))), stream...), []byte("\nendstream endobj\n")...),
	}

	var pdf bytes.Buffer
	pdf.WriteString("%PDF-1.4\n")

	offsets := make([]int, 0, len(objects))
	for _, obj := range objects {
		offsets = append(offsets, pdf.Len())
		pdf.Write(obj)
	}

	xrefStart := pdf.Len()
	fmt.Fprintf(&pdf, "xref\n0 %d\n", len(objects)+1)
	pdf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&pdf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&pdf, "trailer << /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefStart)
	return pdf.Bytes()
}
