// Package billinglib provides a public API for turning free-form order
// messages into priced, tax-compliant invoices.
//
// Example usage:
//
//	p := billinglib.NewDefaultProcessor()
//	result, err := p.Process(&billinglib.OrderMessage{
//	    CustomerName:  "Acme Retail",
//	    CustomerPhone: "+919999999999",
//	    Message:       "please dispatch 3 thermal paper roll, 1 packing tape",
//	    PromoCode:     "BULK5",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.InvoiceNumber, result.Totals.GrandTotal)
package billinglib

import (
	"github.com/rezonia/order-billing/internal/model"
)

// Re-export core types for the public API
type (
	OrderMessage  = model.OrderMessage
	ParsedItem    = model.ParsedItem
	InvoiceLine   = model.InvoiceLine
	InvoiceTotals = model.InvoiceTotals
	InvoiceResult = model.InvoiceResult
	ChannelType   = model.ChannelType
	RejectionKind = model.RejectionKind
	OrderError    = model.OrderError
)

// Re-export channel types
const (
	ChannelText  = model.ChannelText
	ChannelVoice = model.ChannelVoice
)

// Re-export rejection kinds
const (
	RejectionEmptyInput         = model.RejectionEmptyInput
	RejectionNoItems            = model.RejectionNoItems
	RejectionNothingPriceable   = model.RejectionNothingPriceable
	RejectionUnsupportedChannel = model.RejectionUnsupportedChannel
)

// RejectionOf returns the rejection kind carried by err, if any
var RejectionOf = model.RejectionOf
