// Package notify covers the outbound side of an order: the payment link
// printed on the invoice and the delivery hand-off to the messaging
// channel. The WhatsApp sender here is a queuing stub with the contract a
// real Meta/Twilio integration would implement.
package notify

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rezonia/order-billing/internal/money"
)

// PaymentLink builds the gateway URL for an invoice, with the amount in
// whole paise.
func PaymentLink(invoiceNumber string, grandTotal decimal.Decimal) string {
	return fmt.Sprintf("https://pay.razorpay.com/?invoice=%s&amount=%d",
		url.QueryEscape(invoiceNumber), money.Paise(grandTotal))
}

// DeliveryReceipt reports the outcome of handing an invoice document to
// the messaging channel.
type DeliveryReceipt struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
	Phone     string `json:"phone"`
	Document  string `json:"document"`
	Message   string `json:"message"`
}

// Sender queues invoice documents for delivery to a customer phone
type Sender interface {
	SendInvoice(phone, pdfPath, invoiceNumber string) (*DeliveryReceipt, error)
}

// WhatsAppSender is the stand-in WhatsApp integration. It always queues.
type WhatsAppSender struct{}

// NewWhatsAppSender creates the stub sender
func NewWhatsAppSender() *WhatsAppSender {
	return &WhatsAppSender{}
}

// SendInvoice queues the document and returns a receipt
func (s *WhatsAppSender) SendInvoice(phone, pdfPath, invoiceNumber string) (*DeliveryReceipt, error) {
	return &DeliveryReceipt{
		MessageID: uuid.NewString(),
		Status:    "queued",
		Phone:     phone,
		Document:  pdfPath,
		Message:   fmt.Sprintf("Invoice %s has been generated and queued for WhatsApp delivery.", invoiceNumber),
	}, nil
}
