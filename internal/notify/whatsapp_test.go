package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/order-billing/internal/money"
	"github.com/rezonia/order-billing/internal/notify"
)

func TestPaymentLink(t *testing.T) {
	link := notify.PaymentLink("INV-2026-00042", money.MustFromString("112.10"))
	assert.Equal(t, "https://pay.razorpay.com/?invoice=INV-2026-00042&amount=11210", link)
}

func TestPaymentLink_EscapesInvoiceNumber(t *testing.T) {
	link := notify.PaymentLink("INV 2026/01", money.MustFromString("1.00"))
	assert.Contains(t, link, "invoice=INV+2026%2F01")
}

func TestWhatsAppSender_Queues(t *testing.T) {
	sender := notify.NewWhatsAppSender()

	receipt, err := sender.SendInvoice("+919999999999", "invoices/INV-2026-00001.pdf", "INV-2026-00001")
	require.NoError(t, err)
	assert.Equal(t, "queued", receipt.Status)
	assert.Equal(t, "+919999999999", receipt.Phone)
	assert.NotEmpty(t, receipt.MessageID)
	assert.Contains(t, receipt.Message, "INV-2026-00001")
}
