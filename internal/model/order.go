package model

import "time"

// ChannelType identifies how an order message arrived
type ChannelType string

const (
	ChannelText  ChannelType = "text"
	ChannelVoice ChannelType = "voice"
)

// OrderMessage is an incoming free-form purchase request
type OrderMessage struct {
	CustomerName    string      `json:"customer_name" binding:"required"`
	CustomerPhone   string      `json:"customer_phone" binding:"required"`
	BranchID        string      `json:"branch_id"`
	MessageType     ChannelType `json:"message_type"`
	Message         string      `json:"message"`
	AudioTranscript string      `json:"audio_transcript"`
	PromoCode       string      `json:"promo_code"`
	SpecialNote     string      `json:"special_note"`
}

// Content returns the usable text body for the message's channel.
// Voice messages carry their content in the transcript field.
func (m *OrderMessage) Content() string {
	if m.MessageType == ChannelVoice {
		return m.AudioTranscript
	}
	return m.Message
}

// ParsedItem is one recognized line-item request from a message chunk.
// Name starts as the raw phrase and is rewritten to the canonical catalog
// name by the resolver when a match clears the similarity threshold.
type ParsedItem struct {
	Name    string `json:"name"`
	Qty     int    `json:"qty"`
	Variant string `json:"variant,omitempty"`
	Note    string `json:"note,omitempty"`
}

// State is a stage of the order pipeline
type State string

const (
	StateReceived  State = "received"
	StateParsed    State = "parsed"
	StatePriced    State = "priced"
	StateRendered  State = "rendered"
	StateRecorded  State = "recorded"
	StateDelivered State = "delivered"
)

// InvoiceResult summarizes a fully processed order
type InvoiceResult struct {
	InvoiceNumber string        `json:"invoice_number"`
	BranchID      string        `json:"branch_id"`
	CustomerName  string        `json:"customer_name"`
	Lines         []InvoiceLine `json:"lines"`
	Totals        InvoiceTotals `json:"totals"`
	PDFGenerated  bool          `json:"pdf_generated"`
	PDFPath       string        `json:"pdf_path"`
	PaymentLink   string        `json:"payment_link"`
	CreatedAt     time.Time     `json:"created_at"`
}
