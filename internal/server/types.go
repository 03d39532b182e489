package server

import (
	"github.com/rezonia/order-billing/internal/model"
	"github.com/rezonia/order-billing/internal/store"
)

// OrderRequest is the JSON payload for POST /api/v1/orders
type OrderRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	BranchID        string `json:"branch_id"`
	MessageType     string `json:"message_type"`
	Message         string `json:"message"`
	AudioTranscript string `json:"audio_transcript"`
	PromoCode       string `json:"promo_code"`
	SpecialNote     string `json:"special_note"`
}

// OrderResponse is the success response for order processing
type OrderResponse struct {
	Invoice *model.InvoiceResult `json:"invoice"`
}

// RevisionRequest is the payload for revision notes
type RevisionRequest struct {
	Message string `json:"message" binding:"required"`
}

// SummaryResponse reports today's order volume
type SummaryResponse struct {
	BranchID string        `json:"branch_id,omitempty"`
	Summary  store.Summary `json:"summary"`
}

// InventoryResponse reports tracked stock levels
type InventoryResponse struct {
	Inventory map[string]int `json:"inventory"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Input string `json:"input,omitempty"`
}
