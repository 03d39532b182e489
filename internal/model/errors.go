package model

import (
	"errors"
	"fmt"
)

// RejectionKind classifies terminal pipeline failures so callers can
// branch deterministically on the outcome.
type RejectionKind string

const (
	// RejectionEmptyInput means no text or transcript content was supplied
	RejectionEmptyInput RejectionKind = "empty_input"
	// RejectionNoItems means the message parsed but yielded zero candidate items
	RejectionNoItems RejectionKind = "no_items_recognized"
	// RejectionNothingPriceable means items were recognized syntactically but
	// none matched a catalog entry
	RejectionNothingPriceable RejectionKind = "nothing_priceable"
	// RejectionUnsupportedChannel means the message type is outside the
	// recognized set (text, voice)
	RejectionUnsupportedChannel RejectionKind = "unsupported_channel_type"
)

// OrderError is a terminal rejection of a single order invocation.
// The original message is echoed for manual review where useful.
type OrderError struct {
	Kind    RejectionKind
	Message string
	Input   string
}

func (e *OrderError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("[%s] %s (input: %q)", e.Kind, e.Message, e.Input)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// NewOrderError creates a new order rejection
func NewOrderError(kind RejectionKind, message, input string) *OrderError {
	return &OrderError{Kind: kind, Message: message, Input: input}
}

// RejectionOf returns the rejection kind carried by err, if any
func RejectionOf(err error) (RejectionKind, bool) {
	var oe *OrderError
	if errors.As(err, &oe) {
		return oe.Kind, true
	}
	return "", false
}

// CatalogError reports an invalid catalog definition
type CatalogError struct {
	Entry   string
	Message string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog entry %q: %s", e.Entry, e.Message)
}

// StoreError wraps storage collaborator failures
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
