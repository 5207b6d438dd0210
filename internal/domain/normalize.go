package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeStatus prepares a raw status string from storage for comparison:
// trims whitespace and lowercases. Empty input stays empty.
func NormalizeStatus(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ParseQuoteStatus converts a stored status into a QuoteStatus.
// Unknown values are returned as-is so they fail every status filter.
func ParseQuoteStatus(raw string) QuoteStatus {
	return QuoteStatus(NormalizeStatus(raw))
}

// ParseAcceptanceStatus converts a nullable stored acceptance status.
// NULL stays nil.
func ParseAcceptanceStatus(raw *string) *AcceptanceStatus {
	if raw == nil {
		return nil
	}
	s := AcceptanceStatus(NormalizeStatus(*raw))
	return &s
}

// ParseInvoiceStatus converts a nullable stored invoice status.
// NULL is treated as draft.
func ParseInvoiceStatus(raw *string) InvoiceStatus {
	if raw == nil || NormalizeStatus(*raw) == "" {
		return InvoiceStatusDraft
	}
	return InvoiceStatus(NormalizeStatus(*raw))
}

// AmountOrZero returns the amount or zero when it is missing.
func AmountOrZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}
