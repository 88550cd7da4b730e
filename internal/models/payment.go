package models

import "github.com/shopspring/decimal"

// Payment represents one bucket purchase by a member.
// Payments are never mutated after creation.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	// MemberID is the member who paid.
	MemberID string

	// MemberName is the payer's name at the time of payment.
	// It survives renames and removal of the member.
	MemberName string

	// Amount is the bucket cost charged for this payment.
	Amount decimal.Decimal

	// Timestamp is the Unix time in milliseconds when the payment was recorded.
	Timestamp int64

	// IsOverride marks a payment recorded outside the normal flow.
	// It is shown in history and does not affect the rotation.
	IsOverride bool
}
