package models

import (
	"time"

	"github.com/google/uuid"
)

// Member represents a person in the bucket rotation.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	// Assigned at creation and never reused.
	ID string

	// Name is the display name of the member.
	// Snapshotted into each Payment at recording time.
	Name string

	// Phone is an optional contact number. Display only.
	Phone string

	// Exemptions is the number of turns this member may skip.
	// Never negative.
	Exemptions int

	// Order is the member's position in the rotation.
	// Ties are broken by roster iteration order.
	Order int

	// IsActive is false once the member has been removed.
	// Inactive members keep their payment history but leave the rotation.
	IsActive bool

	// CreatedAt is the Unix timestamp when the member was added.
	CreatedAt int64
}

// NewMember creates an active member with no exemptions at the given rotation position.
func NewMember(name, phone string, order int) *Member {
	return &Member{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     phone,
		Order:     order,
		IsActive:  true,
		CreatedAt: time.Now().Unix(),
	}
}

// Exempted reports whether the rotation currently skips this member.
func (m Member) Exempted() bool {
	return m.IsActive && m.Exemptions > 0
}
