// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/bucketwise/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for roster and payment storage operations.
// The rotation logic never talks to a Store; callers load a State, let the
// rotation package compute the next one, and write the result back.
type Store interface {
	// CreateMember persists a new member.
	// The member.ID and member.CreatedAt fields are populated if empty.
	CreateMember(ctx context.Context, member *models.Member) error

	// DeactivateMember soft-deletes a member.
	// Returns ErrNotFound if the member does not exist.
	DeactivateMember(ctx context.Context, memberID string) error

	// CountActiveMembers returns the number of active members.
	CountActiveMembers(ctx context.Context) (int, error)

	// LoadState returns the full roster (insertion order) and history (newest first),
	// both read from one consistent snapshot.
	LoadState(ctx context.Context) (models.State, error)

	// ApplyPayment stores updated exemption counts and appends the payment,
	// in a single transaction.
	ApplyPayment(ctx context.Context, changed []models.Member, payment models.Payment) error

	// ListPayments returns the most recent payments, newest first.
	// A limit of zero or less returns all payments.
	ListPayments(ctx context.Context, limit int) ([]models.Payment, error)

	// ResetCycle deletes every payment and stores the exemption counts of
	// roster, in a single transaction. roster is the output of
	// rotation.ResetCycle.
	ResetCycle(ctx context.Context, roster models.Roster) error

	// Close releases any resources held by the store.
	Close() error
}
