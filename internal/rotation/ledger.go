package rotation

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/bucketwise/internal/models"
)

var (
	// ErrMemberNotFound is returned when a payment names a member missing from the roster.
	ErrMemberNotFound = errors.New("member not found")
	// ErrInvalidCost is returned when the configured bucket cost is negative.
	ErrInvalidCost = errors.New("bucket cost must not be negative")
)

// DefaultBucketCost is the price of one water bucket.
var DefaultBucketCost = decimal.NewFromInt(20)

// Kind classifies a payment relative to the rotation.
type Kind string

const (
	// KindScheduled is a payment by the member the rotation picked.
	KindScheduled Kind = "scheduled"
	// KindConsecutive is a repeat payment by the previous payer.
	KindConsecutive Kind = "consecutive"
	// KindVoluntary is a payment made ahead of the scheduled member.
	KindVoluntary Kind = "voluntary"
	// KindUnscheduled is a payment when nobody was scheduled (no active members).
	KindUnscheduled Kind = "unscheduled"
)

// IDProvider issues payment identifiers.
type IDProvider interface {
	NewID() (string, error)
}

type uuidProvider struct{}

// NewUUIDProvider constructs an IDProvider that issues random UUIDs.
func NewUUIDProvider() IDProvider {
	return uuidProvider{}
}

func (uuidProvider) NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return value.String(), nil
}

// LedgerConfig configures a Ledger. Zero fields fall back to defaults.
type LedgerConfig struct {
	BucketCost decimal.Decimal
	Clock      func() time.Time
	IDProvider IDProvider
}

// Ledger applies payments to a State.
type Ledger struct {
	cost       decimal.Decimal
	clock      func() time.Time
	idProvider IDProvider
}

// NewLedger creates a Ledger. A zero BucketCost means DefaultBucketCost.
func NewLedger(cfg LedgerConfig) (*Ledger, error) {
	cost := cfg.BucketCost
	if cost.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCost, cost)
	}
	if cost.IsZero() {
		cost = DefaultBucketCost
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	idProvider := cfg.IDProvider
	if idProvider == nil {
		idProvider = NewUUIDProvider()
	}

	return &Ledger{cost: cost, clock: clock, idProvider: idProvider}, nil
}

// BucketCost returns the amount charged per payment.
func (l *Ledger) BucketCost() decimal.Decimal {
	return l.cost
}

// Outcome is the result of recording one payment.
type Outcome struct {
	// State is the roster with exemptions adjusted and the payment prepended.
	State models.State

	// Payment is the new payment record.
	Payment models.Payment

	// ScheduledPayerID is who the rotation expected before the payment.
	// Empty when no member was scheduled.
	ScheduledPayerID string

	// Kind classifies the payment.
	Kind Kind

	// Granted is true when the payer earned an exemption.
	Granted bool

	// Consumed lists members who spent one exemption, in walk order.
	Consumed []string
}

// ChangedMembers returns the members whose exemptions changed, as they are in
// the new state.
func (o Outcome) ChangedMembers() []models.Member {
	ids := make([]string, 0, len(o.Consumed)+1)
	if o.Granted {
		ids = append(ids, o.Payment.MemberID)
	}
	ids = append(ids, o.Consumed...)

	changed := make([]models.Member, 0, len(ids))
	for _, id := range ids {
		if m, ok := o.State.Roster.Find(id); ok {
			changed = append(changed, m)
		}
	}
	return changed
}

// RecordPayment applies a payment by payerID to state and returns the new state.
// The input state is never modified.
//
// The payer earns one exemption when they also paid last time, or when someone
// else was scheduled. When the payer is the scheduled member, every member
// between the last payer and the payer who holds an exemption spends one.
// Both rules read the state as it was before the payment.
func (l *Ledger) RecordPayment(state models.State, payerID string, isOverride bool) (Outcome, error) {
	payer, ok := state.Roster.Find(payerID)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %s", ErrMemberNotFound, payerID)
	}

	last, hasLast := state.History.Last()
	scheduled, hasScheduled := ResolveNextPayer(state.Roster, state.History)

	consecutive := hasLast && last.MemberID == payerID
	voluntary := hasScheduled && scheduled.ID != payerID
	onSchedule := hasScheduled && scheduled.ID == payerID

	roster := state.Roster.Clone()
	outcome := Outcome{Kind: classify(hasScheduled, consecutive, voluntary)}
	if hasScheduled {
		outcome.ScheduledPayerID = scheduled.ID
	}

	if consecutive || voluntary {
		adjustExemptions(roster, payerID, 1)
		outcome.Granted = true
	}

	if onSchedule {
		cycle := activeCycle(state.Roster)
		lastIdx := -1
		if hasLast {
			lastIdx = indexOf(cycle, last.MemberID)
		}
		for i := (lastIdx + 1) % len(cycle); cycle[i].ID != payerID; i = (i + 1) % len(cycle) {
			if cycle[i].Exemptions > 0 {
				adjustExemptions(roster, cycle[i].ID, -1)
				outcome.Consumed = append(outcome.Consumed, cycle[i].ID)
			}
		}
	}

	paymentID, err := l.idProvider.NewID()
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to generate payment id: %w", err)
	}

	outcome.State = models.State{
		Roster: roster,
		History: state.History.Prepend(models.Payment{
			ID:         paymentID,
			MemberID:   payer.ID,
			MemberName: payer.Name,
			Amount:     l.cost,
			Timestamp:  l.clock().UnixMilli(),
			IsOverride: isOverride,
		}),
	}
	outcome.Payment, _ = outcome.State.History.Last()

	return outcome, nil
}

// ResetCycle clears the payment history and zeroes every member's exemptions,
// active or not.
func ResetCycle(state models.State) models.State {
	roster := state.Roster.Clone()
	for i := range roster {
		roster[i].Exemptions = 0
	}
	return models.State{Roster: roster}
}

func adjustExemptions(roster models.Roster, memberID string, delta int) {
	for i := range roster {
		if roster[i].ID == memberID {
			roster[i].Exemptions += delta
			if roster[i].Exemptions < 0 {
				roster[i].Exemptions = 0
			}
			return
		}
	}
}

func classify(hasScheduled, consecutive, voluntary bool) Kind {
	switch {
	case consecutive:
		return KindConsecutive
	case voluntary:
		return KindVoluntary
	case hasScheduled:
		return KindScheduled
	default:
		return KindUnscheduled
	}
}
