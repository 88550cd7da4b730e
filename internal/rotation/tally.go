package rotation

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/bucketwise/internal/models"
)

// MemberTally summarises one member's payments.
type MemberTally struct {
	MemberID   string
	MemberName string
	Active     bool
	Payments   int
	Overrides  int
	TotalPaid  decimal.Decimal
	LastPaidAt int64 // Unix ms, zero if never paid
}

// Tally aggregates payments per member.
//
// Roster members come first in roster order, including those who never paid.
// Payers missing from the roster follow in order of their most recent payment,
// named after the snapshot on that payment.
func Tally(roster models.Roster, history models.History) []MemberTally {
	byID := make(map[string]*MemberTally, len(roster))
	order := make([]string, 0, len(roster))

	for _, m := range roster {
		if _, seen := byID[m.ID]; seen {
			continue
		}
		byID[m.ID] = &MemberTally{
			MemberID:   m.ID,
			MemberName: m.Name,
			Active:     m.IsActive,
			TotalPaid:  decimal.Zero,
		}
		order = append(order, m.ID)
	}

	// History is newest first, so the first payment seen per member is the latest.
	for _, p := range history.Payments() {
		t, exists := byID[p.MemberID]
		if !exists {
			t = &MemberTally{
				MemberID:   p.MemberID,
				MemberName: p.MemberName,
				TotalPaid:  decimal.Zero,
			}
			byID[p.MemberID] = t
			order = append(order, p.MemberID)
		}
		if t.Payments == 0 {
			t.LastPaidAt = p.Timestamp
		}
		t.Payments++
		t.TotalPaid = t.TotalPaid.Add(p.Amount)
		if p.IsOverride {
			t.Overrides++
		}
	}

	tallies := make([]MemberTally, 0, len(order))
	for _, id := range order {
		tallies = append(tallies, *byID[id])
	}
	return tallies
}

// TotalCollected returns the sum of all payment amounts.
func TotalCollected(history models.History) decimal.Decimal {
	total := decimal.Zero
	for _, p := range history.Payments() {
		total = total.Add(p.Amount)
	}
	return total
}
