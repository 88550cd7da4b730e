package rotation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/bucketwise/internal/models"
)

func TestTally(t *testing.T) {
	roster := models.Roster{member("A", 0, 0), inactive(member("B", 1, 0)), member("C", 2, 0)}

	var history models.History
	history = history.Prepend(models.Payment{ID: "1", MemberID: "A", MemberName: "A", Amount: decimal.NewFromInt(20), Timestamp: 10})
	history = history.Prepend(models.Payment{ID: "2", MemberID: "B", MemberName: "B", Amount: decimal.NewFromInt(20), Timestamp: 20})
	history = history.Prepend(models.Payment{ID: "3", MemberID: "gone", MemberName: "Old Name", Amount: decimal.NewFromInt(15), Timestamp: 30})
	history = history.Prepend(models.Payment{ID: "4", MemberID: "A", MemberName: "A", Amount: decimal.RequireFromString("20.50"), Timestamp: 40, IsOverride: true})

	tallies := Tally(roster, history)

	if len(tallies) != 4 {
		t.Fatalf("expected 4 tallies, got %d", len(tallies))
	}

	wantOrder := []string{"A", "B", "C", "gone"}
	for i, id := range wantOrder {
		if tallies[i].MemberID != id {
			t.Errorf("tallies[%d] = %s, want %s", i, tallies[i].MemberID, id)
		}
	}

	a := tallies[0]
	if a.Payments != 2 || a.Overrides != 1 {
		t.Errorf("A payments/overrides = %d/%d, want 2/1", a.Payments, a.Overrides)
	}
	if !a.TotalPaid.Equal(decimal.RequireFromString("40.5")) {
		t.Errorf("A total = %s, want 40.5", a.TotalPaid)
	}
	if a.LastPaidAt != 40 {
		t.Errorf("A last paid = %d, want 40", a.LastPaidAt)
	}

	if tallies[1].Active {
		t.Error("B should be reported inactive")
	}
	if tallies[2].Payments != 0 || !tallies[2].TotalPaid.IsZero() || tallies[2].LastPaidAt != 0 {
		t.Errorf("C should have no payments: %+v", tallies[2])
	}
	if tallies[3].MemberName != "Old Name" {
		t.Errorf("unknown payer name = %q, want snapshot name", tallies[3].MemberName)
	}

	if got := TotalCollected(history); !got.Equal(decimal.RequireFromString("75.5")) {
		t.Errorf("TotalCollected = %s, want 75.5", got)
	}
}

func TestTally_Empty(t *testing.T) {
	if got := Tally(nil, models.History{}); len(got) != 0 {
		t.Errorf("expected no tallies, got %d", len(got))
	}
	if !TotalCollected(models.History{}).IsZero() {
		t.Error("expected zero total")
	}
}
