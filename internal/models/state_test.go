package models

import "testing"

func TestHistoryPrepend(t *testing.T) {
	var h History
	if _, ok := h.Last(); ok {
		t.Fatal("empty history should have no last payment")
	}

	h1 := h.Prepend(Payment{ID: "1", Timestamp: 100})
	h2 := h1.Prepend(Payment{ID: "2", Timestamp: 50})

	if h.Len() != 0 || h1.Len() != 1 {
		t.Error("Prepend must not modify the receiver")
	}

	last, ok := h2.Last()
	if !ok || last.ID != "2" {
		t.Fatalf("Last() = %+v, want payment 2", last)
	}
	if last.Timestamp != 100 {
		t.Errorf("timestamp = %d, want clamped to 100", last.Timestamp)
	}

	payments := h2.Payments()
	payments[0].ID = "mutated"
	if again, _ := h2.Last(); again.ID != "2" {
		t.Error("Payments() must return a copy")
	}
}

func TestRoster(t *testing.T) {
	roster := Roster{
		{ID: "a", IsActive: true, Exemptions: 1},
		{ID: "b", IsActive: false},
		{ID: "c", IsActive: true},
	}

	if _, ok := roster.Find("b"); !ok {
		t.Error("Find should return inactive members")
	}
	if _, ok := roster.Find("z"); ok {
		t.Error("Find should miss unknown ids")
	}
	if got := len(roster.Active()); got != 2 {
		t.Errorf("Active() returned %d members, want 2", got)
	}

	clone := roster.Clone()
	clone[0].Exemptions = 5
	if roster[0].Exemptions != 1 {
		t.Error("Clone must not share storage")
	}

	if !roster[0].Exempted() || roster[2].Exempted() {
		t.Error("Exempted() mismatch")
	}
}

func TestNewMember(t *testing.T) {
	m := NewMember("Asha", "555-0101", 3)
	if m.ID == "" {
		t.Error("expected generated ID")
	}
	if !m.IsActive || m.Exemptions != 0 || m.Order != 3 {
		t.Errorf("unexpected member: %+v", m)
	}
	if m.CreatedAt == 0 {
		t.Error("expected CreatedAt to be set")
	}
}
