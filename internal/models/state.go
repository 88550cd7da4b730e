package models

// Roster is every member, active or not, in insertion order.
// Insertion order breaks ties between members sharing an Order value.
type Roster []Member

// Find returns the member with the given ID.
func (r Roster) Find(id string) (Member, bool) {
	for _, m := range r {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}

// Active returns the active members in roster order.
func (r Roster) Active() []Member {
	var active []Member
	for _, m := range r {
		if m.IsActive {
			active = append(active, m)
		}
	}
	return active
}

// Clone returns a copy that can be modified without touching r.
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	copy(out, r)
	return out
}

// History is the payment log, newest first.
// The zero value is an empty history.
type History struct {
	payments []Payment
}

// NewHistory builds a History from payments already ordered newest first.
func NewHistory(newestFirst []Payment) History {
	out := make([]Payment, len(newestFirst))
	copy(out, newestFirst)
	return History{payments: out}
}

// Len returns the number of payments.
func (h History) Len() int {
	return len(h.payments)
}

// Last returns the most recent payment.
func (h History) Last() (Payment, bool) {
	if len(h.payments) == 0 {
		return Payment{}, false
	}
	return h.payments[0], true
}

// Payments returns a copy of the payments, newest first.
func (h History) Payments() []Payment {
	out := make([]Payment, len(h.payments))
	copy(out, h.payments)
	return out
}

// Prepend returns a new History with p at the head. h is left unchanged.
//
// A timestamp older than the current head is raised to the head's timestamp
// so timestamps never decrease in insertion order.
func (h History) Prepend(p Payment) History {
	if last, ok := h.Last(); ok && p.Timestamp < last.Timestamp {
		p.Timestamp = last.Timestamp
	}
	out := make([]Payment, 0, len(h.payments)+1)
	out = append(out, p)
	out = append(out, h.payments...)
	return History{payments: out}
}

// State is the complete persisted dataset.
type State struct {
	Roster  Roster
	History History
}
