// Package rotation decides who buys the next water bucket and applies recorded
// payments to the roster.
//
// The rotation is the cycle of active members sorted by Order. A member holding
// exemptions is passed over when the turn reaches them; the credit is only spent
// once someone further along the cycle pays on schedule.
package rotation

import (
	"sort"

	"github.com/mmynk/bucketwise/internal/models"
)

// ResolveNextPayer returns the member due to buy the next bucket.
// It returns false only when there are no active members.
//
// The scan starts right after the last payer and takes the first member with
// no exemptions. If the last payer is no longer active the scan starts at the
// head of the rotation. If every active member is exempted the head pays.
func ResolveNextPayer(roster models.Roster, history models.History) (models.Member, bool) {
	cycle := activeCycle(roster)
	if len(cycle) == 0 {
		return models.Member{}, false
	}

	last, ok := history.Last()
	if !ok {
		return cycle[0], true
	}

	start := (indexOf(cycle, last.MemberID) + 1) % len(cycle)
	for i := 0; i < len(cycle); i++ {
		candidate := cycle[(start+i)%len(cycle)]
		if candidate.Exemptions == 0 {
			return candidate, true
		}
	}

	return cycle[0], true
}

// ExemptedMembers returns the active members currently holding exemptions.
func ExemptedMembers(roster models.Roster) []models.Member {
	var exempted []models.Member
	for _, m := range roster {
		if m.Exempted() {
			exempted = append(exempted, m)
		}
	}
	return exempted
}

// activeCycle returns active members sorted by Order.
// Equal orders keep roster order.
func activeCycle(roster models.Roster) []models.Member {
	cycle := roster.Active()
	sort.SliceStable(cycle, func(i, j int) bool {
		return cycle[i].Order < cycle[j].Order
	})
	return cycle
}

// indexOf returns the position of the member in the cycle, or -1.
func indexOf(cycle []models.Member, memberID string) int {
	for i, m := range cycle {
		if m.ID == memberID {
			return i
		}
	}
	return -1
}
