// Package models defines the core domain models for bucketwise.
//
// # Models
//
//   - Member: A person taking part in the bucket rotation
//   - Payment: One recorded bucket purchase, with a snapshot of the payer's name
//   - Roster: All members, active and inactive, in insertion order
//   - History: All payments, newest first
//   - State: A Roster and a History together; the whole persisted dataset
//
// # Design Principles
//
// 1. **Values, not singletons**: State is passed explicitly between the rotation
// logic and the storage layer; nothing holds it globally
// 2. **Soft delete**: Members are deactivated, never removed, so old payments keep
// pointing at a real member
// 3. **Newest-first history**: History only grows at the head through Prepend
// 4. **Avoid circular references**: Payments reference members by ID string
package models
