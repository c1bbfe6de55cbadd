// Package ledger holds the in-session list of named quantities.
//
// Entries are identified by their case-folded name and displayed in upper
// case. Every entry in a [Ledger] has a strictly positive value: removing
// quantity down to zero or below deletes the entry. Input arrives as a
// [Pending] value whose [Amount] is explicitly optional, so that incomplete
// form state can be rejected without touching the ledger.
package ledger
