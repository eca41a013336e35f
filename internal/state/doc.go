// Package state holds the single source of truth for the roster UI: the
// fetched user records, the search term, the current selection, and the fetch
// lifecycle status. Views read immutable snapshots and mutate only through
// the store's named transitions, which keeps the state machine testable in
// isolation from rendering.
package state
