package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/davrell/roster/internal/directory"
	"github.com/davrell/roster/internal/filter"
)

// Status describes the user-list fetch lifecycle.
type Status int

const (
	// StatusPending is the initial state while the load is in flight.
	StatusPending Status = iota
	// StatusSucceeded is terminal; the record set is whatever the fetch returned.
	StatusSucceeded
	// StatusFailed is terminal; FetchErr carries the reason and records stay empty.
	StatusFailed
)

// Snapshot is an immutable view of the application state.
type Snapshot struct {
	Users      []directory.User
	Search     string
	SelectedID int // 0 when nothing is selected
	Status     Status
	FetchErr   error
	LoadedAt   time.Time
}

// HasSelection reports whether a record is currently selected.
func (s Snapshot) HasSelection() bool {
	return s.SelectedID != 0
}

// Selected returns the selected user, if any.
func (s Snapshot) Selected() (directory.User, bool) {
	if s.SelectedID == 0 {
		return directory.User{}, false
	}
	for _, u := range s.Users {
		if u.ID == s.SelectedID {
			return u, true
		}
	}
	return directory.User{}, false
}

// Filtered returns the users matching the current search term. It is derived
// on every read, never stored.
func (s Snapshot) Filtered() []directory.User {
	return filter.Apply(s.Users, s.Search)
}

// Store owns the authoritative record set, selection, search term, and fetch
// status. All mutation goes through named transitions.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// NewStore returns a store in the pending state with no records.
func NewStore() *Store {
	return &Store{snapshot: Snapshot{Status: StatusPending}}
}

// ResolveUsers completes the user-list fetch. Both outcomes are terminal:
// once resolved, further calls are ignored. On failure the record set stays
// empty and err is retained as the reason.
func (s *Store) ResolveUsers(users []directory.User, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Status != StatusPending {
		return
	}
	if err != nil {
		s.snapshot.Status = StatusFailed
		s.snapshot.FetchErr = err
		return
	}
	s.snapshot.Status = StatusSucceeded
	s.snapshot.Users = cloneUsers(users)
	s.snapshot.LoadedAt = time.Now()
}

// Select marks the user with the given id as selected. Selecting an id that
// is not in the record set is a no-op; reselecting the current id is
// idempotent.
func (s *Store) Select(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.snapshot.Users {
		if u.ID == id {
			s.snapshot.SelectedID = id
			return
		}
	}
}

// Deselect clears the selection. Always succeeds.
func (s *Store) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.SelectedID = 0
}

// Delete removes the user with the given id from the record set. Absent ids
// are a no-op. Deleting the selected user clears the selection so the detail
// overlay never shows a record that is no longer in the working set. Deletion
// is local only; nothing is sent back to the data source.
func (s *Store) Delete(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.snapshot.Users {
		if u.ID == id {
			s.snapshot.Users = append(s.snapshot.Users[:i:i], s.snapshot.Users[i+1:]...)
			if s.snapshot.SelectedID == id {
				s.snapshot.SelectedID = 0
			}
			return
		}
	}
}

// SetSearch replaces the search term verbatim. No trimming, no debounce.
func (s *Store) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Search = term
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Users = cloneUsers(s.snapshot.Users)
	if s.snapshot.FetchErr != nil {
		snap.FetchErr = fmt.Errorf("%w", s.snapshot.FetchErr)
	}
	return snap
}

func cloneUsers(users []directory.User) []directory.User {
	if len(users) == 0 {
		return nil
	}
	dup := make([]directory.User, len(users))
	copy(dup, users)
	return dup
}
