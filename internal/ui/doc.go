// Package ui implements the roster terminal interface with Bubble Tea.
//
// The root Model renders a searchable user table and, for a selected user, a
// modal detail overlay with an independently fetched posts list. Input
// routing is layered: help overlay, then the detail overlay (which locks
// background input for the duration of its modal session), then the search
// field, then the table. All domain state lives in the state.Store; the model
// keeps only view concerns (cursor, focus, overlay session, posts sub-view).
package ui
