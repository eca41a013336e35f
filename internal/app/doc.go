// Package app provides the orchestration layer for the roster application.
//
// # Overview
//
// This package wires together configuration, logging, the directory client,
// state management, and the UI. It is the composition root where all
// dependencies are initialized and connected.
//
// # Architecture
//
//  1. Load configuration from ~/.config/roster/config.toml plus environment
//  2. Load user preferences (theme)
//  3. Open the file logger
//  4. Initialize the HTTP client for the directory API
//  5. Create the state.Store that owns all application state
//  6. Start the TUI and block until the user exits or the context cancels
//
// The user list itself is fetched by the UI exactly once at startup. There is
// no background refresh and no retry affordance: a failed load is terminal for
// the session, which keeps the lifecycle a simple pending/succeeded/failed
// progression.
//
// # Error Handling
//
// Fatal errors (returned from Run): invalid configuration, logger setup
// failure, client initialization failure. Everything after the UI starts is
// surfaced inside the UI itself, not returned.
package app
