// Package session provides session management for the Towers of Hanoi player.
//
// The session package implements:
//   - Thread-safe, in-memory session storage and retrieval
//   - Unique session ID generation
//   - Idle session expiry
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// Each service.Session owns its own engine, a copy of its preset and an
// autoplay player, plus creation and last access times.
//
// Session Identifiers:
//
// Generated IDs are 4 lowercase hex characters from crypto/rand. Lookups are
// case-insensitive, so "A1B2" and "a1b2" name the same session.
//
// Concurrency:
//
// The manager guards its map with a RWMutex. It does not guard the engines it
// hands out; the service layer serializes engine calls.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Drop sessions idle for a day, stopping their autoplay
//	removed := manager.CleanupExpiredSessions(24 * time.Hour)
//
// Sessions are never written to disk. Restarting the process drops them.
package session
