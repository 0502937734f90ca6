// Package service provides the business logic layer for the Towers of Hanoi player.
//
// The service package implements:
//   - Multi-session management, one engine per session
//   - Playback: next, previous, bulk step, seek and reset
//   - Disk count changes that recompute the solution
//   - Autoplay with a per-session player
//   - Paginated solution listings
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level puzzle operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages preset loading and validation.
// Notifier receives states produced by autoplay so transports can push them.
//
// Concurrency:
//
// An engine is not safe for concurrent use. The service holds one mutex around
// every engine call, and autoplay steps take the same mutex, so a manual step
// and an autoplay tick never interleave.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	info, err := gameService.CreateSession(ctx, "classic", 0)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Next(ctx, info.ID)
package service
