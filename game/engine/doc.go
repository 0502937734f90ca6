// Package engine provides the core puzzle logic for the Towers of Hanoi player.
//
// The engine package implements:
//   - Move generation via the classical recursive strategy
//   - A playback cursor that steps forward and backward through the solution
//   - Board bookkeeping for the three rods
//   - Puzzle preset validation
//
// Core Types:
//
// The Engine interface defines the playback contract, implemented by
// GameEngine. Solve produces the optimal move sequence for a disk count and
// has no side effects. GameState is the read-only snapshot a renderer polls
// after each call, while GameConfig describes a puzzle preset loaded from JSON.
//
// Usage:
//
//	gameEngine, err := engine.New(3)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	outcome, err := gameEngine.Advance()
//	state := gameEngine.GetState()
//
// Board Model:
//
// Each rod is a stack of disk identities listed top first. Disk identities are
// also their sizes. The board is always a pure function of the disk count and
// the cursor position: replaying the first p moves of the solution from the
// initial board yields the current rods.
//
// The engine has no internal locking and no notion of time. Callers that share
// an engine between goroutines must serialize access, and autoplay is driven
// from outside by repeatedly calling Advance.
package engine
