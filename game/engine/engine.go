package engine

import "fmt"

// Engine provides the main interface for playback operations
type Engine interface {
	// Cursor
	Advance() (StepOutcome, error)
	Retreat() (StepOutcome, error)
	Seek(position int) error
	Reset(clearHistory bool)

	// Configuration
	SetNumDisks(n int) error
	GetConfig() *GameConfig

	// Queries
	GetState() *GameState
	Rods() [NumRods][]Disk
	Position() int
	TotalMoves() int
	IsComplete() bool
	NumDisks() int

	// Solution
	Moves() Solution
	MoveAt(index int) (Move, bool)
}

// GameEngine implements the Engine interface.
//
// Stacks are stored bottom first so a move is a pop and a push at the slice end.
type GameEngine struct {
	config   *GameConfig
	solution Solution
	stacks   [NumRods][]Disk
	position int
	message  string
}

// NewEngine creates a new engine for the provided preset
func NewEngine(config *GameConfig) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	engine := &GameEngine{
		config: withDefaults(config),
	}
	engine.solution = Solve(engine.config.NumDisks)
	engine.resetBoard()

	return engine, nil
}

// New creates an engine for n disks using the built-in preset
func New(n int) (*GameEngine, error) {
	if err := ValidateDiskCount(n); err != nil {
		return nil, err
	}
	return NewEngine(DefaultConfig(n))
}

// Reset restores the initial board and rewinds the cursor. When clearHistory
// is true the solution is discarded and recomputed on next use.
func (e *GameEngine) Reset(clearHistory bool) {
	e.resetBoard()
	if clearHistory {
		e.solution = nil
	}
}

// SetNumDisks recomputes the solution for n disks and resets the board
func (e *GameEngine) SetNumDisks(n int) error {
	if err := ValidateDiskCount(n); err != nil {
		return err
	}

	config := *e.config
	config.NumDisks = n
	e.config = &config
	e.solution = Solve(n)
	e.resetBoard()
	return nil
}

// GetConfig returns the active preset
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// NumDisks returns the current disk count
func (e *GameEngine) NumDisks() int {
	return e.config.NumDisks
}

// Position returns how many moves have been applied from the initial board
func (e *GameEngine) Position() int {
	return e.position
}

// TotalMoves returns the length of the solution
func (e *GameEngine) TotalMoves() int {
	if e.solution == nil {
		return int(MoveCount(e.config.NumDisks))
	}
	return len(e.solution)
}

// IsComplete reports whether every move of the solution has been applied
func (e *GameEngine) IsComplete() bool {
	return e.position == e.TotalMoves()
}

// Rods returns a copy of the board, each rod listed top first
func (e *GameEngine) Rods() [NumRods][]Disk {
	var rods [NumRods][]Disk
	for i, stack := range e.stacks {
		rods[i] = topFirst(stack)
	}
	return rods
}

// Moves returns a copy of the solution
func (e *GameEngine) Moves() Solution {
	e.ensureSolution()
	out := make(Solution, len(e.solution))
	copy(out, e.solution)
	return out
}

// MoveAt returns the move at index, if any
func (e *GameEngine) MoveAt(index int) (Move, bool) {
	e.ensureSolution()
	if index < 0 || index >= len(e.solution) {
		return Move{}, false
	}
	return e.solution[index], true
}

// GetState returns a snapshot of the board and cursor
func (e *GameEngine) GetState() *GameState {
	total := e.TotalMoves()
	state := &GameState{
		Rods:       e.Rods(),
		NumDisks:   e.config.NumDisks,
		Position:   e.position,
		TotalMoves: total,
		Complete:   e.position == total,
		AtStart:    e.position == 0,
		Message:    e.message,
		ConfigName: e.config.Name,
	}

	if m, ok := e.MoveAt(e.position - 1); ok {
		state.LastMove = &m
	}
	if m, ok := e.MoveAt(e.position); ok {
		state.NextMove = &m
	}

	return state
}

// Verify replays the solution up to the cursor and compares it with the board
func (e *GameEngine) Verify() error {
	rods := e.Rods()
	if err := ValidateBoard(rods, e.config.NumDisks); err != nil {
		return err
	}

	e.ensureSolution()
	replay := &GameEngine{config: e.config, solution: e.solution}
	replay.resetBoard()
	for replay.position < e.position {
		if _, err := replay.Advance(); err != nil {
			return err
		}
	}

	expected := replay.Rods()
	for r := range rods {
		if len(rods[r]) != len(expected[r]) {
			return fmt.Errorf("%w: rod %s does not match position %d", ErrBoardCorrupted, Rod(r), e.position)
		}
		for i := range rods[r] {
			if rods[r][i] != expected[r][i] {
				return fmt.Errorf("%w: rod %s does not match position %d", ErrBoardCorrupted, Rod(r), e.position)
			}
		}
	}
	return nil
}

// resetBoard places every disk on rod A and rewinds the cursor
func (e *GameEngine) resetBoard() {
	initial := InitialRods(e.config.NumDisks)
	for i, rod := range initial {
		e.stacks[i] = bottomFirst(rod)
	}
	e.position = 0
	e.message = e.config.Messages.Welcome
}

// ensureSolution recomputes the solution after Reset(true)
func (e *GameEngine) ensureSolution() {
	if e.solution == nil {
		e.solution = Solve(e.config.NumDisks)
	}
}
