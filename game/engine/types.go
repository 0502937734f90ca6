package engine

import "fmt"

// Rod identifies one of the three pegs
type Rod int

const (
	RodA Rod = iota
	RodB
	RodC

	// NumRods is the number of pegs on the board
	NumRods = 3
)

// Validation constants
const (
	MinDisks     = 1
	MaxDisks     = 20
	DefaultDisks = 3

	DefaultAutoplayIntervalMs = 300
	MinAutoplayIntervalMs     = 10
	MaxAutoplayIntervalMs     = 60000
	MaxBulkSteps              = 1024
)

// String returns the conventional A/B/C label
func (r Rod) String() string {
	switch r {
	case RodA:
		return "A"
	case RodB:
		return "B"
	case RodC:
		return "C"
	}
	return fmt.Sprintf("Rod(%d)", int(r))
}

// Valid reports whether r names one of the three rods
func (r Rod) Valid() bool {
	return r >= RodA && r <= RodC
}

// Disk is a puzzle piece; its identity is also its size
type Disk = int

// Move transfers the top disk of From onto To
type Move struct {
	From Rod `json:"from"`
	To   Rod `json:"to"`
}

// String renders the move as "A->C"
func (m Move) String() string {
	return m.From.String() + "->" + m.To.String()
}

// Reverse returns the move that undoes m
func (m Move) Reverse() Move {
	return Move{From: m.To, To: m.From}
}

// Solution is the ordered list of moves that solves a puzzle
type Solution []Move

// StepOutcome reports what a single cursor step did
type StepOutcome string

const (
	StepApplied         StepOutcome = "applied"
	StepAlreadyComplete StepOutcome = "already_complete"
	StepAlreadyAtStart  StepOutcome = "already_at_start"
)

// GameConfig represents a puzzle preset loaded from JSON
type GameConfig struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	NumDisks           int    `json:"num_disks"`
	AutoplayIntervalMs int    `json:"autoplay_interval_ms"`
	Messages           struct {
		Welcome    string `json:"welcome"`
		MoveStatus string `json:"move_status"`
		Complete   string `json:"complete"`
		AtStart    string `json:"at_start"`
	} `json:"messages"`
}

// GameState is a snapshot of the board and cursor
type GameState struct {
	Rods       [NumRods][]Disk `json:"rods"`
	NumDisks   int             `json:"num_disks"`
	Position   int             `json:"position"`
	TotalMoves int             `json:"total_moves"`
	Complete   bool            `json:"complete"`
	AtStart    bool            `json:"at_start"`
	LastMove   *Move           `json:"last_move,omitempty"`
	NextMove   *Move           `json:"next_move,omitempty"`
	Message    string          `json:"message"`
	ConfigName string          `json:"config_name"`
}
