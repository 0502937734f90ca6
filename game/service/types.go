package service

import (
	"time"

	"github.com/wricardo/mcp-training/hanoi/game/engine"
)

// SessionInfo provides information about a puzzle session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	Playing        bool               `json:"playing"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// MoveResult contains the result of a single forward or backward step
type MoveResult struct {
	Success   bool               `json:"success"`
	Outcome   engine.StepOutcome `json:"outcome"`
	Move      *engine.Move       `json:"move,omitempty"`
	Disk      int                `json:"disk,omitempty"`
	GameState *engine.GameState  `json:"game_state"`
	Message   string             `json:"message"`
	Events    []GameEvent        `json:"events,omitempty"`
}

// BulkStepResult contains the result of several steps in one direction
type BulkStepResult struct {
	RequestedSteps int               `json:"requested_steps"`
	StepsExecuted  int               `json:"steps_executed"`
	Direction      string            `json:"direction"` // forward|backward
	Success        bool              `json:"success"`
	StartPosition  int               `json:"start_position"`
	EndPosition    int               `json:"end_position"`
	StoppedReason  string            `json:"stopped_reason,omitempty"`
	StopReasonCode string            `json:"stop_reason_code,omitempty"` // already_complete|already_at_start
	Truncated      bool              `json:"truncated,omitempty"`
	Limit          int               `json:"limit,omitempty"`
	Steps          []StepInfo        `json:"steps,omitempty"`
	GameState      *engine.GameState `json:"game_state"`
	Events         []GameEvent       `json:"events"`
}

// StepInfo is a compact record for each executed step in a bulk call
type StepInfo struct {
	Idx      int         `json:"idx"`
	Move     engine.Move `json:"move"`
	Label    string      `json:"label"`
	Disk     int         `json:"disk"`
	Position int         `json:"position"`
}

// PlaybackStatus reports the autoplay state of a session
type PlaybackStatus struct {
	SessionID  string            `json:"session_id"`
	Playing    bool              `json:"playing"`
	IntervalMs int               `json:"interval_ms"`
	GameState  *engine.GameState `json:"game_state"`
	Events     []GameEvent       `json:"events,omitempty"`
}

// GameEvent represents something that happened during playback
type GameEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // "move", "undo", "complete", "at_start", "reset", "disks_changed", "autoplay_started", "autoplay_stopped"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Position  int       `json:"position"`
}

// SolutionOptions configures solution retrieval
type SolutionOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// SolutionEntry is one move of the solution with its playback status
type SolutionEntry struct {
	Number  int         `json:"number"`
	Move    engine.Move `json:"move"`
	Label   string      `json:"label"`
	Applied bool        `json:"applied"`
}

// SolutionResponse contains a page of the solution
type SolutionResponse struct {
	Moves       []SolutionEntry `json:"moves"`
	TotalMoves  int             `json:"total_moves"`
	Position    int             `json:"position"`
	Page        int             `json:"page"`
	PageSize    int             `json:"page_size"`
	TotalPages  int             `json:"total_pages"`
	HasNext     bool            `json:"has_next"`
	HasPrevious bool            `json:"has_previous"`
}

// ConfigInfo provides information about a puzzle preset
type ConfigInfo struct {
	Filename           string `json:"filename"`
	ConfigID           string `json:"config_id"` // The identifier to use for session creation
	Name               string `json:"name"`      // Display name
	Description        string `json:"description"`
	NumDisks           int    `json:"num_disks"`
	TotalMoves         uint64 `json:"total_moves"`
	AutoplayIntervalMs int    `json:"autoplay_interval_ms"`
}
