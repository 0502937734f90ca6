package service

import (
	"context"
	"errors"
	"time"

	"github.com/wricardo/mcp-training/hanoi/game/autoplay"
	"github.com/wricardo/mcp-training/hanoi/game/engine"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionAlreadyExists = errors.New("session already exists")
	ErrConfigNotFound       = errors.New("configuration not found")
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrInvalidRequest       = errors.New("invalid request")
)

// GameService defines all puzzle operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string, numDisks int) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Playback
	Next(ctx context.Context, sessionID string) (*MoveResult, error)
	Previous(ctx context.Context, sessionID string) (*MoveResult, error)
	Step(ctx context.Context, sessionID string, count int) (*BulkStepResult, error)
	Seek(ctx context.Context, sessionID string, position int) (*engine.GameState, error)
	Reset(ctx context.Context, sessionID string) (*engine.GameState, error)
	SetDisks(ctx context.Context, sessionID string, numDisks int) (*engine.GameState, error)

	// Autoplay
	Play(ctx context.Context, sessionID string, intervalMs int) (*PlaybackStatus, error)
	Pause(ctx context.Context, sessionID string) (*PlaybackStatus, error)

	// Board State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetSolution(ctx context.Context, sessionID string, opts SolutionOptions) (*SolutionResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error

	// Close stops every running autoplay
	Close() error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.GameConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.GameConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// ConfigManager handles puzzle preset loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}

// Notifier receives states produced outside a request, such as autoplay steps
type Notifier interface {
	BroadcastToSession(sessionID string, state *engine.GameState)
}

// Session represents an active puzzle session
type Session struct {
	ID             string
	ConfigID       string
	Engine         *engine.GameEngine
	Config         *engine.GameConfig
	Player         *autoplay.Player
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
