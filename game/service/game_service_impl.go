package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wricardo/mcp-training/hanoi/game/autoplay"
	"github.com/wricardo/mcp-training/hanoi/game/engine"
)

const (
	defaultSolutionPageSize = 20
	maxSolutionPageSize     = 100
)

// Option configures a game service
type Option func(*gameServiceImpl)

// WithNotifier registers the receiver of autoplay states
func WithNotifier(n Notifier) Option {
	return func(s *gameServiceImpl) {
		s.notifier = n
	}
}

// WithAutoplayInterval sets the interval used when neither the request nor the preset names one
func WithAutoplayInterval(d time.Duration) Option {
	return func(s *gameServiceImpl) {
		if d > 0 {
			s.defaultInterval = d
		}
	}
}

// gameServiceImpl implements the GameService interface.
//
// mu serializes every engine call, including the ones made by autoplay goroutines.
type gameServiceImpl struct {
	sessions        SessionManager
	configs         ConfigManager
	notifier        Notifier
	defaultInterval time.Duration
	mu              sync.Mutex

	baseCtx context.Context
	cancel  context.CancelFunc
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager, opts ...Option) GameService {
	ctx, cancel := context.WithCancel(context.Background())
	s := &gameServiceImpl{
		sessions:        sessions,
		configs:         configs,
		defaultInterval: time.Duration(engine.DefaultAutoplayIntervalMs) * time.Millisecond,
		baseCtx:         ctx,
		cancel:          cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetNotifier replaces the notifier after construction. Stdio mode only
// creates a hub once it starts its internal HTTP server.
func SetNotifier(svc GameService, n Notifier) {
	if s, ok := svc.(*gameServiceImpl); ok {
		s.mu.Lock()
		s.notifier = n
		s.mu.Unlock()
	}
}

// CreateSession creates a new puzzle session. numDisks overrides the preset when positive.
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string, numDisks int) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				available, listErr := s.configs.ListConfigs()
				if listErr == nil && len(available) > 0 {
					ids := make([]string, 0, len(available))
					for _, cfg := range available {
						ids = append(ids, cfg.ConfigID)
					}
					return nil, fmt.Errorf("%w: '%s' (available: %v)", ErrConfigNotFound, configName, ids)
				}
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	if numDisks != 0 {
		if err := engine.ValidateDiskCount(numDisks); err != nil {
			return nil, err
		}
		override := *config
		override.NumDisks = numDisks
		config = &override
	}

	// Let session manager generate the ID
	sess, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}
	sess.ConfigID = configID

	log.Printf("[SESSION] created %s config=%s disks=%d", sess.ID, configID, config.NumDisks)
	return s.sessionInfo(sess), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return s.sessionInfo(sess), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}
	return result, nil
}

// DeleteSession stops autoplay and removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if sess.Player != nil {
		sess.Player.Stop()
	}
	return s.sessions.Delete(sessionID)
}

// Next applies the next move of the solution
func (s *gameServiceImpl) Next(ctx context.Context, sessionID string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	move, hasMove := sess.Engine.MoveAt(sess.Engine.Position())
	outcome, err := sess.Engine.Advance()
	if err != nil {
		return nil, err
	}

	state := sess.Engine.GetState()
	result := &MoveResult{
		Success:   outcome == engine.StepApplied,
		Outcome:   outcome,
		GameState: state,
		Message:   state.Message,
	}

	if outcome == engine.StepApplied && hasMove {
		result.Move = &move
		result.Disk = topDisk(state, move.To)
		result.Events = append(result.Events, newEvent("move", fmt.Sprintf("Moved disk %d %s", result.Disk, move), state.Position))
		if state.Complete {
			result.Events = append(result.Events, newEvent("complete", state.Message, state.Position))
		}
	} else {
		result.Events = append(result.Events, newEvent("complete", state.Message, state.Position))
	}

	return result, nil
}

// Previous undoes the most recently applied move
func (s *gameServiceImpl) Previous(ctx context.Context, sessionID string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	move, hasMove := sess.Engine.MoveAt(sess.Engine.Position() - 1)
	outcome, err := sess.Engine.Retreat()
	if err != nil {
		return nil, err
	}

	state := sess.Engine.GetState()
	result := &MoveResult{
		Success:   outcome == engine.StepApplied,
		Outcome:   outcome,
		GameState: state,
		Message:   state.Message,
	}

	if outcome == engine.StepApplied && hasMove {
		undone := move.Reverse()
		result.Move = &undone
		result.Disk = topDisk(state, undone.To)
		result.Events = append(result.Events, newEvent("undo", fmt.Sprintf("Undid %s", move), state.Position))
	} else {
		result.Events = append(result.Events, newEvent("at_start", state.Message, state.Position))
	}

	return result, nil
}

// Step moves the cursor |count| times, forward when positive and backward when
// negative. It stops early at either end of the solution.
func (s *gameServiceImpl) Step(ctx context.Context, sessionID string, count int) (*BulkStepResult, error) {
	if count == 0 {
		return nil, fmt.Errorf("%w: count must not be zero", ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	direction := "forward"
	requested := count
	if count < 0 {
		direction = "backward"
		requested = -count
	}

	result := &BulkStepResult{
		RequestedSteps: requested,
		Direction:      direction,
		Success:        true,
		StartPosition:  sess.Engine.Position(),
		Events:         make([]GameEvent, 0),
	}

	steps := requested
	if steps > engine.MaxBulkSteps {
		result.Truncated = true
		result.Limit = engine.MaxBulkSteps
		steps = engine.MaxBulkSteps
	}

	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var (
			move    engine.Move
			applied engine.Move
			outcome engine.StepOutcome
		)
		if direction == "forward" {
			move, _ = sess.Engine.MoveAt(sess.Engine.Position())
			applied = move
			outcome, err = sess.Engine.Advance()
		} else {
			move, _ = sess.Engine.MoveAt(sess.Engine.Position() - 1)
			applied = move.Reverse()
			outcome, err = sess.Engine.Retreat()
		}
		if err != nil {
			return nil, err
		}

		if outcome != engine.StepApplied {
			result.StopReasonCode = string(outcome)
			result.StoppedReason = sess.Engine.GetState().Message
			break
		}

		result.StepsExecuted++
		state := sess.Engine.GetState()
		result.Steps = append(result.Steps, StepInfo{
			Idx:      i + 1,
			Move:     applied,
			Label:    applied.String(),
			Disk:     topDisk(state, applied.To),
			Position: state.Position,
		})
	}

	result.GameState = sess.Engine.GetState()
	result.EndPosition = result.GameState.Position

	if result.StepsExecuted > 0 {
		eventType := "move"
		if direction == "backward" {
			eventType = "undo"
		}
		result.Events = append(result.Events, newEvent(eventType,
			fmt.Sprintf("Stepped %s %d move(s) to position %d", direction, result.StepsExecuted, result.EndPosition),
			result.EndPosition))
	}
	if result.GameState.Complete && direction == "forward" {
		result.Events = append(result.Events, newEvent("complete", result.GameState.Message, result.EndPosition))
	}
	if result.GameState.AtStart && direction == "backward" {
		result.Events = append(result.Events, newEvent("at_start", result.GameState.Message, result.EndPosition))
	}

	return result, nil
}

// Seek moves the cursor to an absolute position
func (s *gameServiceImpl) Seek(ctx context.Context, sessionID string, position int) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	total := sess.Engine.TotalMoves()
	if position < 0 || position > total {
		return nil, fmt.Errorf("%w: position must be between 0 and %d, got %d", ErrInvalidRequest, total, position)
	}
	if err := sess.Engine.Seek(position); err != nil {
		return nil, err
	}
	return sess.Engine.GetState(), nil
}

// Reset stops autoplay and rewinds the board, keeping the solution
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Player != nil {
		sess.Player.Stop()
	}
	sess.Engine.Reset(false)
	return sess.Engine.GetState(), nil
}

// SetDisks stops autoplay, recomputes the solution for n disks and resets the board
func (s *gameServiceImpl) SetDisks(ctx context.Context, sessionID string, numDisks int) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Player != nil {
		sess.Player.Stop()
	}
	if err := sess.Engine.SetNumDisks(numDisks); err != nil {
		return nil, err
	}
	sess.Config = sess.Engine.GetConfig()

	log.Printf("[DISKS] session=%s disks=%d moves=%d", sessionID, numDisks, sess.Engine.TotalMoves())
	return sess.Engine.GetState(), nil
}

// Play starts autoplay. A completed session is reset first.
// intervalMs of zero uses the preset interval, then the service default.
func (s *gameServiceImpl) Play(ctx context.Context, sessionID string, intervalMs int) (*PlaybackStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Player == nil {
		sess.Player = autoplay.NewPlayer()
	}

	if intervalMs != 0 && (intervalMs < engine.MinAutoplayIntervalMs || intervalMs > engine.MaxAutoplayIntervalMs) {
		return nil, fmt.Errorf("%w: interval_ms must be between %d and %d, got %d",
			ErrInvalidRequest, engine.MinAutoplayIntervalMs, engine.MaxAutoplayIntervalMs, intervalMs)
	}

	status := &PlaybackStatus{SessionID: sess.ID}

	if sess.Player.Running() {
		status.Playing = true
		status.IntervalMs = int(sess.Player.Interval() / time.Millisecond)
		status.GameState = sess.Engine.GetState()
		return status, nil
	}

	if sess.Engine.IsComplete() {
		sess.Engine.Reset(false)
		status.Events = append(status.Events, newEvent("reset", sess.Engine.GetState().Message, 0))
	}

	interval := s.intervalFor(sess, intervalMs)
	if err := sess.Player.Start(s.baseCtx, interval, s.autoplayStep(sess)); err != nil {
		return nil, err
	}

	status.Playing = true
	status.IntervalMs = int(interval / time.Millisecond)
	status.GameState = sess.Engine.GetState()
	status.Events = append(status.Events, newEvent("autoplay_started",
		fmt.Sprintf("Autoplay started every %s", interval), status.GameState.Position))

	log.Printf("[PLAY] session=%s interval=%s", sessionID, interval)
	return status, nil
}

// Pause stops autoplay without waiting for an in-flight step
func (s *gameServiceImpl) Pause(ctx context.Context, sessionID string) (*PlaybackStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	status := &PlaybackStatus{SessionID: sess.ID}
	if sess.Player != nil {
		status.IntervalMs = int(sess.Player.Interval() / time.Millisecond)
		if sess.Player.Stop() {
			status.Events = append(status.Events, newEvent("autoplay_stopped", "Autoplay paused", sess.Engine.Position()))
		}
	}
	status.GameState = sess.Engine.GetState()
	return status, nil
}

// GetGameState retrieves the current board and cursor
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Engine.GetState(), nil
}

// GetSolution returns a page of the solution with applied moves marked
func (s *gameServiceImpl) GetSolution(ctx context.Context, sessionID string, opts SolutionOptions) (*SolutionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	solution := sess.Engine.Moves()
	position := sess.Engine.Position()
	total := len(solution)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultSolutionPageSize
	}
	if opts.Limit > maxSolutionPageSize {
		opts.Limit = maxSolutionPageSize
	}
	if opts.Order == "" {
		opts.Order = "asc"
	}
	if opts.Order != "asc" && opts.Order != "desc" {
		return nil, fmt.Errorf("%w: order must be asc or desc, got %q", ErrInvalidRequest, opts.Order)
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	// Pages past the end are empty; checked first so the offset cannot overflow
	start, end := total, total
	if opts.Page <= totalPages {
		start = (opts.Page - 1) * opts.Limit
		end = start + opts.Limit
		if end > total {
			end = total
		}
	}

	entries := []SolutionEntry{}
	for i := start; i < end; i++ {
		idx := i
		if opts.Order == "desc" {
			idx = total - 1 - i
		}
		m := solution[idx]
		entries = append(entries, SolutionEntry{
			Number:  idx + 1,
			Move:    m,
			Label:   m.String(),
			Applied: idx < position,
		})
	}

	return &SolutionResponse{
		Moves:       entries,
		TotalMoves:  total,
		Position:    position,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available puzzle presets
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific puzzle preset
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a puzzle preset to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// Close stops every running autoplay
func (s *gameServiceImpl) Close() error {
	s.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions.List() {
		if sess.Player != nil {
			sess.Player.Stop()
		}
	}
	return nil
}

// autoplayStep advances one move per tick and pushes the new state to the notifier
func (s *gameServiceImpl) autoplayStep(sess *Session) autoplay.StepFunc {
	return func(ctx context.Context) (bool, error) {
		s.mu.Lock()
		// Pause may have won the race for the lock
		if ctx.Err() != nil {
			s.mu.Unlock()
			return true, nil
		}
		outcome, err := sess.Engine.Advance()
		if err != nil {
			s.mu.Unlock()
			return false, fmt.Errorf("session %s: %w", sess.ID, err)
		}
		state := sess.Engine.GetState()
		s.sessions.UpdateLastAccessed(sess.ID)
		notifier := s.notifier
		s.mu.Unlock()

		if notifier != nil {
			notifier.BroadcastToSession(sess.ID, state)
		}
		return outcome == engine.StepAlreadyComplete || state.Complete, nil
	}
}

// intervalFor picks the request interval, then the preset interval, then the service default
func (s *gameServiceImpl) intervalFor(sess *Session, intervalMs int) time.Duration {
	if intervalMs > 0 {
		return time.Duration(intervalMs) * time.Millisecond
	}
	if ms := sess.Engine.GetConfig().AutoplayIntervalMs; ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return s.defaultInterval
}

// getSession looks up a session and touches its access time. Callers hold mu.
func (s *gameServiceImpl) getSession(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return sess, nil
}

// getConfigID returns the config_id for a display name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	available, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range available {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

func (s *gameServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	configID := sess.ConfigID
	if configID == "" {
		configID = s.getConfigID(sess.Config.Name)
	}
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     configID,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		Playing:        sess.Player != nil && sess.Player.Running(),
		GameState:      sess.Engine.GetState(),
		GameConfig:     sess.Engine.GetConfig(),
	}
}

func newEvent(eventType, message string, position int) GameEvent {
	return GameEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
		Position:  position,
	}
}

// topDisk returns the disk on top of rod, or 0 when it is empty
func topDisk(state *engine.GameState, rod engine.Rod) int {
	if !rod.Valid() || len(state.Rods[rod]) == 0 {
		return 0
	}
	return state.Rods[rod][0]
}
