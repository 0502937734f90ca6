package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wricardo/mcp-training/hanoi/game/engine"
	"github.com/wricardo/mcp-training/hanoi/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Towers of Hanoi Player",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Towers of Hanoi Player - MCP Interface

This is a thin client that proxies all requests to the REST API server.

Each session holds a puzzle of N disks on rods A, B and C together with its
optimal solution (2^N - 1 moves). A cursor walks that solution: next_move
applies the move under the cursor, previous_move undoes the last one, and
seek jumps anywhere in between.

AVAILABLE TOOLS:
- create_session: Start a puzzle from a preset or a disk count
- list_sessions / get_session: Inspect sessions
- board_state: Draw the current board
- next_move / previous_move: Step the cursor once
- step: Step several moves forward (positive) or backward (negative)
- seek: Jump to an exact position
- reset_board: Return to the starting board
- set_disks: Rebuild the puzzle with a new disk count
- play / pause: Let the server advance on a timer
- solution: Page through the full move list
- list_configs: List presets
- puzzle_instructions: Rules and tips`),
	)

	c.registerTools()
}

func sessionOnlySchema() mcp.ToolInputSchema {
	return mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"session_id": map[string]interface{}{
				"type":        "string",
				"description": "Session ID",
			},
		},
		Required: []string{"session_id"},
	}
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new puzzle session from a preset, optionally overriding the disk count",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Preset to use (optional, see list_configs)",
				},
				"num_disks": map[string]interface{}{
					"type":        "integer",
					"minimum":     engine.MinDisks,
					"maximum":     engine.MaxDisks,
					"description": "Number of disks (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active puzzle sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: sessionOnlySchema(),
	}, c.handleGetSession)

	// Playback
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "board_state",
		Description: "Draw the current board with the cursor position and the next move",
		InputSchema: sessionOnlySchema(),
	}, c.handleBoardState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "next_move",
		Description: "Apply the next move of the optimal solution",
		InputSchema: sessionOnlySchema(),
	}, c.handleNextMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "previous_move",
		Description: "Undo the most recently applied move",
		InputSchema: sessionOnlySchema(),
	}, c.handlePreviousMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "step",
		Description: fmt.Sprintf("Step several moves at once. Positive counts go forward, negative go backward. At most %d per call.", engine.MaxBulkSteps),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"count": map[string]interface{}{
					"type":        "integer",
					"description": "Number of moves; negative to step backward",
				},
			},
			Required: []string{"session_id", "count"},
		},
	}, c.handleStep)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "seek",
		Description: "Jump the cursor to an exact position (0 is the starting board)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"position": map[string]interface{}{
					"type":        "integer",
					"minimum":     0,
					"description": "Number of moves applied after the jump",
				},
			},
			Required: []string{"session_id", "position"},
		},
	}, c.handleSeek)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_board",
		Description: "Return the board to its starting position",
		InputSchema: sessionOnlySchema(),
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "set_disks",
		Description: "Rebuild the puzzle with a different number of disks",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"num_disks": map[string]interface{}{
					"type":        "integer",
					"minimum":     engine.MinDisks,
					"maximum":     engine.MaxDisks,
					"description": "New disk count",
				},
			},
			Required: []string{"session_id", "num_disks"},
		},
	}, c.handleSetDisks)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "play",
		Description: "Start autoplay. The server applies one move per interval until the puzzle is solved.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"interval_ms": map[string]interface{}{
					"type":        "integer",
					"minimum":     engine.MinAutoplayIntervalMs,
					"maximum":     engine.MaxAutoplayIntervalMs,
					"description": "Delay between moves in milliseconds (optional)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handlePlay)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "pause",
		Description: "Stop autoplay",
		InputSchema: sessionOnlySchema(),
	}, c.handlePause)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "solution",
		Description: "Page through the optimal move list. Applied moves are marked.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
				"order": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"asc", "desc"},
					"description": "Sort order",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleSolution)

	// Presets
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available puzzle presets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "puzzle_instructions",
		Description: "Get the puzzle rules and how the playback cursor works",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handlePuzzleInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

func sessionPath(sessionID, action string) string {
	p := "/api/sessions/" + url.PathEscape(sessionID)
	if action != "" {
		p += "/" + action
	}
	return p
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	body := map[string]interface{}{}
	if configID := request.GetString("config_id", ""); configID != "" {
		body["config_id"] = configID
	}
	if numDisks := request.GetInt("num_disks", 0); numDisks != 0 {
		body["num_disks"] = numDisks
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "POST", "/api/sessions", body, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s", session.ID, session.ConfigName, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	if err := c.apiCall(ctx, "GET", "/api/sessions", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		progress := ""
		if s.GameState != nil {
			progress = fmt.Sprintf(", %d disks, move %d/%d", s.GameState.NumDisks, s.GameState.Position, s.GameState.TotalMoves)
		}
		playing := ""
		if s.Playing {
			playing = " [playing]"
		}
		fmt.Fprintf(&b, "- %s (Config: %s%s, Created: %s)%s\n",
			s.ID, s.ConfigName, progress, s.CreatedAt.Format("15:04:05"), playing)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := request.GetString("session_id", "")

	var session service.SessionInfo
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, ""), nil, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

func (c *Client) handleBoardState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := request.GetString("session_id", "")

	var state engine.GameState
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, "state"), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(&state)), nil
}

func (c *Client) handleNextMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.singleStep(ctx, request, "next")
}

func (c *Client) handlePreviousMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.singleStep(ctx, request, "previous")
}

func (c *Client) singleStep(ctx context.Context, request mcp.CallToolRequest, action string) (*mcp.CallToolResult, error) {
	sessionID := request.GetString("session_id", "")

	var result service.MoveResult
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, action), nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatMoveResult(&result)), nil
}

func (c *Client) handleStep(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := request.GetString("session_id", "")
	count := request.GetInt("count", 0)
	if count == 0 {
		return mcp.NewToolResultError("count must be a non-zero integer"), nil
	}

	var result service.BulkStepResult
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "step"), map[string]int{"count": count}, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatBulkStepResult(sessionID, &result)), nil
}

func (c *Client) handleSeek(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := request.GetString("session_id", "")
	position := request.GetInt("position", -1)
	if position < 0 {
		return mcp.NewToolResultError("position must be a non-negative integer"), nil
	}

	var state engine.GameState
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "seek"), map[string]int{"position": position}, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Jumped to position %d\n\n%s", position, formatGameState(&state))), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := request.GetString("session_id", "")

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "reset"), nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))), nil
}

func (c *Client) handleSetDisks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := request.GetString("session_id", "")
	numDisks := request.GetInt("num_disks", 0)

	var state engine.GameState
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "disks"), map[string]int{"num_disks": numDisks}, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Rebuilt with %d disks\n\n%s", state.NumDisks, formatGameState(&state))), nil
}

func (c *Client) handlePlay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := request.GetString("session_id", "")

	body := map[string]int{}
	if interval := request.GetInt("interval_ms", 0); interval != 0 {
		body["interval_ms"] = interval
	}

	var status service.PlaybackStatus
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "play"), body, &status); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatPlaybackStatus(&status)), nil
}

func (c *Client) handlePause(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := request.GetString("session_id", "")

	var status service.PlaybackStatus
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "pause"), nil, &status); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatPlaybackStatus(&status)), nil
}

func (c *Client) handleSolution(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := request.GetString("session_id", "")

	params := url.Values{}
	if page := request.GetInt("page", 0); page > 0 {
		params.Set("page", fmt.Sprint(page))
	}
	if limit := request.GetInt("limit", 0); limit > 0 {
		params.Set("limit", fmt.Sprint(limit))
	}
	if order := request.GetString("order", ""); order != "" {
		params.Set("order", order)
	}

	path := sessionPath(sessionID, "solution")
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var solution service.SolutionResponse
	if err := c.apiCall(ctx, "GET", path, nil, &solution); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSolution(&solution)), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	if err := c.apiCall(ctx, "GET", "/api/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Available Configurations:\n\n")
	for _, config := range configs {
		fmt.Fprintf(&b, "• %s (%s)\n  %s\n  Disks: %d, Moves: %d, Autoplay: %dms\n\n",
			config.Name, config.ConfigID, config.Description, config.NumDisks, config.TotalMoves, config.AutoplayIntervalMs)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handlePuzzleInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := fmt.Sprintf(`Towers of Hanoi - Instructions

THE PUZZLE:
N disks of distinct sizes start stacked on rod A, largest at the bottom.
Move the whole stack to rod C. Only the top disk of a rod may move, and a
disk may never rest on a smaller one. Rod B is the spare.

THE SOLUTION:
The optimal solution takes exactly 2^N - 1 moves. The server computes it once
per session and never deviates from it. Disk 1 moves on every other turn.

THE CURSOR:
position is the number of solution moves currently applied.
- position 0 is the starting board, position 2^N - 1 is solved
- next_move applies move number position+1
- previous_move undoes move number position
- step walks up to %d moves in either direction and stops at either end
- seek jumps straight to any position

READING THE BOARD:
Rods are drawn side by side, bottom at the bottom. Each number is a disk's
size. In JSON, every rod lists its disks top first.

AUTOPLAY:
play advances one move per interval (%d..%dms) until the puzzle is solved.
pause stops it. reset_board and set_disks stop it too.

LIMITS:
Disk counts range from %d to %d.`,
		engine.MaxBulkSteps, engine.MinAutoplayIntervalMs, engine.MaxAutoplayIntervalMs,
		engine.MinDisks, engine.MaxDisks)

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	result := fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\nLast Accessed: %s\nPlaying: %t\n\n",
		session.ID, session.ConfigName,
		session.CreatedAt.Format(time.RFC3339), session.LastAccessedAt.Format(time.RFC3339),
		session.Playing)
	return result + formatGameState(session.GameState)
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "Board: unavailable"
	}

	var b strings.Builder
	b.WriteString(renderBoard(state))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Disks: %d\n", state.NumDisks)
	fmt.Fprintf(&b, "Position: %d/%d\n", state.Position, state.TotalMoves)

	if state.LastMove != nil {
		fmt.Fprintf(&b, "Last move: %s\n", state.LastMove)
	}
	if state.NextMove != nil {
		fmt.Fprintf(&b, "Next move: %s\n", state.NextMove)
	}

	switch {
	case state.Complete:
		b.WriteString("Status: 🎉 SOLVED\n")
	case state.AtStart:
		b.WriteString("Status: at start\n")
	}

	if state.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", state.Message)
	}

	return b.String()
}

// renderBoard draws the three rods side by side, bottom row last
func renderBoard(state *engine.GameState) string {
	width := len(fmt.Sprint(state.NumDisks)) + 2

	height := state.NumDisks
	for _, rod := range state.Rods {
		if len(rod) > height {
			height = len(rod)
		}
	}

	cell := func(s string) string {
		pad := width - len(s)
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	}

	var b strings.Builder
	for level := height - 1; level >= 0; level-- {
		for i, rod := range state.Rods {
			if i > 0 {
				b.WriteString(" ")
			}
			// rod is listed top first
			if level < len(rod) {
				b.WriteString(cell(fmt.Sprint(rod[len(rod)-1-level])))
			} else {
				b.WriteString(cell("|"))
			}
		}
		b.WriteString("\n")
	}

	for i := range state.Rods {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(strings.Repeat("=", width))
	}
	b.WriteString("\n")

	for i := range state.Rods {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(cell(engine.Rod(i).String()))
	}
	b.WriteString("\n")

	return b.String()
}

func formatMoveResult(result *service.MoveResult) string {
	var b strings.Builder

	switch result.Outcome {
	case engine.StepApplied:
		if result.Move != nil {
			fmt.Fprintf(&b, "✓ Moved disk %d %s\n", result.Disk, result.Move)
		} else {
			b.WriteString("✓ Move applied\n")
		}
	case engine.StepAlreadyComplete:
		b.WriteString("• Already solved, nothing to apply\n")
	case engine.StepAlreadyAtStart:
		b.WriteString("• Already at the start, nothing to undo\n")
	default:
		fmt.Fprintf(&b, "• %s\n", result.Outcome)
	}

	if result.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", result.Message)
	}

	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatBulkStepResult(sessionID string, result *service.BulkStepResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Session: %s\n", sessionID)
	fmt.Fprintf(&b, "Stepped %s: %d/%d (position %d -> %d)\n",
		result.Direction, result.StepsExecuted, result.RequestedSteps, result.StartPosition, result.EndPosition)

	if result.Truncated {
		fmt.Fprintf(&b, "Request truncated to %d steps\n", result.Limit)
	}
	if result.StoppedReason != "" {
		fmt.Fprintf(&b, "Stopped: %s\n", result.StoppedReason)
	}

	if len(result.Steps) > 0 {
		b.WriteString("\nSteps:\n")
		for _, step := range result.Steps {
			fmt.Fprintf(&b, "%d. disk %d %s (position %d)\n", step.Idx, step.Disk, step.Label, step.Position)
		}
	}

	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatPlaybackStatus(status *service.PlaybackStatus) string {
	state := "paused"
	if status.Playing {
		state = fmt.Sprintf("playing every %dms", status.IntervalMs)
	}
	return fmt.Sprintf("Autoplay: %s\n\n%s", state, formatGameState(status.GameState))
}

func formatSolution(solution *service.SolutionResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Solution (Page %d/%d) - Total moves: %d, Position: %d\n\n",
		solution.Page, solution.TotalPages, solution.TotalMoves, solution.Position)

	for _, entry := range solution.Moves {
		status := " "
		if entry.Applied {
			status = "✓"
		}
		fmt.Fprintf(&b, "%s %d. %s\n", status, entry.Number, entry.Label)
	}

	if solution.HasNext {
		b.WriteString("\n(more on the next page)\n")
	}

	return b.String()
}
