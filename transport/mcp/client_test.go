package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wricardo/mcp-training/hanoi/api"
	"github.com/wricardo/mcp-training/hanoi/game/config"
	"github.com/wricardo/mcp-training/hanoi/game/engine"
	"github.com/wricardo/mcp-training/hanoi/game/service"
	"github.com/wricardo/mcp-training/hanoi/game/session"
	"github.com/wricardo/mcp-training/hanoi/transport/websocket"
)

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil {
		t.Fatal("Expected result, got nil")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}
	return text.Text
}

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/")

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != "http://localhost:8080" {
		t.Errorf("Expected trailing slash trimmed, got %s", client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.GetMCPServer() == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"position": 4})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	if err := client.apiCall(context.Background(), "GET", "/api/sessions/ab12/state", nil, &response); err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if response["position"] != float64(4) {
		t.Errorf("Expected position 4, got %v", response["position"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url)
	if err := client.apiCall(context.Background(), "GET", "/api", nil, nil); err == nil {
		t.Error("Expected error for closed server")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectedErr string
	}{
		{name: "Plain text body", body: "Internal Server Error", expectedErr: "API error: 500"},
		{name: "JSON error body", body: `{"error":"session not found: zz99"}`, expectedErr: "session not found: zz99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			err := NewClient(server.URL).apiCall(context.Background(), "GET", "/api", nil, nil)
			if err == nil {
				t.Fatal("Expected error for HTTP 500 response")
			}
			if err.Error() != tt.expectedErr {
				t.Errorf("Expected %q, got %q", tt.expectedErr, err.Error())
			}
		})
	}
}

func TestClient_createSession(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Expected POST /api/sessions, got %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)

		resp := service.SessionInfo{
			ID:         "test-session-123",
			ConfigName: "classic",
			GameState: &engine.GameState{
				Rods:       engine.InitialRods(4),
				NumDisks:   4,
				TotalMoves: 15,
				AtStart:    true,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	result, err := client.handleCreateSession(context.Background(), callRequest("create_session", map[string]interface{}{
		"config_id": "classic",
		"num_disks": float64(4),
	}))
	if err != nil {
		t.Fatalf("createSession failed: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "test-session-123") {
		t.Errorf("Expected session ID in result, got: %s", text)
	}
	if !strings.Contains(text, "Position: 0/15") {
		t.Errorf("Expected board summary in result, got: %s", text)
	}
	if gotBody["config_id"] != "classic" || gotBody["num_disks"] != float64(4) {
		t.Errorf("Unexpected request body: %v", gotBody)
	}
}

func TestClient_handleStepValidation(t *testing.T) {
	client := NewClient("http://localhost:0")

	result, err := client.handleStep(context.Background(), callRequest("step", map[string]interface{}{
		"session_id": "ab12",
	}))
	if err != nil {
		t.Fatalf("handleStep returned error: %v", err)
	}
	if !result.IsError {
		t.Error("Expected tool error for missing count")
	}

	result, _ = client.handleSeek(context.Background(), callRequest("seek", map[string]interface{}{
		"session_id": "ab12",
	}))
	if !result.IsError {
		t.Error("Expected tool error for missing position")
	}
}

func TestRenderBoard(t *testing.T) {
	state := &engine.GameState{
		Rods:     [engine.NumRods][]engine.Disk{{2}, {1}, {}},
		NumDisks: 2,
	}

	expected := " |   |   | \n" +
		" 2   1   | \n" +
		"=== === ===\n" +
		" A   B   C \n"

	if got := renderBoard(state); got != expected {
		t.Errorf("Unexpected board:\n%q\nwant:\n%q", got, expected)
	}
}

func TestRenderBoard_WideDisks(t *testing.T) {
	state := &engine.GameState{
		Rods:     engine.InitialRods(10),
		NumDisks: 10,
	}

	board := renderBoard(state)
	lines := strings.Split(strings.TrimSuffix(board, "\n"), "\n")

	// 10 disk rows, the base and the labels
	if len(lines) != 12 {
		t.Fatalf("Expected 12 lines, got %d:\n%s", len(lines), board)
	}
	if lines[0] != " 1    |    |  " {
		t.Errorf("Unexpected top row %q", lines[0])
	}
	if lines[9] != " 10   |    |  " {
		t.Errorf("Unexpected bottom row %q", lines[9])
	}
}

func TestFormatGameState(t *testing.T) {
	last := engine.Move{From: engine.RodA, To: engine.RodC}
	next := engine.Move{From: engine.RodA, To: engine.RodB}
	state := &engine.GameState{
		Rods:       [engine.NumRods][]engine.Disk{{2, 3}, {}, {1}},
		NumDisks:   3,
		Position:   1,
		TotalMoves: 7,
		LastMove:   &last,
		NextMove:   &next,
		Message:    "Move 1 of 7",
	}

	result := formatGameState(state)

	expectedFields := []string{
		"Disks: 3",
		"Position: 1/7",
		"Last move: A->C",
		"Next move: A->B",
		"Message: Move 1 of 7",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatGameState_Solved(t *testing.T) {
	state := &engine.GameState{
		Rods:       [engine.NumRods][]engine.Disk{{}, {}, {1, 2, 3}},
		NumDisks:   3,
		Position:   7,
		TotalMoves: 7,
		Complete:   true,
	}

	if result := formatGameState(state); !strings.Contains(result, "🎉 SOLVED") {
		t.Errorf("Expected '🎉 SOLVED' in result, got: %s", result)
	}

	if result := formatGameState(nil); result != "Board: unavailable" {
		t.Errorf("Expected placeholder for nil state, got: %s", result)
	}
}

func TestFormatMoveResult(t *testing.T) {
	move := engine.Move{From: engine.RodA, To: engine.RodC}

	tests := []struct {
		name     string
		result   *service.MoveResult
		expected string
	}{
		{
			name: "Applied",
			result: &service.MoveResult{
				Success: true, Outcome: engine.StepApplied, Move: &move, Disk: 1,
				GameState: &engine.GameState{Rods: engine.InitialRods(1), NumDisks: 1, Position: 1, TotalMoves: 1},
			},
			expected: "✓ Moved disk 1 A->C",
		},
		{
			name: "Already complete",
			result: &service.MoveResult{
				Outcome:   engine.StepAlreadyComplete,
				GameState: &engine.GameState{NumDisks: 1, Position: 1, TotalMoves: 1, Complete: true},
			},
			expected: "Already solved",
		},
		{
			name: "Already at start",
			result: &service.MoveResult{
				Outcome:   engine.StepAlreadyAtStart,
				GameState: &engine.GameState{NumDisks: 1, TotalMoves: 1, AtStart: true},
			},
			expected: "Already at the start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMoveResult(tt.result); !strings.Contains(got, tt.expected) {
				t.Errorf("Expected %q in output, got: %s", tt.expected, got)
			}
		})
	}
}

func TestFormatBulkStepResult(t *testing.T) {
	result := &service.BulkStepResult{
		RequestedSteps: 2000,
		StepsExecuted:  2,
		Direction:      "forward",
		StartPosition:  0,
		EndPosition:    2,
		Truncated:      true,
		Limit:          engine.MaxBulkSteps,
		StoppedReason:  "Done",
		StopReasonCode: string(engine.StepAlreadyComplete),
		Steps: []service.StepInfo{
			{Idx: 1, Label: "A->B", Disk: 1, Position: 1},
			{Idx: 2, Label: "A->C", Disk: 2, Position: 2},
		},
	}

	out := formatBulkStepResult("ab12", result)

	expectedFields := []string{
		"Stepped forward: 2/2000 (position 0 -> 2)",
		"Request truncated to 1024 steps",
		"Stopped: Done",
		"2. disk 2 A->C (position 2)",
	}
	for _, field := range expectedFields {
		if !strings.Contains(out, field) {
			t.Errorf("Expected '%s' in output, got: %s", field, out)
		}
	}
}

func TestFormatSolution(t *testing.T) {
	solution := &service.SolutionResponse{
		Moves: []service.SolutionEntry{
			{Number: 1, Label: "A->C", Applied: true},
			{Number: 2, Label: "A->B"},
		},
		TotalMoves: 7,
		Position:   1,
		Page:       1,
		TotalPages: 4,
		HasNext:    true,
	}

	out := formatSolution(solution)

	for _, field := range []string{"Page 1/4", "✓ 1. A->C", "  2. A->B", "more on the next page"} {
		if !strings.Contains(out, field) {
			t.Errorf("Expected '%s' in output, got: %s", field, out)
		}
	}
}

func TestClient_handlePuzzleInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")

	result, err := client.handlePuzzleInstructions(context.Background(), callRequest("puzzle_instructions", map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handlePuzzleInstructions failed: %v", err)
	}

	text := resultText(t, result)
	for _, content := range []string{"THE PUZZLE:", "THE CURSOR:", "AUTOPLAY:", "2^N - 1", "1024"} {
		if !strings.Contains(text, content) {
			t.Errorf("Expected '%s' in instructions", content)
		}
	}
}

// TestClient_Integration drives the tools against a real API server
func TestClient_Integration(t *testing.T) {
	configs, err := config.NewManager("../../configs")
	if err != nil {
		t.Fatalf("Failed to load presets: %v", err)
	}

	hub := websocket.NewHub()
	go hub.Run()
	defer hub.Close()

	svc := service.NewGameService(session.NewManager(), configs)
	defer svc.Close()

	ts := httptest.NewServer(api.NewServer(svc, hub))
	defer ts.Close()

	client := NewClient(ts.URL)
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "classic", 3)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	sessionArgs := map[string]interface{}{"session_id": info.ID}

	result, _ := client.handleNextMove(ctx, callRequest("next_move", sessionArgs))
	if text := resultText(t, result); !strings.Contains(text, "✓ Moved disk 1 A->C") {
		t.Errorf("Unexpected next_move output: %s", text)
	}

	result, _ = client.handleStep(ctx, callRequest("step", map[string]interface{}{
		"session_id": info.ID, "count": float64(100),
	}))
	if text := resultText(t, result); !strings.Contains(text, "Stepped forward: 6/100") || !strings.Contains(text, "🎉 SOLVED") {
		t.Errorf("Unexpected step output: %s", text)
	}

	result, _ = client.handleSeek(ctx, callRequest("seek", map[string]interface{}{
		"session_id": info.ID, "position": float64(2),
	}))
	if text := resultText(t, result); !strings.Contains(text, "Position: 2/7") {
		t.Errorf("Unexpected seek output: %s", text)
	}

	result, _ = client.handlePreviousMove(ctx, callRequest("previous_move", sessionArgs))
	if text := resultText(t, result); !strings.Contains(text, "Position: 1/7") {
		t.Errorf("Unexpected previous_move output: %s", text)
	}

	result, _ = client.handleSolution(ctx, callRequest("solution", map[string]interface{}{
		"session_id": info.ID, "limit": float64(3),
	}))
	if text := resultText(t, result); !strings.Contains(text, "✓ 1. A->C") || !strings.Contains(text, "  2. A->B") {
		t.Errorf("Unexpected solution output: %s", text)
	}

	result, _ = client.handleSetDisks(ctx, callRequest("set_disks", map[string]interface{}{
		"session_id": info.ID, "num_disks": float64(99),
	}))
	if !result.IsError {
		t.Error("Expected tool error for 99 disks")
	}

	result, _ = client.handleBoardState(ctx, callRequest("board_state", map[string]interface{}{"session_id": "zz99"}))
	if !result.IsError {
		t.Error("Expected tool error for unknown session")
	}
}
