// Package mcp exposes the Hanoi playback server to AI agents over the Model
// Context Protocol.
//
// Client is a thin proxy: every tool call becomes one REST request against
// the api package, and the JSON reply is rendered as text. Agents therefore
// share sessions with browsers and WebSocket renderers.
//
// MCP Tools:
//   - create_session, list_sessions, get_session
//   - board_state: ASCII drawing of the rods plus cursor details
//   - next_move, previous_move, step, seek, reset_board, set_disks
//   - play, pause: server-side autoplay
//   - solution: paged move list with applied moves marked
//   - list_configs, puzzle_instructions
//
// Transport Modes:
//   - Stdio: server.ServeStdio(client.GetMCPServer())
//   - HTTP: server.NewStreamableHTTPServer(client.GetMCPServer()) mounted at /mcp
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	if err := server.ServeStdio(client.GetMCPServer()); err != nil {
//		log.Fatal(err)
//	}
package mcp
