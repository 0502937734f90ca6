// Package api provides the HTTP REST API for the Hanoi playback server.
//
// Endpoints:
//
// Sessions:
//   - POST /api/sessions - Create a session ({"config_id": "classic", "num_disks": 5})
//   - GET /api/sessions - List sessions (?sort=created|accessed&order=asc|desc&limit=N)
//   - GET /api/sessions/unified - Multi-session view (?sessionIds=a,b or ?configName=hard)
//   - GET /api/sessions/{id} - Session details
//   - DELETE /api/sessions/{id} - Delete a session and stop its autoplay
//
// Playback:
//   - GET /api/sessions/{id}/state - Board snapshot
//   - POST /api/sessions/{id}/next - Apply the next solution move
//   - POST /api/sessions/{id}/previous - Undo the last applied move
//   - POST /api/sessions/{id}/step - Bulk step ({"count": 10} or {"count": -10})
//   - POST /api/sessions/{id}/seek - Jump to a position ({"position": 12})
//   - POST /api/sessions/{id}/reset - Return to the starting board
//   - POST /api/sessions/{id}/disks - Rebuild with a new disk count ({"num_disks": 6})
//   - POST /api/sessions/{id}/play - Start autoplay ({"interval_ms": 200})
//   - POST /api/sessions/{id}/pause - Stop autoplay
//   - GET /api/sessions/{id}/solution - Paged move list (?page=1&limit=20&order=asc)
//
// Configuration:
//   - GET /api/configs - List presets
//   - GET /api/configs/{name} - Load one preset
//   - POST /api/configs - Save a preset
//
// Every state-changing handler broadcasts the resulting state to the
// session's WebSocket clients (GET /ws?session={id}).
//
// Step responses carry a compact trace of each applied move:
//
//	{
//	  "requested_steps": 5, "steps_executed": 3, "direction": "forward",
//	  "stop_reason_code": "already_complete",
//	  "steps": [{"idx": 5, "move": {"from": 0, "to": 2}, "label": "A->C", "disk": 1, "position": 6}]
//	}
//
// Errors are returned as JSON:
//
//	{"error": "session not found: ab12"}
//
// Unknown sessions and presets map to 404, invalid input to 400 and
// anything else to 500.
package api
