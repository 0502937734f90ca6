// Package websocket pushes puzzle state to renderers over WebSocket.
//
// The package uses a hub-and-spoke model where a central Hub manages all
// connections. Each client has a read goroutine that keeps the connection
// alive with ping/pong and a write goroutine that drains its send buffer.
//
// Message Protocol:
//
// Every outgoing frame is one JSON document:
//
//	{"session_id": "a1b2", "event": "state_update", "game_state": {...}}
//
// Custom events from BroadcastEvent carry "data" instead of "game_state".
// Incoming frames are read and discarded.
//
// Session Integration:
//
// Clients pick a session with the query parameter (?session=a1b2). The hub
// satisfies service.Notifier, so autoplay steps reach every client of the
// session as they happen. Clients that fall behind by a full buffer are
// disconnected rather than allowed to block the broadcaster.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	defer hub.Close()
//
//	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, r.URL.Query().Get("session"), nil)
//	})
package websocket
