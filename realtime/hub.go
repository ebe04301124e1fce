// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package realtime

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from the frontend origin; CORS is handled
	// at the HTTP layer.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans state updates out to the websocket clients watching each game.
type Hub struct {
	mu    sync.Mutex
	games map[string]map[*client]bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub() *Hub {
	return &Hub{
		games: make(map[string]map[*client]bool),
	}
}

// Broadcast sends v as JSON to every client subscribed to the game.
// Slow clients have their pending message dropped rather than blocking
// the sender.
func (h *Hub) Broadcast(gameID string, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal broadcast", "game_id", gameID, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.games[gameID] {
		select {
		case c.send <- payload:
		default:
			// Client is not draining; drop this update. It will catch
			// up on the next one or on a poll.
		}
	}
}

// Serve upgrades the request to a websocket and subscribes it to the
// game's updates until the client disconnects.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, gameID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "game_id", gameID, "error", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, 8),
	}
	h.register(gameID, c)
	slog.Info("websocket client connected", "game_id", gameID)

	go c.writePump()

	// Read loop only detects disconnect; clients don't send messages.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.unregister(gameID, c)
	close(c.send)
	conn.Close()
	slog.Info("websocket client disconnected", "game_id", gameID)
}

func (h *Hub) register(gameID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.games[gameID] == nil {
		h.games[gameID] = make(map[*client]bool)
	}
	h.games[gameID][c] = true
}

func (h *Hub) unregister(gameID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.games[gameID], c)
	if len(h.games[gameID]) == 0 {
		delete(h.games, gameID)
	}
}

func (c *client) writePump() {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
