// Package server tracks the connections a host process is serving. Every
// connection plays its own private session; the registry only knows who is
// connected, how to reach them with host events, and the best scores seen.
package server

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Registry is the interface front ends use to announce themselves to the host.
type Registry interface {
	Register(username string) *ClientHandle
	Unregister(id string)
	ReportScore(id string, score, wave int)
	TopScores() []TopScoreEntry
}

// Hub is the in-memory Registry shared by all connections of one process.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*ClientHandle
	scores  *leaderboard
	logger  *log.Logger
}

// Compile-time check that Hub implements Registry.
var _ Registry = (*Hub)(nil)

// ClientHandle represents a client's connection to the hub.
type ClientHandle struct {
	ID          string
	Username    string // Display name for this client
	ConnectedAt time.Time
	EventsCh    chan ClientEvent // Events sent to client (shutdown, etc.)
}

// ClientEvent represents an event sent from the hub to a client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// NewHub creates an empty hub. A nil logger discards output.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		clients: make(map[string]*ClientHandle),
		scores:  newLeaderboard(topScoreCount),
		logger:  logger,
	}
}

// Register adds a client with the given username and returns its handle.
func (h *Hub) Register(username string) *ClientHandle {
	handle := &ClientHandle{
		ID:          uuid.NewString(),
		Username:    username,
		ConnectedAt: time.Now(),
		EventsCh:    make(chan ClientEvent, 16),
	}

	h.mu.Lock()
	h.clients[handle.ID] = handle
	n := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("client connected", "id", handle.ID, "user", username, "clients", n)
	return handle
}

// Unregister removes a client. Unknown IDs are ignored.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	handle, ok := h.clients[id]
	delete(h.clients, id)
	n := len(h.clients)
	h.mu.Unlock()

	if ok {
		h.logger.Info("client disconnected", "id", id, "user", handle.Username,
			"duration", time.Since(handle.ConnectedAt).Round(time.Second), "clients", n)
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ReportScore records the final score of a finished game.
func (h *Hub) ReportScore(id string, score, wave int) {
	h.mu.Lock()
	username := ""
	if handle, ok := h.clients[id]; ok {
		username = handle.Username
	}
	h.scores.add(TopScoreEntry{Username: username, Score: score, Wave: wave, clientID: id})
	h.mu.Unlock()

	h.logger.Info("game over", "id", id, "user", username, "score", score, "wave", wave)
}

// TopScores returns the best scores recorded since the hub started, highest first.
func (h *Hub) TopScores() []TopScoreEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.scores.entries()
}

// Shutdown notifies all connected clients about the shutdown and waits for
// them to disconnect, up to the given timeout.
func (h *Hub) Shutdown(timeout time.Duration) {
	h.mu.RLock()
	for _, handle := range h.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	h.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if h.Count() == 0 {
			return
		}
		select {
		case <-deadline:
			h.logger.Warn("shutdown timeout with clients still connected", "clients", h.Count())
			return
		case <-ticker.C:
		}
	}
}
