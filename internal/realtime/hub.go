package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"kitchen-planner-api/internal/dto"
)

const (
	sendBuffer   = 16
	writeTimeout = 10 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = 25 * time.Second
)

// Client is one websocket subscriber of a project
type Client struct {
	ProjectID int64
	Username  string

	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *Client) close() {
	c.once.Do(func() { close(c.send) })
}

// Hub fans project events out to the websocket clients subscribed to that project
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*Client]struct{}
	logger  *zap.Logger
}

// NewHub creates an empty hub
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[int64]map[*Client]struct{}),
		logger:  logger,
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.ProjectID] == nil {
		h.clients[c.ProjectID] = make(map[*Client]struct{})
	}
	h.clients[c.ProjectID][c] = struct{}{}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if set := h.clients[c.ProjectID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.ProjectID)
		}
	}
	h.mu.Unlock()
	c.close()
}

// Subscribers returns the number of clients listening on a project
func (h *Hub) Subscribers(projectID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[projectID])
}

// Publish sends event to every subscriber of its project. Slow clients whose
// buffer is full miss the event.
func (h *Hub) Publish(event dto.ProjectEvent) {
	msg, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to encode project event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[event.ProjectID] {
		select {
		case c.send <- msg:
		default:
			h.logger.Warn("Dropping project event for slow client",
				zap.Int64("project_id", event.ProjectID),
				zap.String("username", c.Username),
			)
		}
	}
}

// Serve registers conn as a subscriber of projectID and blocks until the
// client disconnects
func (h *Hub) Serve(projectID int64, username string, conn *websocket.Conn) {
	c := &Client{
		ProjectID: projectID,
		Username:  username,
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
	}
	h.register(c)
	h.logger.Debug("Realtime client connected",
		zap.Int64("project_id", projectID),
		zap.String("username", username),
	)

	go h.writeLoop(c)
	h.readLoop(c)

	h.unregister(c)
	_ = conn.Close()
	h.logger.Debug("Realtime client disconnected",
		zap.Int64("project_id", projectID),
		zap.String("username", username),
	)
}

// readLoop discards client messages and returns on close or error
func (h *Hub) readLoop(c *Client) {
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writeLoop is the only writer of the connection
func (h *Hub) writeLoop(c *Client) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				_ = c.conn.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = c.conn.Close()
				return
			}
		}
	}
}
