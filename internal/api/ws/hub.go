package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Controller is the slice of the match manager the hub needs for inbound
// messages. Declared here so the manager can hold the hub without an
// import cycle.
type Controller interface {
	PlayText(code, playerID, from, to string) error
}

// Hub tracks websocket spectators per match code and fans match events
// out to them.
type Hub struct {
	mu      sync.RWMutex
	matches map[string]map[*websocket.Conn]struct{}
	ctrl    Controller
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		matches: make(map[string]map[*websocket.Conn]struct{}),
		log:     log,
	}
}

// SetController wires the match manager after both sides exist.
func (h *Hub) SetController(c Controller) {
	h.ctrl = c
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // the FE runs on a different origin in development
	},
}

type inbound struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type moveMessage struct {
	PlayerID string `json:"player_id"`
	From     string `json:"from"`
	To       string `json:"to"`
}

// HandleWS upgrades the connection and keeps it subscribed to one match
// until the peer goes away. A connected client may also submit moves in
// letter+number notation.
func (h *Hub) HandleWS(c *gin.Context) {
	code := c.Query("match_code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing match_code"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	if _, ok := h.matches[code]; !ok {
		h.matches[code] = make(map[*websocket.Conn]struct{})
	}
	h.matches[code][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.matches[code], conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		var msg inbound
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		switch msg.Action {
		case "move":
			var mv moveMessage
			if err := json.Unmarshal(msg.Data, &mv); err != nil {
				h.log.Warn("bad move payload", zap.String("match", code), zap.Error(err))
				continue
			}
			if h.ctrl == nil {
				continue
			}
			if err := h.ctrl.PlayText(code, mv.PlayerID, mv.From, mv.To); err != nil {
				h.send(conn, "rejected", gin.H{"error": err.Error()})
			}
		default:
			h.log.Debug("unknown ws action", zap.String("action", msg.Action))
		}
	}
}

// Broadcast sends an event to every connection subscribed to a match.
// Safe on a nil hub so the manager can run without websockets in tests.
func (h *Hub) Broadcast(code, action string, data interface{}) {
	if h == nil {
		return
	}
	// write lock: dead connections are dropped from the set below
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.matches[code]
	if !ok {
		return
	}
	message := gin.H{"action": action, "data": data}
	for conn := range clients {
		if err := conn.WriteJSON(message); err != nil {
			h.log.Warn("dropping websocket client", zap.String("match", code), zap.Error(err))
			conn.Close()
			delete(clients, conn)
		}
	}
}

func (h *Hub) send(conn *websocket.Conn, action string, data interface{}) {
	_ = conn.WriteJSON(gin.H{"action": action, "data": data})
}
