package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/harishd2007/CivicFlow-v11/models"
)

// AlertHub pushes newly created alerts to connected browser tabs so the
// notification badge updates without polling.
type AlertHub struct {
	upgrader    websocket.Upgrader
	connections map[*websocket.Conn]bool
	clientConns map[string]*websocket.Conn // clientID -> connection (one per tab)
	connMutex   sync.RWMutex
}

func NewAlertHub(allowedOrigins []string) *AlertHub {
	return &AlertHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowedOrigins {
					if origin == allowed {
						return true
					}
				}
				return false
			},
		},
		connections: make(map[*websocket.Conn]bool),
		clientConns: make(map[string]*websocket.Conn),
	}
}

// HandleWebSocket upgrades the connection and keeps it alive with pings until
// the client goes away. Inbound frames are ignored; the stream is push-only.
func (h *AlertHub) HandleWebSocket(c *gin.Context) {
	clientID := c.Query("client_id")
	if clientID == "" {
		clientID = uuid.New().String()
	}

	h.closeExistingClientConnection(clientID)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[AlertHub] upgrade failed: %v", err)
		return
	}

	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	h.registerConnection(clientID, conn)
	log.Printf("[AlertHub] client %s connected", clientID)

	pingTicker := time.NewTicker(30 * time.Second)
	defer pingTicker.Stop()

	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-pingTicker.C:
				if err := conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(10*time.Second)); err != nil {
					log.Printf("[AlertHub] ping failed for client %s: %v", clientID, err)
					conn.Close()
					return
				}
			case <-done:
				return
			}
		}
	}()

	defer func() {
		close(done)
		h.unregisterConnection(clientID, conn)
		conn.Close()
		log.Printf("[AlertHub] client %s disconnected", clientID)
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[AlertHub] read error: %v", err)
			}
			break
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	}
}

// Broadcast sends an alert to every connected client.
func (h *AlertHub) Broadcast(alert models.UserAlert) {
	h.connMutex.RLock()
	defer h.connMutex.RUnlock()

	for conn := range h.connections {
		if err := conn.WriteJSON(alert); err != nil {
			log.Printf("[AlertHub] broadcast failed: %v", err)
		}
	}
}

func (h *AlertHub) closeExistingClientConnection(clientID string) {
	h.connMutex.Lock()
	defer h.connMutex.Unlock()

	if existing, ok := h.clientConns[clientID]; ok {
		log.Printf("[AlertHub] closing existing connection for client %s", clientID)
		existing.Close()
		delete(h.connections, existing)
		delete(h.clientConns, clientID)
	}
}

func (h *AlertHub) registerConnection(clientID string, conn *websocket.Conn) {
	h.connMutex.Lock()
	defer h.connMutex.Unlock()

	h.connections[conn] = true
	h.clientConns[clientID] = conn
}

func (h *AlertHub) unregisterConnection(clientID string, conn *websocket.Conn) {
	h.connMutex.Lock()
	defer h.connMutex.Unlock()

	delete(h.connections, conn)
	if h.clientConns[clientID] == conn {
		delete(h.clientConns, clientID)
	}
}
