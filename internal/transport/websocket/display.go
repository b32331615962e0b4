package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"kiosk/internal/domain"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	readLimit  = 4 * 1024
	sendBuffer = 32
)

const (
	MessageFrame  = "frame"
	MessageEffect = "effect"
)

// DisplayMessage is pushed to the display of a kiosk session.
type DisplayMessage struct {
	Type      string            `json:"type"`
	SessionID string            `json:"session_id"`
	Frame     *domain.Frame     `json:"frame,omitempty"`
	Effect    domain.EffectKind `json:"effect,omitempty"`
	Timestamp string            `json:"timestamp"`
}

// SessionSource resolves display tokens and provides the frame a display
// shows right after connecting.
type SessionSource interface {
	ResolveToken(token string) (string, error)
	Frame(ctx context.Context, sessionID string) (*domain.Frame, error)
}

// Client is a display connected to one kiosk session.
type Client struct {
	SessionID string
	Conn      *websocket.Conn
	Send      chan []byte
	Hub       *DisplayHub
}

// DisplayHub keeps one display per kiosk session and pushes frames and
// effects to it. Sends never block the caller.
type DisplayHub struct {
	clients map[string]*Client

	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	logger *zap.Logger
	now    func() time.Time

	mutex sync.RWMutex
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 16384,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewDisplayHub(logger *zap.Logger) *DisplayHub {
	return &DisplayHub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
		now:        time.Now,
	}
}

// Run serves register and unregister requests until ctx is done.
func (h *DisplayHub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			if old, ok := h.clients[client.SessionID]; ok {
				close(old.Send)
			}
			h.clients[client.SessionID] = client
			h.mutex.Unlock()
			h.logger.Info("display conectado", zap.String("session", client.SessionID))

		case client := <-h.unregister:
			h.mutex.Lock()
			if current, ok := h.clients[client.SessionID]; ok && current == client {
				delete(h.clients, client.SessionID)
				close(client.Send)
			}
			h.mutex.Unlock()
			h.logger.Info("display desconectado", zap.String("session", client.SessionID))

		case <-ctx.Done():
			h.mutex.Lock()
			for id, client := range h.clients {
				delete(h.clients, id)
				close(client.Send)
			}
			h.mutex.Unlock()
			return
		}
	}
}

// Render pushes the frame to the display of its session.
func (h *DisplayHub) Render(frame domain.Frame) {
	h.send(&DisplayMessage{
		Type:      MessageFrame,
		SessionID: frame.SessionID,
		Frame:     &frame,
	})
}

// Notify pushes a cosmetic effect to the display of the session.
func (h *DisplayHub) Notify(sessionID string, kind domain.EffectKind) {
	h.send(&DisplayMessage{
		Type:      MessageEffect,
		SessionID: sessionID,
		Effect:    kind,
	})
}

// Drop disconnects the display of a session that no longer exists.
func (h *DisplayHub) Drop(sessionID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if client, ok := h.clients[sessionID]; ok {
		delete(h.clients, sessionID)
		close(client.Send)
		h.logger.Debug("display removido", zap.String("session", sessionID))
	}
}

func (h *DisplayHub) IsConnected(sessionID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, ok := h.clients[sessionID]
	return ok
}

func (h *DisplayHub) send(msg *DisplayMessage) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if client, ok := h.clients[msg.SessionID]; ok {
		h.deliver(client, msg)
	}
}

// deliver enqueues msg on the client without blocking. Callers must make sure
// the Send channel is still open.
func (h *DisplayHub) deliver(client *Client, msg *DisplayMessage) {
	msg.Timestamp = h.now().Format(time.RFC3339)

	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("erro ao serializar mensagem do display", zap.Error(err))
		return
	}

	select {
	case client.Send <- data:
	default:
		h.logger.Warn("fila do display cheia, mensagem descartada",
			zap.String("session", msg.SessionID),
			zap.String("type", msg.Type))
	}
}

// Handler upgrades authenticated display connections. The session token is
// passed as the token query parameter.
func (h *DisplayHub) Handler(sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := sessions.ResolveToken(c.Query("token"))
		if err != nil {
			h.logger.Warn("conexão de display recusada", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token de sessão inválido"})
			return
		}

		frame, err := sessions.Frame(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "sessão não encontrada"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.logger.Error("erro ao abrir websocket", zap.Error(err))
			return
		}

		client := &Client{
			SessionID: sessionID,
			Conn:      conn,
			Send:      make(chan []byte, sendBuffer),
			Hub:       h,
		}

		h.deliver(client, &DisplayMessage{Type: MessageFrame, SessionID: sessionID, Frame: frame})

		select {
		case h.register <- client:
		case <-h.done:
			conn.Close()
			return
		}

		go client.writePump()
		go client.readPump()
	}
}

// readPump only keeps the connection alive. Displays send events over REST.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
		}
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(readLimit)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("erro no websocket do display", zap.String("session", c.SessionID), zap.Error(err))
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.Hub.logger.Error("erro ao enviar mensagem ao display",
					zap.String("session", c.SessionID),
					zap.Error(err))
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
