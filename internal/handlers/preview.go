package handlers

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/thatcatcamp/buttonsmith/internal/codec"
	"github.com/thatcatcamp/buttonsmith/internal/style"
	"github.com/thatcatcamp/buttonsmith/internal/suggest"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 64 << 10
	sendBuffer     = 16
)

// origin checking is gorilla's default same-host rule
var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// PreviewMessage is what clients send. Type is one of style, patch, token,
// preset, suggest or reset.
type PreviewMessage struct {
	Type      string          `json:"type"`
	Style     json.RawMessage `json:"style,omitempty"`
	Patch     *style.Patch    `json:"patch,omitempty"`
	Token     string          `json:"token,omitempty"`
	Name      string          `json:"name,omitempty"`
	Prompt    string          `json:"prompt,omitempty"`
	Selector  string          `json:"selector,omitempty"`
	ClassName string          `json:"className,omitempty"`
}

// PreviewEvent is what the server sends
type PreviewEvent struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// PreviewHub tracks live preview connections. Each connection holds its own
// working style, so edits from one editor never leak into another.
type PreviewHub struct {
	api *API

	mu      sync.RWMutex
	clients map[*previewClient]bool
}

type previewClient struct {
	hub   *PreviewHub
	conn  *websocket.Conn
	send  chan []byte
	model style.Model
}

// NewPreviewHub creates a hub rendering through api
func NewPreviewHub(api *API) *PreviewHub {
	return &PreviewHub{
		api:     api,
		clients: make(map[*previewClient]bool),
	}
}

// Serve upgrades the request and starts the client's pumps
func (h *PreviewHub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.api.log.Error(err, "websocket upgrade failed")
		return
	}

	client := &previewClient{
		hub:   h,
		conn:  conn,
		send:  make(chan []byte, sendBuffer),
		model: style.Default(),
	}
	h.add(client)
	client.push(h.preview(client, "", ""))

	go client.writePump()
	go client.readPump()
}

// OnPresetsChanged tells every client the preset names changed
func (h *PreviewHub) OnPresetsChanged(c *style.Catalog) {
	h.Broadcast(PreviewEvent{Type: "presets", Data: gin.H{"names": c.Names()}})
}

// Broadcast sends ev to every client
func (h *PreviewHub) Broadcast(ev PreviewEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.api.log.Error(err, "failed to marshal preview event")
		return
	}

	h.mu.RLock()
	clients := make([]*previewClient, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		client.enqueue(data)
	}
}

// ClientCount returns the number of connected clients
func (h *PreviewHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client
func (h *PreviewHub) Close() {
	h.mu.RLock()
	clients := make([]*previewClient, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		h.remove(client)
	}
}

func (h *PreviewHub) add(client *previewClient) {
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()
}

func (h *PreviewHub) remove(client *previewClient) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	h.mu.Unlock()
}

// handle applies one message to the client's working style
func (h *PreviewHub) handle(client *previewClient, msg PreviewMessage) PreviewEvent {
	var err error
	switch msg.Type {
	case "style":
		m := style.Default()
		if err = json.Unmarshal(msg.Style, &m); err == nil {
			client.model = m
		}
	case "patch":
		if msg.Patch == nil {
			err = errors.New("patch message without patch")
			break
		}
		client.model = style.Merge(client.model, *msg.Patch)
	case "token":
		var m style.Model
		if m, err = codec.Decode(msg.Token); err == nil {
			client.model = m
		}
	case "preset":
		var m style.Model
		if m, err = h.api.catalog().Apply(client.model, msg.Name); err == nil {
			client.model = m
		}
	case "suggest":
		var m style.Model
		if m, _, err = suggest.Apply(client.model, msg.Prompt); err == nil {
			client.model = m
		}
	case "reset":
		client.model = style.Default()
	default:
		err = errors.New("unknown message type: " + msg.Type)
	}
	if err != nil {
		return PreviewEvent{Type: "error", Data: gin.H{"error": err.Error()}}
	}
	return h.preview(client, msg.Selector, msg.ClassName)
}

func (h *PreviewHub) preview(client *previewClient, selector, className string) PreviewEvent {
	result, err := h.api.render(client.model, selector, className)
	if err != nil {
		return PreviewEvent{Type: "error", Data: gin.H{"error": err.Error()}}
	}
	return PreviewEvent{Type: "preview", Data: gin.H{"style": client.model, "render": result}}
}

func (c *previewClient) push(ev PreviewEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		c.hub.api.log.Error(err, "failed to marshal preview event")
		return
	}
	c.enqueue(data)
}

// enqueue drops the client if it cannot keep up
func (c *previewClient) enqueue(data []byte) {
	c.hub.mu.RLock()
	_, live := c.hub.clients[c]
	if live {
		select {
		case c.send <- data:
			c.hub.mu.RUnlock()
			return
		default:
		}
	}
	c.hub.mu.RUnlock()
	if live {
		c.hub.remove(c)
	}
}

// readPump owns client.model; all edits happen on this goroutine
func (c *previewClient) readPump() {
	defer c.hub.remove(c)

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg PreviewMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				c.push(PreviewEvent{Type: "error", Data: gin.H{"error": "invalid message: " + err.Error()}})
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.api.log.Error(err, "preview read failed")
			}
			return
		}
		c.push(c.hub.handle(c, msg))
	}
}

func (c *previewClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
