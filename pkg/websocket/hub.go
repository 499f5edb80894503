package websocket

import (
	"context"
	"encoding/json"
	"time"

	"helpize/pkg/logger"
)

const (
	MessageTypeWelcome = "welcome"
	MessageTypeAlert   = "alert_created"
)

// Hub fans messages out to every connected client. The client set is owned
// by the goroutine running Run.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	logger     *logger.Logger
}

type Message struct {
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     log,
	}
}

// Run serves registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for client := range h.clients {
			h.drop(client)
		}
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.clients[client] = true
			h.logger.WithField("remote", client.remote).Debug("Live feed client connected")
			h.sendTo(client, mustEncode(Message{
				Type:      MessageTypeWelcome,
				Timestamp: time.Now().Unix(),
				Data:      map[string]string{"message": "Connected to live SOS feed"},
			}))

		case client := <-h.unregister:
			if h.clients[client] {
				h.drop(client)
				h.logger.WithField("remote", client.remote).Debug("Live feed client disconnected")
			}

		case data := <-h.broadcast:
			for client := range h.clients {
				h.sendTo(client, data)
			}
		}
	}
}

// Broadcast queues msg for every client. It returns ctx.Err() if the hub is
// busy past ctx's deadline and is a no-op once the hub has stopped.
func (h *Hub) Broadcast(ctx context.Context, msg Message) error {
	if msg.Timestamp == 0 {
		msg.Timestamp = time.Now().Unix()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	select {
	case h.broadcast <- data:
		return nil
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

func (h *Hub) add(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// sendTo drops clients whose buffer is full rather than stalling the hub.
func (h *Hub) sendTo(client *Client, data []byte) {
	select {
	case client.send <- data:
	default:
		h.drop(client)
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	client.closeSend()
}

func mustEncode(msg Message) []byte {
	data, _ := json.Marshal(msg)
	return data
}
