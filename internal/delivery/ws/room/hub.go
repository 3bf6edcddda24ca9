package ws_room

import (
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/streamsync/core/internal/model"
)

const (
	EventRoomJoined         = "room_joined"
	EventMemberLeft         = "member_left"
	EventMemberReadyChanged = "member_ready_changed"
	EventMatchFound         = "match_found"
)

type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan Event

	// A connection may be subscribed to several rooms at once; leaving is
	// only ever explicit.
	rooms map[string]bool
}

type roomEvent struct {
	roomID string
	event  Event
}

// Hub tracks the live set of connections subscribed to each room and fans
// out state-change events. Delivery is at-most-once and best-effort: slow
// consumers are dropped, nothing is queued for disconnected members. Clients
// reconcile by re-fetching membership and match lists.
type Hub struct {
	logger     *slog.Logger
	clients    map[*Client]bool
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan roomEvent
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		logger:     slog.Default(),
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan roomEvent),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case roomEvent := <-h.broadcast:
			h.broadcastToRoom(roomEvent.roomID, roomEvent.event)
		}
	}
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info("client connected")
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}

	delete(h.clients, client)
	close(client.send)

	for roomID := range client.rooms {
		if roomClients, exists := h.rooms[roomID]; exists {
			delete(roomClients, client)
			if len(roomClients) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}

	h.logger.Info("client disconnected")
}

// Join subscribes the connection to the room's channel and announces the
// member to every subscriber, the joiner included.
func (h *Hub) Join(client *Client, roomID string, userID string) {
	h.mu.Lock()
	if _, exists := h.rooms[roomID]; !exists {
		h.rooms[roomID] = make(map[*Client]bool)
	}
	h.rooms[roomID][client] = true
	client.rooms[roomID] = true
	h.mu.Unlock()

	h.logger.Info("client joined room", "room_id", roomID, "user_id", userID)

	h.broadcastToRoom(roomID, Event{
		Type: EventRoomJoined,
		Payload: map[string]interface{}{
			"member": map[string]interface{}{
				"userId": userID,
			},
		},
	})
}

func (h *Hub) Leave(client *Client, roomID string, userID string) {
	h.mu.Lock()
	if roomClients, exists := h.rooms[roomID]; exists {
		delete(roomClients, client)
		if len(roomClients) == 0 {
			delete(h.rooms, roomID)
		}
	}
	delete(client.rooms, roomID)
	h.mu.Unlock()

	h.logger.Info("client left room", "room_id", roomID, "user_id", userID)

	h.broadcastToRoom(roomID, Event{
		Type: EventMemberLeft,
		Payload: map[string]interface{}{
			"userId": userID,
		},
	})
}

// NotifyReadyChanged fans out after every providers or ready mutation. The
// payload always carries both fields with their current values.
func (h *Hub) NotifyReadyChanged(roomID string, member model.Member) {
	providers := member.ActiveProviders
	if providers == nil {
		providers = []int64{}
	}

	h.broadcast <- roomEvent{
		roomID: roomID,
		event: Event{
			Type: EventMemberReadyChanged,
			Payload: map[string]interface{}{
				"userId":          member.UserID.String(),
				"ready":           member.Ready,
				"activeProviders": providers,
			},
		},
	}
}

func (h *Hub) NotifyMatchFound(roomID string, payload model.MatchFound) {
	h.broadcast <- roomEvent{
		roomID: roomID,
		event: Event{
			Type:    EventMatchFound,
			Payload: payload,
		},
	}
}

func (h *Hub) broadcastToRoom(roomID string, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if roomClients, exists := h.rooms[roomID]; exists {
		for client := range roomClients {
			select {
			case client.send <- event:
			default:
				// Slow consumer. Drop it everywhere, the client will
				// reconcile by polling.
				close(client.send)
				delete(h.clients, client)
				for joined := range client.rooms {
					if members, ok := h.rooms[joined]; ok {
						delete(members, client)
					}
				}
			}
		}
	}
}
