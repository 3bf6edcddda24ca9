package ws_room

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	MessageJoinRoom  = "join_room"
	MessageLeaveRoom = "leave_room"
)

type inboundMessage struct {
	Type    string `json:"type"`
	Payload struct {
		RoomID string `json:"roomId"`
		UserID string `json:"userId"`
	} `json:"payload"`
}

type Controller struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewController(hub *Hub) *Controller {
	return &Controller{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws", c.serve)
}

func (c *Controller) serve(ctx *gin.Context) {
	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := &Client{
		hub:   c.hub,
		conn:  conn,
		send:  make(chan Event, 16),
		rooms: make(map[string]bool),
	}

	c.hub.register <- client

	go client.writePump()
	client.readPump()
}

func (cl *Client) readPump() {
	defer func() {
		cl.hub.unregister <- cl
		cl.conn.Close()
	}()

	for {
		var msg inboundMessage
		if err := cl.conn.ReadJSON(&msg); err != nil {
			break
		}

		switch msg.Type {
		case MessageJoinRoom:
			cl.hub.Join(cl, msg.Payload.RoomID, msg.Payload.UserID)
		case MessageLeaveRoom:
			cl.hub.Leave(cl, msg.Payload.RoomID, msg.Payload.UserID)
		}
	}
}

func (cl *Client) writePump() {
	defer cl.conn.Close()

	for event := range cl.send {
		if err := cl.conn.WriteJSON(event); err != nil {
			break
		}
	}
}
