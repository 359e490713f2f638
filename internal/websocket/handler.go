package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches conn to the hub and blocks until it closes. A non-nil
// initial payload is written before any live push.
func ServeWs(hub *Hub, conn *websocket.Conn, sessionID uuid.UUID, initial []byte) {
	client := &Client{Hub: hub, Conn: conn, SessionID: sessionID, Send: make(chan []byte, 16)}
	if initial != nil {
		client.Send <- initial
	}
	hub.register <- client

	go client.writePump()
	client.readPump()
}
