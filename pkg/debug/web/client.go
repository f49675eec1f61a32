package web

import (
	"encoding/json"

	"github.com/gorilla/websocket"
)

// client is one websocket connection to the debugger.
type client struct {
	hub  *hub
	conn *websocket.Conn
	send chan []byte

	commands chan<- Command
}

// readPump decodes commands from the connection and forwards them to
// the session. It unregisters the client when the connection drops.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var cmd Command
		if err := json.Unmarshal(message, &cmd); err != nil {
			c.hub.log.Errorf("bad command from %s: %v", c.conn.RemoteAddr(), err)
			continue
		}
		c.commands <- cmd
	}
}

// writePump writes queued frames until the hub closes the send
// channel.
func (c *client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
