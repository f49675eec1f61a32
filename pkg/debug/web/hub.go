package web

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/micro8/micro8/pkg/log"
)

// hub tracks connected clients and fans frames out to them.
type hub struct {
	clients map[*client]bool

	broadcast            chan []byte
	register, unregister chan *client

	log log.Logger
}

func newHub(l log.Logger) *hub {
	return &hub{
		clients:    map[*client]bool{},
		broadcast:  make(chan []byte, 64),
		register:   make(chan *client),
		unregister: make(chan *client),
		log:        l,
	}
}

func (h *hub) run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			h.log.Debugf("client %s connected", c.conn.RemoteAddr())
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.log.Debugf("client %s disconnected", c.conn.RemoteAddr())
			}
		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// client can't keep up, drop it
					close(c.send)
					delete(h.clients, c)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 16,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
