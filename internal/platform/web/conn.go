package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendQueue  = 64
	readLimit  = 4 << 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// clientConn wraps a websocket. Only the owning session enqueues and
// closes; readPump runs on its own goroutine.
type clientConn struct {
	ws   *websocket.Conn
	send chan []byte
}

func newClientConn(ws *websocket.Conn) *clientConn {
	return &clientConn{
		ws:   ws,
		send: make(chan []byte, sendQueue),
	}
}

// enqueue marshals v and queues it without blocking. A full queue drops
// the message so a slow client never stalls the simulation.
func (c *clientConn) enqueue(v any) bool {
	b, err := json.Marshal(v)
	if err != nil {
		return false
	}
	select {
	case c.send <- b:
		return true
	default:
		return false
	}
}

// close ends writePump, which closes the socket.
func (c *clientConn) close() {
	close(c.send)
}

// writePump drains the send queue and keeps the connection alive.
func (c *clientConn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump decodes client messages into in until the socket fails, then
// calls done. Malformed messages are skipped.
func (c *clientConn) readPump(in chan<- ClientMessage, done func()) {
	defer done()
	c.ws.SetReadLimit(readLimit)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, payload, err := c.ws.ReadMessage()
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			continue
		}
		select {
		case in <- msg:
		default:
			// Input congestion: drop rather than block the socket
		}
	}
}
