package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// The hub pushes seat events to connected admin dashboards. Events fire
// only when a mutation happens; nothing here runs on a timer.

type Client struct {
	ID   uuid.UUID
	Conn *websocket.Conn
}

type SeatEvent struct {
	Event string    `json:"event"`
	Seat  int       `json:"seat"`
	Email string    `json:"email"`
	At    time.Time `json:"at"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan SeatEvent, 16)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Seat map client connected: %s", client.ID)
			clientsMu.Lock()
			clients[client.ID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Seat map client disconnected: %s", client.ID)
			clientsMu.Lock()
			if conn, ok := clients[client.ID]; ok && conn == client.Conn {
				delete(clients, client.ID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			clientsMu.RLock()
			var dead []uuid.UUID
			for id, conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error sending seat event to client %s: %v", id, err)
					conn.Close()
					dead = append(dead, id)
				}
			}
			clientsMu.RUnlock()

			if len(dead) > 0 {
				clientsMu.Lock()
				for _, id := range dead {
					delete(clients, id)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// NotifySeat queues a seat event without blocking the request that caused
// it. Events are dropped when the hub is saturated.
func NotifySeat(event string, seat int, email string) {
	select {
	case Broadcast <- SeatEvent{Event: event, Seat: seat, Email: email, At: time.Now()}:
	default:
	}
}

// Handle runs the read loop for one seat-map connection. Inbound frames
// are ignored; the socket exists for server pushes only.
func Handle(conn *websocket.Conn) {
	client := &Client{ID: uuid.New(), Conn: conn}
	Register <- client
	defer func() {
		Unregister <- client
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
