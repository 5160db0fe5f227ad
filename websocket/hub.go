package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/kamausoft/health_connect/models"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// AppointmentEvent is pushed to every connected dashboard whenever an
// appointment is created or changes status.
type AppointmentEvent struct {
	Type        string              `json:"type"`
	Appointment *models.Appointment `json:"appointment"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *AppointmentEvent, 16)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Dashboard client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Dashboard client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			var stale []uuid.UUID

			clientsMu.RLock()
			for userID, conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error pushing event to client %s: %v", userID, err)
					conn.Close()
					stale = append(stale, userID)
				}
			}
			clientsMu.RUnlock()

			if len(stale) > 0 {
				clientsMu.Lock()
				for _, userID := range stale {
					delete(clients, userID)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// PushAppointmentEvent never blocks the request path; if the hub is
// backed up the event is dropped.
func PushAppointmentEvent(eventType string, appointment *models.Appointment) {
	select {
	case Broadcast <- &AppointmentEvent{Type: eventType, Appointment: appointment}:
	default:
		log.Println("⚠️ Dashboard event dropped, hub buffer full")
	}
}
