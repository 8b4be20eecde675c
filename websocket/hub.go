package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/mobauto/workshop-backend/models"
)

// The hub pushes newly created appointments to every connected admin so
// the back-office dashboard updates without polling.

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

type BookingEvent struct {
	Type        string              `json:"type"`
	Appointment *models.Appointment `json:"appointment"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *models.Appointment)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Admin client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Admin client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case appointment := <-Broadcast:
			event := BookingEvent{Type: "appointment.created", Appointment: appointment}

			clientsMu.RLock()
			var stale []uuid.UUID
			for adminID, conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error sending booking event to admin %s: %v", adminID, err)
					conn.Close()
					stale = append(stale, adminID)
				}
			}
			clientsMu.RUnlock()

			if len(stale) > 0 {
				clientsMu.Lock()
				for _, adminID := range stale {
					delete(clients, adminID)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// Notify hands an appointment to the hub without blocking the booking
// request when no admin is listening.
func Notify(appointment *models.Appointment) {
	select {
	case Broadcast <- appointment:
	default:
	}
}
