package feed

import (
	"sync"
	"time"

	"courtbook/internal/domain"

	"github.com/gorilla/websocket"
)

type EventType string

const (
	EventCreated     EventType = "booking.created"
	EventRescheduled EventType = "booking.rescheduled"
	EventCancelled   EventType = "booking.cancelled"
)

type Event struct {
	Type    EventType           `json:"type"`
	At      time.Time           `json:"at"`
	Booking *domain.Reservation `json:"booking"`
}

// Hub pushes reservation lifecycle events to connected admin dashboards.
// It implements the booking engine's EventSink; broadcasts never block
// the engine, a slow or broken connection is dropped.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[userID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

func (h *Hub) ReservationCreated(r *domain.Reservation) {
	h.broadcast(Event{Type: EventCreated, At: time.Now(), Booking: r})
}

func (h *Hub) ReservationRescheduled(r *domain.Reservation) {
	h.broadcast(Event{Type: EventRescheduled, At: time.Now(), Booking: r})
}

func (h *Hub) ReservationCancelled(r *domain.Reservation) {
	h.broadcast(Event{Type: EventCancelled, At: time.Now(), Booking: r})
}

func (h *Hub) broadcast(ev Event) {
	h.mutex.RLock()
	conns := make(map[int64]*websocket.Conn, len(h.connections))
	for id, c := range h.connections {
		conns[id] = c
	}
	h.mutex.RUnlock()

	for id, conn := range conns {
		if err := conn.WriteJSON(ev); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
}
