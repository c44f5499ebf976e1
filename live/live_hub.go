package live

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/RachidAzrou/mefen/models"
)

// Event types
const (
	EventPlanningUpdate  = "planning_update"
	EventPlanningDelete  = "planning_delete"
	EventRoomUpdate      = "room_update"
	EventRoomDelete      = "room_delete"
	EventVolunteerUpdate = "volunteer_update"
	EventVolunteerDelete = "volunteer_delete"
	EventPendingUpdate   = "pending_update"
	EventLogUpdate       = "log_update"
	EventDashboardUpdate = "dashboard_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung semua client yang mendengarkan update live (kalender publik,
// halaman planning admin) dan menyiarkan perubahan entity ke semuanya.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient -> menambahkan connection ke set dengan role
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient -> melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastPlanningUpdate -> planning dibuat atau diubah
func BroadcastPlanningUpdate(planning models.Planning) {
	broadcast(Message{
		Event: EventPlanningUpdate,
		Data:  planning,
	})
}

// BroadcastPlanningDelete -> planning dihapus
func BroadcastPlanningDelete(id uint) {
	broadcast(Message{
		Event: EventPlanningDelete,
		Data:  map[string]interface{}{"id": id},
	})
}

// BroadcastRoomUpdate -> room dibuat atau diubah
func BroadcastRoomUpdate(room models.Room) {
	broadcast(Message{
		Event: EventRoomUpdate,
		Data:  room,
	})
}

// BroadcastRoomDelete -> room dihapus
func BroadcastRoomDelete(id uint) {
	broadcast(Message{
		Event: EventRoomDelete,
		Data:  map[string]interface{}{"id": id},
	})
}

// BroadcastVolunteerUpdate -> volunteer dibuat atau diubah
func BroadcastVolunteerUpdate(volunteer models.Volunteer) {
	broadcast(Message{
		Event: EventVolunteerUpdate,
		Data:  volunteer,
	})
}

// BroadcastVolunteerDelete -> volunteer dihapus
func BroadcastVolunteerDelete(id uint) {
	broadcast(Message{
		Event: EventVolunteerDelete,
		Data:  map[string]interface{}{"id": id},
	})
}

// BroadcastPendingUpdate -> antrian pendaftaran berubah
func BroadcastPendingUpdate(pending models.PendingVolunteer) {
	broadcast(Message{
		Event: EventPendingUpdate,
		Data:  pending,
	})
}

// BroadcastLogUpdate -> entry activity log baru
func BroadcastLogUpdate(entry models.ActivityLog) {
	broadcast(Message{
		Event: EventLogUpdate,
		Data:  entry,
	})
}

// BroadcastDashboardUpdate -> update dashboard
func BroadcastDashboardUpdate(data interface{}) {
	broadcast(Message{
		Event: EventDashboardUpdate,
		Data:  data,
	})
}

// BroadcastMessage -> broadcast pesan umum
func BroadcastMessage(msg Message) {
	broadcast(msg)
}

// broadcast -> fungsi internal untuk mengirim pesan
func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn, role := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending message to client (role %s): %v", role, err)
			continue
		}
	}
}
