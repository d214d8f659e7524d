package events

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/velvettable/velvet-admin/models"
)

// Event types pushed to connected admin clients. They mirror the
// snackbar the frontend shows after each action.
const (
	EventItemAdded       = "item_added"
	EventItemUpdated     = "item_updated"
	EventItemRemoved     = "item_removed"
	EventCatalogExported = "catalog_exported"
	EventReceiptPrinted  = "receipt_printed"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds every connected admin client for broadcast.
type Hub struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]struct{}),
}

// RegisterClient adds a connection to the broadcast set.
func RegisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = struct{}{}
}

// UnregisterClient drops a connection and closes it.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastItemAdded announces a newly created catalog item.
func BroadcastItemAdded(item models.MenuItem) {
	broadcast(Message{Event: EventItemAdded, Data: item})
}

// BroadcastItemUpdated announces an in-place edit.
func BroadcastItemUpdated(item models.MenuItem) {
	broadcast(Message{Event: EventItemUpdated, Data: item})
}

// BroadcastItemRemoved announces a deletion by id.
func BroadcastItemRemoved(id uint64) {
	broadcast(Message{Event: EventItemRemoved, Data: map[string]uint64{"item_id": id}})
}

// BroadcastCatalogExported announces a completed CSV export.
func BroadcastCatalogExported(rows int) {
	broadcast(Message{Event: EventCatalogExported, Data: map[string]int{"rows": rows}})
}

// BroadcastReceiptPrinted announces a generated receipt.
func BroadcastReceiptPrinted(number string) {
	broadcast(Message{Event: EventReceiptPrinted, Data: map[string]string{"receipt_number": number}})
}

func broadcast(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("events: marshal %s: %v", msg.Event, err)
		return
	}

	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("events: write %s: %v", msg.Event, err)
			delete(hub.clients, conn)
			conn.Close()
		}
	}
}
